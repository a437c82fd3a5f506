package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
)

type MockShortenerService struct {
	mock.Mock
}

func (m *MockShortenerService) ShortenURL(ctx context.Context, req *domain.ShortenRequest) (*domain.ShortLink, bool, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ShortLink), args.Bool(1), args.Error(2)
}

func (m *MockShortenerService) ResolveAndRecord(ctx context.Context, shortID, clientIP, userAgent string) (*domain.ShortLink, error) {
	args := m.Called(ctx, shortID, clientIP, userAgent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

func (m *MockShortenerService) CheckOriginalURL(ctx context.Context, originalURL string) (*domain.ShortLink, error) {
	args := m.Called(ctx, originalURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

func (m *MockShortenerService) CheckShortID(ctx context.Context, shortID string) (*domain.ShortLink, error) {
	args := m.Called(ctx, shortID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

func (m *MockShortenerService) ListURLs(ctx context.Context) ([]domain.ShortLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShortLink), args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetAnalytics(ctx context.Context, shortID string) (*domain.Analytics, error) {
	args := m.Called(ctx, shortID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analytics), args.Error(1)
}
