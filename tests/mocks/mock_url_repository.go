package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
)

type MockURLRepository struct {
	mock.Mock
}

func (m *MockURLRepository) Create(ctx context.Context, link *domain.ShortLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockURLRepository) GetByShortID(ctx context.Context, shortID string) (*domain.ShortLink, error) {
	args := m.Called(ctx, shortID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

func (m *MockURLRepository) GetByOriginalURL(ctx context.Context, originalURL string) (*domain.ShortLink, error) {
	args := m.Called(ctx, originalURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

func (m *MockURLRepository) List(ctx context.Context) ([]domain.ShortLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShortLink), args.Error(1)
}
