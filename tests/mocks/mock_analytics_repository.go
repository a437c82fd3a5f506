package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
)

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) RecordClick(ctx context.Context, event *domain.ClickEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) ListEvents(ctx context.Context, linkID int64) ([]domain.ClickEvent, error) {
	args := m.Called(ctx, linkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClickEvent), args.Error(1)
}
