package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Anandhu362/Url-shorten-website/internal/geo"
)

type MockGeoResolver struct {
	mock.Mock
}

func (m *MockGeoResolver) Resolve(ctx context.Context, ip string) geo.Location {
	args := m.Called(ctx, ip)
	return args.Get(0).(geo.Location)
}
