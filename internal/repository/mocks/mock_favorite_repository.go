package mocks

import (
	"context"

	"eventfinder/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFavoriteEventRepository struct {
	mock.Mock
}

func (m *MockFavoriteEventRepository) Create(ctx context.Context, f *model.FavoriteEvent) (*model.FavoriteEvent, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FavoriteEvent), args.Error(1)
}

func (m *MockFavoriteEventRepository) FindByUser(ctx context.Context, userID string) ([]model.FavoriteEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FavoriteEvent), args.Error(1)
}
