package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eventfinder/internal/model"
	"eventfinder/internal/service"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID, eventID string) (*model.FavoriteEvent, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FavoriteEvent), args.Error(1)
}

func (m *MockFavoriteService) ListByUser(ctx context.Context, userID string) ([]model.FavoriteEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FavoriteEvent), args.Error(1)
}

type MockMailService struct {
	mock.Mock
}

func (m *MockMailService) SendEmail(ctx context.Context, in service.EmailInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}
