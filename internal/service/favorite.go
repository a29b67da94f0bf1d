package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventfinder/internal/model"
	"eventfinder/internal/repository"
)

var (
	ErrUserIDRequired  = errors.New("user id is required")
	ErrEventIDRequired = errors.New("event id is required")
)

// FavoriteService manages the user/event favorites join records.
type FavoriteService interface {
	// Add links userID to eventID. Repeating the same pair creates another link.
	Add(ctx context.Context, userID, eventID string) (*model.FavoriteEvent, error)

	// ListByUser returns only the links of userID; an unknown user yields an empty slice.
	ListByUser(ctx context.Context, userID string) ([]model.FavoriteEvent, error)
}

type favoriteService struct {
	repo repository.FavoriteEventRepository
	now  func() time.Time
}

func NewFavoriteService(repo repository.FavoriteEventRepository) FavoriteService {
	return &favoriteService{repo: repo, now: time.Now}
}

func (s *favoriteService) Add(ctx context.Context, userID, eventID string) (*model.FavoriteEvent, error) {
	userID, eventID = strings.TrimSpace(userID), strings.TrimSpace(eventID)
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	if eventID == "" {
		return nil, ErrEventIDRequired
	}

	fav, err := s.repo.Create(ctx, &model.FavoriteEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: save favorite: %w", ErrStorage, err)
	}
	return fav, nil
}

func (s *favoriteService) ListByUser(ctx context.Context, userID string) ([]model.FavoriteEvent, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: find favorites: %w", ErrStorage, err)
	}
	if items == nil {
		items = []model.FavoriteEvent{}
	}
	return items, nil
}
