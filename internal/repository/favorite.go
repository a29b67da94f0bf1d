package repository

import (
	"context"

	"eventfinder/internal/model"
)

// FavoriteEventRepository defines data access for the user/event favorites join table.
type FavoriteEventRepository interface {
	// Create inserts a new favorite link. Duplicate (user, event) pairs are allowed.
	Create(ctx context.Context, f *model.FavoriteEvent) (*model.FavoriteEvent, error)

	// FindByUser returns the links of a single user. A user without favorites yields an empty slice, not an error.
	FindByUser(ctx context.Context, userID string) ([]model.FavoriteEvent, error)
}
