package postgres

import (
	"context"
	"database/sql"

	"eventfinder/internal/model"
	"eventfinder/internal/repository"
)

// FavoriteEventPostgres is a PostgreSQL implementation of repository.FavoriteEventRepository.
type FavoriteEventPostgres struct {
	db *sql.DB
}

// NewFavoriteEventPostgres creates a new FavoriteEventPostgres repository.
func NewFavoriteEventPostgres(db *sql.DB) *FavoriteEventPostgres {
	return &FavoriteEventPostgres{db: db}
}

var _ repository.FavoriteEventRepository = (*FavoriteEventPostgres)(nil)

// Create inserts a favorite link and returns the stored record.
func (r *FavoriteEventPostgres) Create(ctx context.Context, f *model.FavoriteEvent) (*model.FavoriteEvent, error) {
	const q = `
		INSERT INTO favorite_events (id, user_id, event_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, event_id, created_at
	`
	var out model.FavoriteEvent
	if err := r.db.QueryRowContext(ctx, q, f.ID, f.UserID, f.EventID, f.CreatedAt).Scan(
		&out.ID,
		&out.UserID,
		&out.EventID,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByUser returns the favorites of userID, newest first.
func (r *FavoriteEventPostgres) FindByUser(ctx context.Context, userID string) ([]model.FavoriteEvent, error) {
	const q = `
		SELECT id, user_id, event_id, created_at
		FROM favorite_events
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FavoriteEvent, 0)
	for rows.Next() {
		var f model.FavoriteEvent
		if err := rows.Scan(&f.ID, &f.UserID, &f.EventID, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
