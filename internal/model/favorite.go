package model

import "time"

// FavoriteEvent links a user to an event they marked as favorite.
// Users and events are owned by other services; only their identifiers are kept here.
type FavoriteEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}
