package repository

import (
	"context"

	"eventfinder/internal/model"
)

// ContactRepository defines data access for contact form submissions.
// Contacts are append-only: there is no update or delete.
type ContactRepository interface {
	// Create inserts a new contact. The caller provides ID and CreatedAt.
	// Returns the stored contact as read back from the database.
	Create(ctx context.Context, c *model.Contact) (*model.Contact, error)

	// List returns every stored contact, newest first. An empty table yields an empty, non-nil slice.
	List(ctx context.Context) ([]model.Contact, error)
}
