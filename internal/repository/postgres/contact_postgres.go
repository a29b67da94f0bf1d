package postgres

import (
	"context"
	"database/sql"

	"eventfinder/internal/model"
	"eventfinder/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// Create inserts a new contact row and returns the stored record.
func (r *ContactPostgres) Create(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	const q = `
		INSERT INTO contacts (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, subject, message, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Name,
		c.Email,
		c.Subject,
		c.Message,
		c.CreatedAt,
	)
	var out model.Contact
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Subject,
		&out.Message,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all contacts ordered newest first.
func (r *ContactPostgres) List(ctx context.Context) ([]model.Contact, error) {
	const q = `
		SELECT id, name, email, subject, message, created_at
		FROM contacts
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Subject,
			&c.Message,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
