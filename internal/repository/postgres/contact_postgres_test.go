package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventfinder/internal/model"
)

var contactColumns = []string{"id", "name", "email", "subject", "message", "created_at"}

func TestContactPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	c := &model.Contact{
		ID:        "contact-id",
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "When is the next meetup?",
		CreatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(contactColumns).
			AddRow(c.ID, c.Name, c.Email, "", c.Message, c.CreatedAt)

		mock.ExpectQuery("INSERT INTO contacts").
			WithArgs(c.ID, c.Name, c.Email, "", c.Message, c.CreatedAt).
			WillReturnRows(rows)

		result, err := repo.Create(ctx, c)

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, c.ID, result.ID)
		assert.Equal(t, c.Message, result.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("constraint violation", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO contacts").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		result, err := repo.Create(ctx, c)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContactPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(contactColumns).
			AddRow("id-2", "Grace", "grace@example.com", "Tickets", "Second", time.Now()).
			AddRow("id-1", "Ada", "ada@example.com", "", "First", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM contacts ORDER BY created_at DESC").
			WillReturnRows(rows)

		items, err := repo.List(ctx)

		assert.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "id-2", items[0].ID)
		assert.Equal(t, "Tickets", items[0].Subject)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM contacts").
			WillReturnRows(sqlmock.NewRows(contactColumns))

		items, err := repo.List(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM contacts").
			WillReturnError(errors.New("connection refused"))

		items, err := repo.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, items)
	})

	t.Run("scan error", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id"}).AddRow("only-id")
		mock.ExpectQuery("SELECT (.+) FROM contacts").WillReturnRows(rows)

		items, err := repo.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
