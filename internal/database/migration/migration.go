// Package migration creates the contact and favorite event tables on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelQuery reports whether the schema is already in place. favorite_events is created last,
// so a partially applied run is retried on the next start.
const sentinelQuery = "SELECT to_regclass('public.favorite_events') IS NOT NULL"

var steps = []migrationStep{
	{
		Name: "create_table_contacts",
		SQL: `CREATE TABLE IF NOT EXISTS contacts (
  id         UUID        PRIMARY KEY,
  name       TEXT        NOT NULL,
  email      TEXT        NOT NULL,
  subject    TEXT        NOT NULL DEFAULT '',
  message    TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_contacts_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts (created_at DESC);`,
	},
	{
		Name: "create_table_favorite_events",
		SQL: `CREATE TABLE IF NOT EXISTS favorite_events (
  id         UUID        PRIMARY KEY,
  user_id    TEXT        NOT NULL,
  event_id   TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_favorite_events_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_favorite_events_user_id ON favorite_events (user_id, created_at DESC);`,
	},
}

// EnsureMigrated checks whether the schema exists and applies every step in order if it doesn't.
// Each step is idempotent.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Logger()

	log.Info().Str("event", "db_migration_check").Msg("checking schema")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Error().Err(err).
			Str("event", "db_migration_failed").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Int("steps", len(steps)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema migrated")

	return nil
}
