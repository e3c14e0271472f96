package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migrations are applied in order; each statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS pessoas (
		id              UUID PRIMARY KEY,
		nome            TEXT NOT NULL,
		cpf             VARCHAR(11) NOT NULL,
		email           TEXT NOT NULL,
		data_nascimento DATE NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT pessoas_cpf_key UNIQUE (cpf),
		CONSTRAINT pessoas_email_key UNIQUE (email)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pessoas_created_at ON pessoas (created_at)`,
}

// Migrate creates the schema inside a single transaction.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range migrations {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
