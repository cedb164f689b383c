package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the
// application expects. If the database cannot be migrated to this
// version, it's a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS accounts (
					id TEXT PRIMARY KEY,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					color TEXT NOT NULL DEFAULT '',
					balance TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					position INTEGER NOT NULL,
					date TEXT NOT NULL,
					type TEXT NOT NULL,
					account_id TEXT NOT NULL,
					category TEXT NOT NULL DEFAULT '',
					amount TEXT NOT NULL,
					note TEXT NOT NULL DEFAULT '',
					debt_id TEXT NOT NULL DEFAULT ''
				)`,
				`CREATE INDEX idx_transactions_position ON transactions(position)`,

				`CREATE TABLE IF NOT EXISTS debts (
					id TEXT PRIMARY KEY,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					total_amount TEXT NOT NULL,
					paid_amount TEXT NOT NULL
				)`,

				// A single row recording that a snapshot has been
				// saved at least once; its absence means "fall back
				// to the default snapshot" even if someone saved an
				// empty state.
				`CREATE TABLE IF NOT EXISTS snapshot_meta (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					saved_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Index transactions by date and debt for report queries",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
				`CREATE INDEX IF NOT EXISTS idx_transactions_debt ON transactions(debt_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
