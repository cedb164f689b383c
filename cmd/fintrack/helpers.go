package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/thepnarinsuep-tech/fintrack/internal/config"
	"github.com/thepnarinsuep-tech/fintrack/internal/model"
	"github.com/thepnarinsuep-tech/fintrack/internal/service"
	"github.com/thepnarinsuep-tech/fintrack/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.DatabasePath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// displayCurrency returns the configured ISO 4217 display currency.
func displayCurrency() string {
	return viper.GetString("currency")
}

// parseAmount parses a user-supplied amount string, tolerating a
// leading currency symbol and grouping commas.
func parseAmount(input string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimPrefix(cleaned, "฿")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", input, err)
	}
	return amount, nil
}

// parseDateFlag parses a --date value, defaulting to today when empty.
func parseDateFlag(input string) (model.Date, error) {
	if strings.TrimSpace(input) == "" {
		return model.Today(), nil
	}
	return model.ParseDate(strings.TrimSpace(input))
}

// accountName resolves an account id to its display name, or a
// placeholder when the account has been deleted.
func accountName(s model.Snapshot, id string) string {
	if acc, ok := s.Account(id); ok {
		return acc.Name
	}
	return "Deleted"
}
