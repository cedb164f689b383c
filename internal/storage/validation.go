// Package storage provides the data persistence layer for fintrack:
// whole-snapshot save and load on SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateSnapshot rejects snapshots that could not have come from the
// ledger: missing ids or unknown transaction types. Dangling account
// and debt references are legal and deliberately not checked.
func validateSnapshot(s model.Snapshot) error {
	for i, a := range s.Accounts {
		if a.ID == "" {
			return fmt.Errorf("%w: account at index %d has no id", ErrInvalidSnapshot, i)
		}
	}
	for i, d := range s.Debts {
		if d.ID == "" {
			return fmt.Errorf("%w: debt at index %d has no id", ErrInvalidSnapshot, i)
		}
	}
	for i, t := range s.Transactions {
		if t.ID == "" {
			return fmt.Errorf("%w: transaction at index %d has no id", ErrInvalidSnapshot, i)
		}
		if !t.Type.Valid() {
			return fmt.Errorf("%w: transaction %s has unknown type %q", ErrInvalidSnapshot, t.ID, t.Type)
		}
	}
	return nil
}
