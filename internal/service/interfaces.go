// Package service defines the interfaces between the application and
// its collaborators. The ledger core is pure; persistence is an
// external concern expressed here so commands and tests can swap the
// backing store.
package service

import (
	"context"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

// Storage persists whole snapshots. Implementations must return the
// last-saved snapshot from LoadSnapshot, or the documented default
// snapshot when nothing has ever been saved.
type Storage interface {
	// LoadSnapshot returns the most recently saved snapshot.
	LoadSnapshot(ctx context.Context) (model.Snapshot, error)
	// SaveSnapshot atomically replaces the stored snapshot.
	SaveSnapshot(ctx context.Context, s model.Snapshot) error
	// Close releases the underlying resources.
	Close() error
}
