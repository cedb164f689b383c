// Package config resolves user-supplied and default filesystem paths.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDatabasePath is where the ledger database lives when no path
// is configured, relative to the user's home directory.
const DefaultDatabasePath = "$HOME/.local/share/fintrack/fintrack.db"

// ExpandPath resolves $VAR references and a leading tilde in a path.
// Unresolvable pieces are left as-is rather than erroring; a bad path
// surfaces when it is opened.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	path = os.ExpandEnv(path)

	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// DatabasePath expands the configured database path, falling back to
// the default location when none is set.
func DatabasePath(configured string) string {
	if strings.TrimSpace(configured) == "" {
		configured = DefaultDatabasePath
	}
	return ExpandPath(configured)
}
