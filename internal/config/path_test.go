package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	t.Setenv("FINTRACK_TEST_DIR", "/data/fintrack")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty stays empty", "", ""},
		{"plain path untouched", "/var/lib/fintrack.db", "/var/lib/fintrack.db"},
		{"tilde prefix", "~/fintrack.db", filepath.Join(home, "fintrack.db")},
		{"bare tilde", "~", home},
		{"env var", "$FINTRACK_TEST_DIR/fintrack.db", "/data/fintrack/fintrack.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDatabasePath(t *testing.T) {
	if got := DatabasePath("/tmp/ledger.db"); got != "/tmp/ledger.db" {
		t.Errorf("DatabasePath(explicit) = %q", got)
	}

	got := DatabasePath("")
	if !strings.HasSuffix(got, filepath.Join(".local", "share", "fintrack", "fintrack.db")) {
		t.Errorf("DatabasePath(\"\") = %q, want default location", got)
	}
	if strings.Contains(got, "$HOME") {
		t.Errorf("DatabasePath(\"\") = %q, $HOME not expanded", got)
	}
}
