// Package export renders the transaction log as flat tabular data for
// consumption outside the application.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

// UnknownAccount is the placeholder used when a transaction references
// an account that no longer exists.
const UnknownAccount = "Unknown"

// Header is the column layout of the exported table.
var Header = []string{"Date", "Type", "Account", "Category", "Amount", "Note"}

// WriteCSV writes one row per transaction in log order, resolving
// account ids to display names.
func WriteCSV(w io.Writer, txns []model.Transaction, accounts []model.Account) error {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range txns {
		name, ok := names[t.AccountID]
		if !ok {
			name = UnknownAccount
		}
		row := []string{
			string(t.Date),
			string(t.Type),
			name,
			t.Category,
			t.Amount.String(),
			t.Note,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", t.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// Filename returns the conventional export file name for the given day.
func Filename(date model.Date) string {
	return fmt.Sprintf("fintrack_transactions_%s.csv", date)
}
