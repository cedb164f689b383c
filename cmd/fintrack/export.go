package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/thepnarinsuep-tech/fintrack/internal/cli"
	"github.com/thepnarinsuep-tech/fintrack/internal/export"
	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the transaction log to CSV",
		Long: `Write all transactions to a CSV file with columns
Date, Type, Account, Category, Amount, Note.

Accounts are resolved to their display names; transactions whose
account has been deleted are exported with a placeholder.`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "output file (default fintrack_transactions_<today>.csv)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	state, err := store.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = export.Filename(model.Today())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("failed to close export file", "error", closeErr)
		}
	}()

	bar := progressbar.Default(int64(len(state.Transactions)), "exporting")
	writer := progressWriter{w: f, bar: bar}
	if err := export.WriteCSV(&writer, state.Transactions, state.Accounts); err != nil {
		return fmt.Errorf("failed to export transactions: %w", err)
	}
	_ = bar.Finish()

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(state.Transactions), output))) //nolint:forbidigo // User-facing output
	return nil
}

// progressWriter advances the bar one tick per written line rather
// than per byte, so the bar tracks rows.
type progressWriter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	for _, c := range b[:n] {
		if c == '\n' {
			_ = p.bar.Add(1)
		}
	}
	return n, err
}
