package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thepnarinsuep-tech/fintrack/internal/cli"
	"github.com/thepnarinsuep-tech/fintrack/internal/ledger"
)

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction and reverse its effect",
		Long: `Delete a transaction by id.

The account balance and, for debt payments, the debt's repayment
progress are restored to their pre-transaction values. Deleting an id
that does not exist is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: runTxDelete,
	}
}

func runTxDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

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

	txn, found := state.Transaction(id)
	next := ledger.Reverse(state, id)

	if err := store.SaveSnapshot(ctx, next); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	if !found {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("No transaction with id %s; nothing to do", id))) //nolint:forbidigo // User-facing output
		return nil
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %s %s (%s) from %s",
		txn.Type,
		cli.FormatMoney(txn.Amount, displayCurrency()),
		txn.Category,
		txn.Date))) //nolint:forbidigo // User-facing output
	return nil
}
