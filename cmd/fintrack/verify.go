package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/thepnarinsuep-tech/fintrack/internal/cli"
	"github.com/thepnarinsuep-tech/fintrack/internal/common"
	"github.com/thepnarinsuep-tech/fintrack/internal/ledger"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check ledger state against the transaction log",
		Long: `Replay the full transaction log and compare the result against the
stored account balances and debt paid amounts.

Debt paid amounts must match the sum of their payment transactions
exactly. Account balances include an initial balance that is not
recorded separately, so accounts are reported as the starting balance
the log implies rather than pass/fail. Transactions that reference a
deleted account or debt are counted as warnings.`,
		RunE: runVerify,
	}
}

func runVerify(cmd *cobra.Command, _ []string) error {
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

	bar := progressbar.Default(int64(len(state.Transactions)), "verifying")
	report := ledger.CheckProgress(state, func() { _ = bar.Add(1) })
	_ = bar.Finish()

	currency := displayCurrency()

	fmt.Println(cli.FormatTitle("Ledger Check")) //nolint:forbidigo // User-facing output
	fmt.Println()                                //nolint:forbidigo // User-facing output

	for _, a := range report.Accounts {
		line := fmt.Sprintf("%s: balance %s, log delta %s, implied starting balance %s",
			a.Name,
			cli.FormatMoney(a.Balance, currency),
			cli.FormatSignedMoney(a.Deltas.Abs(), currency, a.Deltas.Sign() >= 0),
			cli.FormatMoney(a.Implied, currency))
		fmt.Println(cli.SubtleStyle.Render(line)) //nolint:forbidigo // User-facing output
	}
	if len(report.Accounts) > 0 {
		fmt.Println() //nolint:forbidigo // User-facing output
	}

	for _, m := range report.DebtMismatches {
		fmt.Println(cli.FormatError(fmt.Sprintf("debt %q: recorded paid %s, transactions sum to %s", //nolint:forbidigo // User-facing output
			m.Name,
			cli.FormatMoney(m.Recorded, currency),
			cli.FormatMoney(m.Derived, currency))))
	}
	if report.DanglingAccounts > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d transaction(s) reference a deleted account", report.DanglingAccounts))) //nolint:forbidigo // User-facing output
	}
	if report.DanglingDebts > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d payment(s) reference a deleted debt", report.DanglingDebts))) //nolint:forbidigo // User-facing output
	}

	if report.OK() {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Log consistent: %d transactions, %d debts checked", //nolint:forbidigo // User-facing output
			len(state.Transactions), len(state.Debts))))
	}

	if !report.OK() {
		return common.NewUserError(
			"Ledger state disagrees with the transaction log. Recent manual edits to the database are the usual cause.",
			fmt.Errorf("ledger check failed: %d debt mismatch(es)", len(report.DebtMismatches)),
		)
	}
	return nil
}
