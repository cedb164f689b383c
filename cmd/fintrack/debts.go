package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thepnarinsuep-tech/fintrack/internal/cli"
	"github.com/thepnarinsuep-tech/fintrack/internal/common"
	"github.com/thepnarinsuep-tech/fintrack/internal/ledger"
)

const debtProgressBarWidth = 24

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track debts and repayment progress",
	}

	cmd.AddCommand(debtsListCmd())
	cmd.AddCommand(debtsAddCmd())
	cmd.AddCommand(debtsDeleteCmd())

	return cmd
}

func debtsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List debts with repayment progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			if len(state.Debts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No debts currently tracked.")) //nolint:forbidigo // User-facing output
				return nil
			}

			currency := displayCurrency()
			for _, d := range state.Debts {
				progress := ledger.DebtProgress(d)
				percent, _ := progress.Float64()

				fmt.Println(cli.BoldStyle.Render(d.Name) + cli.SubtleStyle.Render("  "+d.ID)) //nolint:forbidigo // User-facing output
				fmt.Printf("  paid %s of %s (remaining %s)\n",
					cli.FormatMoney(d.PaidAmount, currency),
					cli.FormatMoney(d.TotalAmount, currency),
					cli.FormatMoney(d.Remaining(), currency)) //nolint:forbidigo // User-facing output
				fmt.Printf("  %s %s%%\n",
					cli.RenderProgressBar(percent, debtProgressBarWidth),
					progress.Round(1)) //nolint:forbidigo // User-facing output

				for _, p := range ledger.RecentDebtPayments(state, d.ID, 3) {
					fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("    %s  %s",
						p.Date, cli.FormatMoney(p.Amount, currency)))) //nolint:forbidigo // User-facing output
				}
				fmt.Println() //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}
}

func debtsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Start tracking a new debt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			name, _ := cmd.Flags().GetString("name")
			totalStr, _ := cmd.Flags().GetString("total")

			if strings.TrimSpace(name) == "" {
				return common.NewUserError("please provide a name for the debt", nil)
			}
			total, err := parseAmount(totalStr)
			if err != nil {
				return common.NewUserError("please provide a valid principal amount", err)
			}
			if !total.IsPositive() {
				return common.NewUserError("principal amount must be greater than zero", nil)
			}

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

			next, debt := ledger.AddDebt(state, strings.TrimSpace(name), total)
			if err := store.SaveSnapshot(ctx, next); err != nil {
				return fmt.Errorf("failed to save state: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Now tracking debt %q (%s)",
				debt.Name, cli.FormatMoney(debt.TotalAmount, displayCurrency())))) //nolint:forbidigo // User-facing output
			fmt.Println(cli.SubtleStyle.Render("  id: " + debt.ID)) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().String("name", "", "debt name (e.g. Car Loan)")
	cmd.Flags().String("total", "", "total principal amount")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func debtsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <debt-id>",
		Short: "Stop tracking a debt",
		Long: `Delete a debt by id.

Payment transactions referencing the debt are kept in the log; only
the progress tracking goes away.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			debt, found := state.Debt(id)
			if !found {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No debt with id %s; nothing to do", id))) //nolint:forbidigo // User-facing output
				return nil
			}

			next := ledger.DeleteDebt(state, id)
			if err := store.SaveSnapshot(ctx, next); err != nil {
				return fmt.Errorf("failed to save state: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Stopped tracking %q", debt.Name))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
