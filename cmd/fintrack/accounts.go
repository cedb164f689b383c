package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thepnarinsuep-tech/fintrack/internal/cli"
	"github.com/thepnarinsuep-tech/fintrack/internal/common"
	"github.com/thepnarinsuep-tech/fintrack/internal/ledger"
	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
	}

	cmd.AddCommand(accountsListCmd())
	cmd.AddCommand(accountsAddCmd())
	cmd.AddCommand(accountsDeleteCmd())

	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts and balances",
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

			if len(state.Accounts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No accounts. Create one with 'fintrack accounts add'.")) //nolint:forbidigo // User-facing output
				return nil
			}

			currency := displayCurrency()
			for _, a := range state.Accounts {
				fmt.Printf("%-20s %16s  %-8s %s\n",
					a.Name,
					cli.FormatMoney(a.Balance, currency),
					a.Color,
					cli.SubtleStyle.Render(a.ID)) //nolint:forbidigo // User-facing output
			}
			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("%-20s %16s",
				"Total", cli.FormatMoney(ledger.TotalBalance(state), currency)))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func accountsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			name, _ := cmd.Flags().GetString("name")
			color, _ := cmd.Flags().GetString("color")
			balanceStr, _ := cmd.Flags().GetString("balance")

			if strings.TrimSpace(name) == "" {
				return common.NewUserError("please provide a name for the account", nil)
			}
			balance, err := parseAmount(balanceStr)
			if err != nil {
				return common.NewUserError("please provide a valid initial balance", err)
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

			next, acc := ledger.AddAccount(state, strings.TrimSpace(name), balance, color)
			if err := store.SaveSnapshot(ctx, next); err != nil {
				return fmt.Errorf("failed to save state: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Account created: %q", acc.Name))) //nolint:forbidigo // User-facing output
			fmt.Println(cli.SubtleStyle.Render("  id: " + acc.ID))                       //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().String("name", "", "account name")
	cmd.Flags().String("balance", "0", "initial balance")
	cmd.Flags().String("color", model.AccountColors[0], "color tag ("+strings.Join(model.AccountColors, ", ")+")")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func accountsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete an account",
		Long: `Delete an account by id.

Transactions referencing the account are kept; they show the account
as deleted and no longer affect any balance.`,
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

			acc, found := state.Account(id)
			if !found {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No account with id %s; nothing to do", id))) //nolint:forbidigo // User-facing output
				return nil
			}

			next := ledger.DeleteAccount(state, id)
			if err := store.SaveSnapshot(ctx, next); err != nil {
				return fmt.Errorf("failed to save state: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted account %q; its transactions remain in the log", acc.Name))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
