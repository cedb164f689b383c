package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thepnarinsuep-tech/fintrack/internal/cli"
	"github.com/thepnarinsuep-tech/fintrack/internal/ledger"
	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

func txListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE:  runTxList,
	}

	cmd.Flags().StringP("type", "t", "", "filter by type (INCOME, EXPENSE, DEBT_PAYMENT)")
	cmd.Flags().StringP("search", "s", "", "search category and note")
	cmd.Flags().IntP("limit", "l", 0, "show at most this many transactions (0 = all)")

	_ = viper.BindPFlag("list.limit", cmd.Flags().Lookup("limit"))

	return cmd
}

func runTxList(cmd *cobra.Command, _ []string) error {
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

	typFlag, _ := cmd.Flags().GetString("type")
	search, _ := cmd.Flags().GetString("search")
	limit := viper.GetInt("list.limit")

	txns := ledger.FilterTransactions(state, model.TransactionType(strings.ToUpper(typFlag)), search)
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
	}

	if len(txns) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No matching transactions found.")) //nolint:forbidigo // User-facing output
		return nil
	}

	currency := displayCurrency()
	header := fmt.Sprintf("%-12s %-14s %-18s %-22s %14s  %s",
		"DATE", "TYPE", "ACCOUNT", "CATEGORY", "AMOUNT", "ID")
	fmt.Println(cli.TableHeaderStyle.Render(header)) //nolint:forbidigo // User-facing output

	for _, t := range txns {
		amount := cli.FormatSignedMoney(t.Amount, currency, t.Type == model.TypeIncome)
		row := fmt.Sprintf("%-12s %-14s %-18s %-22s %14s  %s",
			t.Date, t.Type, truncate(accountName(state, t.AccountID), 18),
			truncate(t.Category, 22), amount, t.ID)
		if t.Type == model.TypeIncome {
			row = cli.IncomeStyle.Render(row)
		}
		fmt.Println(row) //nolint:forbidigo // User-facing output
		if t.Note != "" {
			fmt.Println(cli.SubtleStyle.Render("             " + t.Note)) //nolint:forbidigo // User-facing output
		}
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
