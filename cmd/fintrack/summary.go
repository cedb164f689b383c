package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thepnarinsuep-tech/fintrack/internal/cli"
	"github.com/thepnarinsuep-tech/fintrack/internal/ledger"
	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the dashboard: balances, trends, and today's activity",
		RunE:  runSummary,
	}

	cmd.Flags().IntP("year", "y", time.Now().Year(), "year for the monthly income/expense breakdown")
	_ = viper.BindPFlag("summary.year", cmd.Flags().Lookup("year"))

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
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

	year := viper.GetInt("summary.year")
	currency := displayCurrency()

	fmt.Println(cli.FormatTitle("Dashboard")) //nolint:forbidigo // User-facing output

	var balances strings.Builder
	for _, a := range state.Accounts {
		balances.WriteString(fmt.Sprintf("%-20s %16s\n", a.Name, cli.FormatMoney(a.Balance, currency)))
	}
	balances.WriteString(cli.BoldStyle.Render(fmt.Sprintf("%-20s %16s",
		"Total", cli.FormatMoney(ledger.TotalBalance(state), currency))))
	fmt.Println(cli.RenderBox("Balances", balances.String())) //nolint:forbidigo // User-facing output

	months := ledger.MonthlyTotals(state, year)
	var trend strings.Builder
	for _, m := range months {
		if m.Income.IsZero() && m.Expense.IsZero() {
			continue
		}
		trend.WriteString(fmt.Sprintf("%-4s income %14s   expense %14s\n",
			m.Month.String()[:3],
			cli.FormatMoney(m.Income, currency),
			cli.FormatMoney(m.Expense, currency)))
	}
	if trend.Len() == 0 {
		trend.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("No transactions recorded in %d.", year)))
	}
	fmt.Println(cli.RenderBox(fmt.Sprintf("Income vs Expenses %d", year), strings.TrimRight(trend.String(), "\n"))) //nolint:forbidigo // User-facing output

	categories := ledger.ExpensesByCategory(state)
	var dist strings.Builder
	for i, c := range categories {
		if i == 6 {
			dist.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("… and %d more", len(categories)-i)))
			break
		}
		dist.WriteString(fmt.Sprintf("%-22s %14s\n", c.Category, cli.FormatMoney(c.Amount, currency)))
	}
	if dist.Len() == 0 {
		dist.WriteString(cli.SubtleStyle.Render("No expenses recorded yet."))
	}
	fmt.Println(cli.RenderBox("Expense Distribution", strings.TrimRight(dist.String(), "\n"))) //nolint:forbidigo // User-facing output

	today := ledger.TransactionsOn(state, model.Today())
	var activity strings.Builder
	for _, t := range today {
		activity.WriteString(fmt.Sprintf("%-22s %-18s %14s\n",
			truncate(t.Category, 22),
			truncate(accountName(state, t.AccountID), 18),
			cli.FormatSignedMoney(t.Amount, currency, t.Type == model.TypeIncome)))
	}
	if activity.Len() == 0 {
		activity.WriteString(cli.SubtleStyle.Render("No transactions recorded for today yet."))
	}
	fmt.Println(cli.RenderBox("Transactions Today", strings.TrimRight(activity.String(), "\n"))) //nolint:forbidigo // User-facing output

	return nil
}
