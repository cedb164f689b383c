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

func txAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record an income, expense, or debt payment.

Income increases the account balance; expenses and debt payments
decrease it. A debt payment additionally advances the repayment
progress of the referenced debt.

Categories are free-form. Common ones:
` + categoryHints(),
		RunE: runTxAdd,
	}

	cmd.Flags().StringP("type", "t", "EXPENSE", "transaction type (INCOME, EXPENSE, DEBT_PAYMENT)")
	cmd.Flags().StringP("account", "a", "", "account id")
	cmd.Flags().StringP("amount", "m", "", "amount (must be greater than zero)")
	cmd.Flags().StringP("category", "c", "", "category (free-form; see suggestions per type)")
	cmd.Flags().StringP("date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringP("note", "n", "", "optional note")
	cmd.Flags().String("debt", "", "debt id (required for DEBT_PAYMENT)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func categoryHints() string {
	var b strings.Builder
	for _, typ := range []model.TransactionType{model.TypeIncome, model.TypeExpense, model.TypeDebtPayment} {
		b.WriteString(fmt.Sprintf("  %-13s %s\n", typ, strings.Join(model.SuggestedCategories[typ], ", ")))
	}
	return b.String()
}

func runTxAdd(cmd *cobra.Command, _ []string) error {
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

	typ := model.TransactionType(strings.ToUpper(cmd.Flag("type").Value.String()))
	accountID, _ := cmd.Flags().GetString("account")
	category, _ := cmd.Flags().GetString("category")
	note, _ := cmd.Flags().GetString("note")
	debtID, _ := cmd.Flags().GetString("debt")

	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := parseAmount(amountStr)
	if err != nil {
		return common.NewUserError("please provide a valid amount", err)
	}

	dateStr, _ := cmd.Flags().GetString("date")
	date, err := parseDateFlag(dateStr)
	if err != nil {
		return common.NewUserError("please provide the date as YYYY-MM-DD", err)
	}

	input := ledger.TransactionInput{
		Date:      date,
		Type:      typ,
		AccountID: accountID,
		Category:  category,
		Amount:    amount,
		Note:      note,
		DebtID:    debtID,
	}

	state, err := store.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	next, txn, err := ledger.Apply(state, input)
	if err != nil {
		return common.NewUserError("transaction rejected", err)
	}

	if _, ok := next.Account(txn.AccountID); !ok {
		common.LogWarn("account not found; balance unchanged", common.Fields{"account": txn.AccountID})
	}
	if txn.Type == model.TypeDebtPayment {
		if _, ok := next.Debt(txn.DebtID); !ok {
			common.LogWarn("debt not found; repayment progress unchanged", common.Fields{"debt": txn.DebtID})
		}
	}

	if err := store.SaveSnapshot(ctx, next); err != nil {
		common.LogError(err, "failed to persist transaction", common.Fields{"transaction": txn.ID})
		return common.NewUserError("the transaction could not be saved", err)
	}

	currency := displayCurrency()
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s) on %s",
		txn.Type,
		cli.FormatMoney(txn.Amount, currency),
		txn.Category,
		txn.Date))) //nolint:forbidigo // User-facing output
	fmt.Println(cli.SubtleStyle.Render("  id: " + txn.ID)) //nolint:forbidigo // User-facing output

	if acc, ok := next.Account(txn.AccountID); ok {
		fmt.Printf("  %s balance: %s\n", acc.Name, cli.FormatMoney(acc.Balance, currency)) //nolint:forbidigo // User-facing output
	}
	if debt, ok := next.Debt(txn.DebtID); ok && txn.Type == model.TypeDebtPayment {
		fmt.Printf("  %s paid: %s of %s\n", debt.Name,
			cli.FormatMoney(debt.PaidAmount, currency),
			cli.FormatMoney(debt.TotalAmount, currency)) //nolint:forbidigo // User-facing output
	}

	return nil
}
