package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

func reportSnapshot() model.Snapshot {
	return model.Snapshot{
		Accounts: []model.Account{
			{ID: "a1", Name: "Cash", Balance: decimal.RequireFromString("150")},
			{ID: "a2", Name: "Main Bank", Balance: decimal.RequireFromString("-30.5")},
		},
		Debts: []model.Debt{
			{ID: "d1", Name: "Car Loan", TotalAmount: dec("500"), PaidAmount: dec("125")},
		},
		Transactions: []model.Transaction{
			{ID: "t5", Date: "2026-09-01", Type: model.TypeExpense, AccountID: "a1", Category: "Food", Amount: dec("20"), Note: "groceries"},
			{ID: "t4", Date: "2026-08-15", Type: model.TypeDebtPayment, AccountID: "a2", DebtID: "d1", Category: "Monthly Installment", Amount: dec("75")},
			{ID: "t3", Date: "2026-08-02", Type: model.TypeDebtPayment, AccountID: "a2", DebtID: "d1", Category: "Extra Payment", Amount: dec("50")},
			{ID: "t2", Date: "2026-03-10", Type: model.TypeExpense, AccountID: "a1", Category: "Food", Amount: dec("35")},
			{ID: "t1", Date: "2025-12-31", Type: model.TypeIncome, AccountID: "a1", Category: "Salary", Amount: dec("1000"), Note: "december pay"},
		},
	}
}

func TestTotalBalance(t *testing.T) {
	s := reportSnapshot()
	assert.True(t, TotalBalance(s).Equal(dec("119.5")))
	assert.True(t, TotalBalance(model.Snapshot{}).IsZero())
}

func TestExpensesByCategory(t *testing.T) {
	totals := ExpensesByCategory(reportSnapshot())

	require.Len(t, totals, 3)
	// Largest first; debt payments count as outflow.
	assert.Equal(t, "Monthly Installment", totals[0].Category)
	assert.True(t, totals[0].Amount.Equal(dec("75")))
	assert.Equal(t, "Food", totals[1].Category)
	assert.True(t, totals[1].Amount.Equal(dec("55")))
	assert.Equal(t, "Extra Payment", totals[2].Category)
	assert.True(t, totals[2].Amount.Equal(dec("50")))
}

func TestMonthlyTotals(t *testing.T) {
	months := MonthlyTotals(reportSnapshot(), 2026)

	require.Len(t, months, 12)
	assert.Equal(t, time.January, months[0].Month)

	march := months[2]
	assert.True(t, march.Income.IsZero())
	assert.True(t, march.Expense.Equal(dec("35")))

	august := months[7]
	assert.True(t, august.Expense.Equal(dec("125")), "debt payments are outflow")

	september := months[8]
	assert.True(t, september.Expense.Equal(dec("20")))

	// The december income belongs to 2025, not 2026.
	december := months[11]
	assert.True(t, december.Income.IsZero())

	lastYear := MonthlyTotals(reportSnapshot(), 2025)
	assert.True(t, lastYear[11].Income.Equal(dec("1000")))
}

func TestDebtProgress(t *testing.T) {
	tests := []struct {
		name  string
		total string
		paid  string
		want  string
	}{
		{"quarter paid", "500", "125", "25"},
		{"fully paid", "500", "500", "100"},
		{"over-paid exceeds 100", "500", "600", "120"},
		{"zero principal", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := model.Debt{TotalAmount: dec(tt.total), PaidAmount: dec(tt.paid)}
			assert.True(t, DebtProgress(d).Equal(dec(tt.want)),
				"DebtProgress = %s, want %s", DebtProgress(d), tt.want)
		})
	}
}

func TestTransactionsOn(t *testing.T) {
	today := TransactionsOn(reportSnapshot(), "2026-09-01")
	require.Len(t, today, 1)
	assert.Equal(t, "t5", today[0].ID)

	assert.Empty(t, TransactionsOn(reportSnapshot(), "2026-09-02"))
}

func TestRecentDebtPayments(t *testing.T) {
	s := reportSnapshot()

	recent := RecentDebtPayments(s, "d1", 3)
	require.Len(t, recent, 2)
	// Log order: newest first.
	assert.Equal(t, "t4", recent[0].ID)
	assert.Equal(t, "t3", recent[1].ID)

	capped := RecentDebtPayments(s, "d1", 1)
	require.Len(t, capped, 1)
	assert.Equal(t, "t4", capped[0].ID)

	assert.Empty(t, RecentDebtPayments(s, "no-such-debt", 3))
}

func TestFilterTransactions(t *testing.T) {
	s := reportSnapshot()

	all := FilterTransactions(s, "", "")
	assert.Len(t, all, 5)

	incomes := FilterTransactions(s, model.TypeIncome, "")
	require.Len(t, incomes, 1)
	assert.Equal(t, "t1", incomes[0].ID)

	// Case-insensitive search over category and note.
	food := FilterTransactions(s, "", "FOOD")
	assert.Len(t, food, 2)

	notes := FilterTransactions(s, "", "groceries")
	require.Len(t, notes, 1)
	assert.Equal(t, "t5", notes[0].ID)

	both := FilterTransactions(s, model.TypeExpense, "december")
	assert.Empty(t, both)
}
