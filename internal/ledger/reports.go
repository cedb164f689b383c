package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

// Read-only projections over a snapshot. Nothing here is stored;
// everything is recomputed on demand from the transaction log and the
// entity sets.

// TotalBalance sums the balances of all accounts.
func TotalBalance(s model.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// CategoryTotal is an outflow total for one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// ExpensesByCategory totals outflows (expenses and debt payments) per
// category, largest first. Ties break alphabetically so the result is
// deterministic.
func ExpensesByCategory(s model.Snapshot) []CategoryTotal {
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range s.Transactions {
		if t.Type == model.TypeIncome {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// MonthTotals holds the income and outflow totals for one month.
type MonthTotals struct {
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyTotals computes income vs outflow for each month of the given
// year. Debt payments count as outflow.
func MonthlyTotals(s model.Snapshot, year int) []MonthTotals {
	months := make([]MonthTotals, 12)
	for i := range months {
		months[i] = MonthTotals{
			Month:   time.Month(i + 1),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}
	for _, t := range s.Transactions {
		if t.Date.Year() != year {
			continue
		}
		for i := range months {
			if !t.Date.InMonth(year, months[i].Month) {
				continue
			}
			if t.Type == model.TypeIncome {
				months[i].Income = months[i].Income.Add(t.Amount)
			} else {
				months[i].Expense = months[i].Expense.Add(t.Amount)
			}
			break
		}
	}
	return months
}

// DebtProgress returns the percentage of the debt repaid. The value is
// not clamped; over-payment yields more than 100. A zero-principal
// debt reports zero to avoid dividing by nothing.
func DebtProgress(d model.Debt) decimal.Decimal {
	if d.TotalAmount.IsZero() {
		return decimal.Zero
	}
	return d.PaidAmount.Div(d.TotalAmount).Mul(decimal.NewFromInt(100))
}

// TransactionsOn returns the transactions dated exactly on the given
// day, preserving log order.
func TransactionsOn(s model.Snapshot, date model.Date) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.Transactions {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

// RecentDebtPayments returns up to n of the most recent payments
// against the given debt. The log is newest-first, so a prefix scan is
// enough.
func RecentDebtPayments(s model.Snapshot, debtID string, n int) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.Transactions {
		if t.Type == model.TypeDebtPayment && t.DebtID == debtID {
			out = append(out, t)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// FilterTransactions narrows the log by type and by a case-insensitive
// substring search over category and note. An empty type matches all
// types; an empty search matches everything.
func FilterTransactions(s model.Snapshot, typ model.TransactionType, search string) []model.Transaction {
	search = strings.ToLower(search)
	var out []model.Transaction
	for _, t := range s.Transactions {
		if typ != "" && t.Type != typ {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Category+t.Note), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}
