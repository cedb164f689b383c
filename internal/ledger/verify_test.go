package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

func TestCheck_CleanLedger(t *testing.T) {
	s := testSnapshot()
	s, _ = mustApply(t, s, NewIncome(testDate, "1", "Salary", dec("100"), ""))
	s, _ = mustApply(t, s, NewDebtPayment(testDate, "1", "d1", "Extra Payment", dec("40"), ""))

	report := Check(s)
	assert.True(t, report.OK())
	assert.Empty(t, report.DebtMismatches)
	assert.Zero(t, report.DanglingAccounts)
	assert.Zero(t, report.DanglingDebts)

	require.Len(t, report.Accounts, 1)
	acc := report.Accounts[0]
	assert.True(t, acc.Deltas.Equal(dec("60")))
	assert.True(t, acc.Implied.IsZero(), "account started at zero")
}

func TestCheck_DetectsDebtMismatch(t *testing.T) {
	s := testSnapshot()
	s, _ = mustApply(t, s, NewDebtPayment(testDate, "1", "d1", "Extra Payment", dec("40"), ""))

	// Corrupt the paid amount behind the ledger's back, as a damaged
	// database would.
	s.Debts[0].PaidAmount = dec("999")

	report := Check(s)
	assert.False(t, report.OK())
	require.Len(t, report.DebtMismatches, 1)
	m := report.DebtMismatches[0]
	assert.Equal(t, "d1", m.DebtID)
	assert.True(t, m.Recorded.Equal(dec("999")))
	assert.True(t, m.Derived.Equal(dec("40")))
}

func TestCheck_CountsDanglingReferences(t *testing.T) {
	s := testSnapshot()
	s, _ = mustApply(t, s, NewIncome(testDate, "1", "Salary", dec("100"), ""))
	s, _ = mustApply(t, s, NewDebtPayment(testDate, "1", "d1", "Extra Payment", dec("40"), ""))

	s = DeleteAccount(s, "1")
	s = DeleteDebt(s, "d1")

	report := Check(s)
	assert.True(t, report.OK(), "dangling references are tolerated, not errors")
	assert.Equal(t, 2, report.DanglingAccounts)
	assert.Equal(t, 1, report.DanglingDebts)
	assert.Empty(t, report.Accounts)
}

func TestCheckProgress_TicksPerTransaction(t *testing.T) {
	s := testSnapshot()
	s, _ = mustApply(t, s, NewIncome(testDate, "1", "Salary", dec("100"), ""))
	s, _ = mustApply(t, s, NewExpense(testDate, "1", "Food", dec("30"), ""))
	s, _ = mustApply(t, s, NewDebtPayment(testDate, "1", "d1", "Extra Payment", dec("40"), ""))

	var ticks int
	report := CheckProgress(s, func() { ticks++ })
	assert.Equal(t, len(s.Transactions), ticks)
	assert.True(t, report.OK())
}

func TestCheck_ImpliedInitialBalance(t *testing.T) {
	s := model.Snapshot{
		Accounts: []model.Account{
			{ID: "a1", Name: "Savings", Balance: dec("1070")},
		},
		Transactions: []model.Transaction{
			{ID: "t1", Date: testDate, Type: model.TypeIncome, AccountID: "a1", Amount: dec("100")},
			{ID: "t2", Date: testDate, Type: model.TypeExpense, AccountID: "a1", Amount: dec("30")},
		},
	}

	report := Check(s)
	require.Len(t, report.Accounts, 1)
	assert.True(t, report.Accounts[0].Deltas.Equal(dec("70")))
	assert.True(t, report.Accounts[0].Implied.Equal(decimal.RequireFromString("1000")))
}
