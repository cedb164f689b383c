package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

// DebtMismatch reports a debt whose paid amount disagrees with the sum
// of the payment transactions that reference it.
type DebtMismatch struct {
	DebtID   string
	Name     string
	Recorded decimal.Decimal
	Derived  decimal.Decimal
}

// AccountActivity summarizes what the log implies about one account.
// Implied is the balance the account must have started with for the
// current balance to be consistent with the log (balance minus the sum
// of signed deltas). Initial balances are not stored separately, so
// this is informational rather than pass/fail.
type AccountActivity struct {
	AccountID string
	Name      string
	Balance   decimal.Decimal
	Deltas    decimal.Decimal
	Implied   decimal.Decimal
}

// Report is the result of checking a snapshot against its own log.
type Report struct {
	DebtMismatches   []DebtMismatch
	Accounts         []AccountActivity
	DanglingAccounts int
	DanglingDebts    int
}

// OK reports whether the snapshot passed every strict check.
func (r Report) OK() bool {
	return len(r.DebtMismatches) == 0
}

// Check replays the transaction log and compares it against the stored
// entity state. Debt paid-amounts are fully reconstructible (a debt
// starts with nothing paid and only payments move it), so any
// disagreement there is a hard mismatch. Account balances include an
// unstored initial balance, so accounts are reported as the implied
// initial value instead. Dangling references are counted, not flagged:
// deleting an account or debt intentionally leaves history behind.
func Check(s model.Snapshot) Report {
	return CheckProgress(s, nil)
}

// CheckProgress is Check with a callback invoked once per transaction
// replayed, for progress reporting over large logs. tick may be nil.
func CheckProgress(s model.Snapshot, tick func()) Report {
	var report Report

	paid := make(map[string]decimal.Decimal, len(s.Debts))
	deltas := make(map[string]decimal.Decimal, len(s.Accounts))
	for _, t := range s.Transactions {
		if tick != nil {
			tick()
		}
		if _, ok := s.Account(t.AccountID); ok {
			deltas[t.AccountID] = deltas[t.AccountID].Add(Delta(t.Type, t.Amount))
		} else {
			report.DanglingAccounts++
		}
		if t.Type != model.TypeDebtPayment {
			continue
		}
		if _, ok := s.Debt(t.DebtID); ok {
			paid[t.DebtID] = paid[t.DebtID].Add(t.Amount)
		} else {
			report.DanglingDebts++
		}
	}

	for _, d := range s.Debts {
		if derived := paid[d.ID]; !derived.Equal(d.PaidAmount) {
			report.DebtMismatches = append(report.DebtMismatches, DebtMismatch{
				DebtID:   d.ID,
				Name:     d.Name,
				Recorded: d.PaidAmount,
				Derived:  derived,
			})
		}
	}

	for _, a := range s.Accounts {
		delta := deltas[a.ID]
		report.Accounts = append(report.Accounts, AccountActivity{
			AccountID: a.ID,
			Name:      a.Name,
			Balance:   a.Balance,
			Deltas:    delta,
			Implied:   a.Balance.Sub(delta),
		})
	}

	return report
}
