// Package ledger implements the state-update engine: the pure
// transitions that keep account balances and debt paid-amounts
// consistent with the transaction log.
//
// Every operation maps (snapshot, input) to a new snapshot. The input
// snapshot is never mutated; unaffected entities are shared between
// the old and new snapshots, so callers may keep reading a previous
// snapshot while a transition is computed. Balance updates are linear
// per-transaction deltas, which makes apply and reverse commutative:
// any subset of transactions can be reversed in any order and the
// balances land in the same place.
package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

// DefaultSnapshot returns the state used when no saved snapshot
// exists: two zero-balance accounts and nothing else.
func DefaultSnapshot() model.Snapshot {
	return model.Snapshot{
		Accounts: []model.Account{
			{ID: uuid.NewString(), Name: "Cash", Color: "emerald", Balance: decimal.Zero},
			{ID: uuid.NewString(), Name: "Main Bank", Color: "blue", Balance: decimal.Zero},
		},
	}
}

// Delta returns the signed effect of a transaction type on an account
// balance: positive for income, negative otherwise.
func Delta(typ model.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if typ == model.TypeIncome {
		return amount
	}
	return amount.Neg()
}

// Apply validates the input, records it as a new transaction at the
// head of the log, and adjusts the referenced account and debt.
//
// A missing account or debt reference is tolerated: the transaction is
// still recorded and the adjustment for the entity that cannot be
// found is skipped. Validation failures leave the snapshot untouched.
func Apply(s model.Snapshot, in TransactionInput) (model.Snapshot, model.Transaction, error) {
	if err := in.Validate(); err != nil {
		return s, model.Transaction{}, err
	}

	txn := model.Transaction{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Type:      in.Type,
		AccountID: in.AccountID,
		Category:  in.Category,
		Amount:    in.Amount,
		Note:      in.Note,
		DebtID:    in.DebtID,
	}

	next := model.Snapshot{
		Accounts:     adjustAccount(s.Accounts, txn.AccountID, Delta(txn.Type, txn.Amount)),
		Transactions: prepend(s.Transactions, txn),
		Debts:        s.Debts,
	}
	if txn.Type == model.TypeDebtPayment {
		next.Debts = adjustDebt(s.Debts, txn.DebtID, txn.Amount)
	}
	return next, txn, nil
}

// Reverse removes the transaction with the given id and restores the
// affected account and debt to their pre-transaction values, computed
// from the transaction's own recorded type and amount. An unknown id
// is an idempotent no-op.
func Reverse(s model.Snapshot, id string) model.Snapshot {
	idx := -1
	for i, t := range s.Transactions {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	txn := s.Transactions[idx]

	next := model.Snapshot{
		Accounts:     adjustAccount(s.Accounts, txn.AccountID, Delta(txn.Type, txn.Amount).Neg()),
		Transactions: remove(s.Transactions, idx),
		Debts:        s.Debts,
	}
	if txn.Type == model.TypeDebtPayment {
		next.Debts = adjustDebt(s.Debts, txn.DebtID, txn.Amount.Neg())
	}
	return next
}

// AddAccount appends a new account with a generated id.
func AddAccount(s model.Snapshot, name string, initialBalance decimal.Decimal, color string) (model.Snapshot, model.Account) {
	acc := model.Account{
		ID:      uuid.NewString(),
		Name:    name,
		Color:   color,
		Balance: initialBalance,
	}
	next := s
	next.Accounts = append(copyAccounts(s.Accounts), acc)
	return next, acc
}

// DeleteAccount removes the account from the account set. Transactions
// referencing it are left in the log with a dangling reference;
// deletion never rewrites history.
func DeleteAccount(s model.Snapshot, id string) model.Snapshot {
	next := s
	next.Accounts = filterAccounts(s.Accounts, id)
	return next
}

// AddDebt appends a new debt with a generated id and nothing paid.
func AddDebt(s model.Snapshot, name string, totalAmount decimal.Decimal) (model.Snapshot, model.Debt) {
	debt := model.Debt{
		ID:          uuid.NewString(),
		Name:        name,
		TotalAmount: totalAmount,
		PaidAmount:  decimal.Zero,
	}
	next := s
	next.Debts = append(copyDebts(s.Debts), debt)
	return next, debt
}

// DeleteDebt removes the debt. Payment transactions referencing it are
// left in the log with a dangling reference.
func DeleteDebt(s model.Snapshot, id string) model.Snapshot {
	next := s
	next.Debts = filterDebts(s.Debts, id)
	return next
}

// adjustAccount returns a copy of accounts with delta added to the
// balance of the matching account. When no account matches, the input
// slice is returned unchanged.
func adjustAccount(accounts []model.Account, id string, delta decimal.Decimal) []model.Account {
	for i, a := range accounts {
		if a.ID == id {
			out := copyAccounts(accounts)
			out[i].Balance = a.Balance.Add(delta)
			return out
		}
	}
	return accounts
}

// adjustDebt is the debt counterpart of adjustAccount: delta is added
// to PaidAmount, with no clamping against TotalAmount.
func adjustDebt(debts []model.Debt, id string, delta decimal.Decimal) []model.Debt {
	for i, d := range debts {
		if d.ID == id {
			out := copyDebts(debts)
			out[i].PaidAmount = d.PaidAmount.Add(delta)
			return out
		}
	}
	return debts
}

func prepend(txns []model.Transaction, txn model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns)+1)
	out = append(out, txn)
	return append(out, txns...)
}

func remove(txns []model.Transaction, idx int) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns)-1)
	out = append(out, txns[:idx]...)
	return append(out, txns[idx+1:]...)
}

func copyAccounts(accounts []model.Account) []model.Account {
	out := make([]model.Account, len(accounts))
	copy(out, accounts)
	return out
}

func copyDebts(debts []model.Debt) []model.Debt {
	out := make([]model.Debt, len(debts))
	copy(out, debts)
	return out
}

func filterAccounts(accounts []model.Account, dropID string) []model.Account {
	out := make([]model.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.ID != dropID {
			out = append(out, a)
		}
	}
	return out
}

func filterDebts(debts []model.Debt, dropID string) []model.Debt {
	out := make([]model.Debt, 0, len(debts))
	for _, d := range debts {
		if d.ID != dropID {
			out = append(out, d)
		}
	}
	return out
}
