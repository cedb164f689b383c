// Package model defines the core data model for fintrack: accounts,
// debts, transactions, and the snapshot aggregate that ties them together.
package model

import (
	"github.com/shopspring/decimal"
)

// TransactionType identifies how a transaction affects balances.
type TransactionType string

// Transaction types. The string values are the wire/storage names.
const (
	TypeIncome      TransactionType = "INCOME"
	TypeExpense     TransactionType = "EXPENSE"
	TypeDebtPayment TransactionType = "DEBT_PAYMENT"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeDebtPayment:
		return true
	default:
		return false
	}
}

// Account is a named pool of money with a running balance.
type Account struct {
	ID      string
	Name    string
	Color   string
	Balance decimal.Decimal
}

// Debt tracks repayment progress against a fixed principal.
// PaidAmount may exceed TotalAmount; over-payment is never clamped.
type Debt struct {
	ID          string
	Name        string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
}

// Remaining returns the unpaid principal. Negative when over-paid.
func (d Debt) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

// Transaction is a single immutable ledger entry. DebtID is set only
// on DEBT_PAYMENT transactions.
type Transaction struct {
	ID        string
	Date      Date
	Type      TransactionType
	AccountID string
	Category  string
	Note      string
	DebtID    string
	Amount    decimal.Decimal
}

// Snapshot is the aggregate root: everything the tracker knows at one
// point in time. Transactions are ordered newest-first; all recent-
// activity views depend on that ordering. Snapshots are treated as
// immutable values; the ledger package produces new snapshots rather
// than mutating existing ones.
type Snapshot struct {
	Accounts     []Account
	Transactions []Transaction
	Debts        []Debt
}

// Account returns the account with the given id, if present.
func (s Snapshot) Account(id string) (Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Debt returns the debt with the given id, if present.
func (s Snapshot) Debt(id string) (Debt, bool) {
	for _, d := range s.Debts {
		if d.ID == id {
			return d, true
		}
	}
	return Debt{}, false
}

// Transaction returns the transaction with the given id, if present.
func (s Snapshot) Transaction(id string) (Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}
