package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thepnarinsuep-tech/fintrack/internal/model"
)

// Input validation errors.
var (
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrInvalidDate    = errors.New("invalid transaction date")
	ErrUnknownType    = errors.New("unknown transaction type")
	ErrMissingDebt    = errors.New("debt payment requires a debt reference")
	ErrUnexpectedDebt = errors.New("debt reference is only valid on debt payments")
)

// TransactionInput is a transaction minus its id: everything the caller
// supplies when recording a new ledger entry. Construct inputs through
// NewIncome, NewExpense, or NewDebtPayment so the debt-reference shape
// is correct by construction.
type TransactionInput struct {
	Date      model.Date
	Type      model.TransactionType
	AccountID string
	Category  string
	Note      string
	DebtID    string
	Amount    decimal.Decimal
}

// NewIncome builds an input that increases an account balance.
func NewIncome(date model.Date, accountID, category string, amount decimal.Decimal, note string) TransactionInput {
	return TransactionInput{
		Date:      date,
		Type:      model.TypeIncome,
		AccountID: accountID,
		Category:  category,
		Amount:    amount,
		Note:      note,
	}
}

// NewExpense builds an input that decreases an account balance.
func NewExpense(date model.Date, accountID, category string, amount decimal.Decimal, note string) TransactionInput {
	return TransactionInput{
		Date:      date,
		Type:      model.TypeExpense,
		AccountID: accountID,
		Category:  category,
		Amount:    amount,
		Note:      note,
	}
}

// NewDebtPayment builds an input that decreases an account balance and
// records repayment progress against a debt.
func NewDebtPayment(date model.Date, accountID, debtID, category string, amount decimal.Decimal, note string) TransactionInput {
	return TransactionInput{
		Date:      date,
		Type:      model.TypeDebtPayment,
		AccountID: accountID,
		Category:  category,
		Amount:    amount,
		Note:      note,
		DebtID:    debtID,
	}
}

// Validate checks the input shape before it reaches the ledger. Amounts
// must be strictly positive; downstream arithmetic assumes non-negative
// magnitudes.
func (in TransactionInput) Validate() error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, in.Type)
	}
	if _, err := model.ParseDate(string(in.Date)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, in.Amount)
	}
	if in.Type == model.TypeDebtPayment && in.DebtID == "" {
		return ErrMissingDebt
	}
	if in.Type != model.TypeDebtPayment && in.DebtID != "" {
		return fmt.Errorf("%w: type %s", ErrUnexpectedDebt, in.Type)
	}
	return nil
}
