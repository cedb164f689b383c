package cli

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = money.THB

// FormatMoney renders an amount with its currency symbol and grouping,
// e.g. ฿1,234.50. Unknown currency codes fall back to the default.
func FormatMoney(amount decimal.Decimal, code string) string {
	currency := money.GetCurrency(code)
	if currency == nil {
		currency = money.GetCurrency(DefaultCurrency)
	}
	minor := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}

// FormatSignedMoney prefixes the amount with + for income and - for
// outflow, matching the transaction-list rendering.
func FormatSignedMoney(amount decimal.Decimal, code string, income bool) string {
	if income {
		return "+" + FormatMoney(amount, code)
	}
	return "-" + FormatMoney(amount, code)
}
