package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{"thai baht", "1234.50", "THB", "฿1,234.50"},
		{"us dollars", "70", "USD", "$70.00"},
		{"negative", "-12.34", "USD", "-$12.34"},
		{"unknown code falls back to default", "5", "ZZZ", "฿5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(decimal.RequireFromString(tt.amount), tt.code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSignedMoney(t *testing.T) {
	amount := decimal.RequireFromString("100")
	assert.Equal(t, "+฿100.00", FormatSignedMoney(amount, "THB", true))
	assert.Equal(t, "-฿100.00", FormatSignedMoney(amount, "THB", false))
}

func TestRenderProgressBar_Widths(t *testing.T) {
	assert.Equal(t, "", RenderProgressBar(50, 0))

	// Over-payment clamps to a full bar for display only.
	full := RenderProgressBar(120, 10)
	empty := RenderProgressBar(0, 10)
	half := RenderProgressBar(50, 10)
	assert.NotEqual(t, full, empty)
	assert.NotEqual(t, half, full)
}
