package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places kept for currency amounts.
const MoneyPrecision = 2

var hundred = decimal.NewFromInt(100)

// MaxMoneyAmount is the exclusive upper bound of a stored amount, matching
// the NUMERIC(12,2) columns.
var MaxMoneyAmount = decimal.New(1, 10)

// HasMoneyPrecision reports whether amount has no significant digits past
// MoneyPrecision places. "1.500" qualifies, "0.005" does not.
func HasMoneyPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(MoneyPrecision))
}

// InMoneyRange reports whether amount fits the stored money columns.
func InMoneyRange(amount decimal.Decimal) bool {
	return amount.Abs().LessThan(MaxMoneyAmount)
}

// RoundMoney rounds amount to MoneyPrecision places, half away from zero.
// Example: 21.111 returns 21.11, 0.125 returns 0.13
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// FormatMoney formats amount with exactly MoneyPrecision places ("250.00").
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}

// PercentOf returns part/whole*100 rounded to MoneyPrecision places.
// A non-positive whole yields zero.
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return RoundMoney(part.Div(whole).Mul(hundred))
}
