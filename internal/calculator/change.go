package calculator

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrZeroOpen is returned when a percent change is requested against a zero open price.
var ErrZeroOpen = errors.New("open price is zero, percent change undefined")

var hundred = decimal.NewFromInt(100)

// CalculateChange returns the absolute move of the session, current minus open.
func CalculateChange(open, current decimal.Decimal) decimal.Decimal {
	return current.Sub(open)
}

// CalculateChangePercent returns (current - open) / open * 100.
func CalculateChangePercent(open, current decimal.Decimal) (decimal.Decimal, error) {
	if open.IsZero() {
		return decimal.Zero, ErrZeroOpen
	}
	return CalculateChange(open, current).Div(open).Mul(hundred), nil
}

// IsUp reports whether the session closed at or above its open.
func IsUp(change decimal.Decimal) bool {
	return !change.IsNegative()
}
