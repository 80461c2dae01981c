package calculator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateChangePercent_Rise(t *testing.T) {
	open, current := d("10.00"), d("10.50")

	change := CalculateChange(open, current)
	pct, err := CalculateChangePercent(open, current)
	require.NoError(t, err)

	assert.Equal(t, "0.50", change.StringFixed(2))
	assert.Equal(t, "5.00", pct.StringFixed(2))
	assert.True(t, IsUp(change))
}

func TestCalculateChangePercent_Fall(t *testing.T) {
	open, current := d("20.00"), d("19.00")

	change := CalculateChange(open, current)
	pct, err := CalculateChangePercent(open, current)
	require.NoError(t, err)

	assert.Equal(t, "-1.00", change.StringFixed(2))
	assert.Equal(t, "-5.00", pct.StringFixed(2))
	assert.False(t, IsUp(change))
}

func TestCalculateChangePercent_Flat(t *testing.T) {
	open := d("7.25")
	change := CalculateChange(open, open)
	pct, err := CalculateChangePercent(open, open)
	require.NoError(t, err)

	assert.True(t, change.IsZero())
	assert.True(t, pct.IsZero())
	// unchanged session counts as up
	assert.True(t, IsUp(change))
}

func TestCalculateChangePercent_ZeroOpen(t *testing.T) {
	_, err := CalculateChangePercent(decimal.Zero, d("1.00"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZeroOpen))
}

func TestCalculateChangePercent_Formula(t *testing.T) {
	pairs := [][2]string{
		{"1", "2"},
		{"3.3", "1.1"},
		{"10520.4", "10611.9"},
		{"0.01", "0.02"},
		{"250", "249.75"},
	}
	for _, p := range pairs {
		open, current := d(p[0]), d(p[1])
		pct, err := CalculateChangePercent(open, current)
		require.NoError(t, err)

		want := current.Sub(open).Div(open).Mul(decimal.NewFromInt(100))
		assert.True(t, want.Equal(pct), "open=%s current=%s", p[0], p[1])
		assert.Equal(t, current.Sub(open).Sign() >= 0, IsUp(CalculateChange(open, current)))
	}
}
