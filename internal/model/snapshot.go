package model

import (
	"strings"

	"QuoteJournal/internal/calculator"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Direction is the sign of the daily move.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Snapshot is an instrument's latest session with derived change figures.
type Snapshot struct {
	Instrument    Instrument
	Name          string
	Current       decimal.Decimal
	Open          decimal.Decimal
	High          decimal.Decimal
	Low           decimal.Decimal
	Volume        int64
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
}

// NewSnapshot derives a Snapshot from a session. It fails when the open price is zero.
func NewSnapshot(inst Instrument, sess *Session) (Snapshot, error) {
	if sess == nil {
		return Snapshot{}, errors.Errorf("%s: no session", inst.Symbol)
	}
	pct, err := calculator.CalculateChangePercent(sess.Open, sess.Close)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, inst.Symbol)
	}

	name := sess.LongName
	if name == "" {
		name = inst.Name
	}
	if name == "" {
		name = inst.Symbol
	}

	return Snapshot{
		Instrument:    inst,
		Name:          name,
		Current:       sess.Close,
		Open:          sess.Open,
		High:          sess.High,
		Low:           sess.Low,
		Volume:        sess.Volume,
		Change:        calculator.CalculateChange(sess.Open, sess.Close),
		ChangePercent: pct,
	}, nil
}

// Direction returns up when the change is non-negative.
func (s Snapshot) Direction() Direction {
	if calculator.IsUp(s.Change) {
		return DirectionUp
	}
	return DirectionDown
}

// Title is the section heading used in reports.
func (s Snapshot) Title() string {
	if s.Instrument.Label != "" {
		return s.Instrument.Label
	}
	return strings.ToUpper(s.Name)
}
