package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Instrument describes one tracked symbol and how it is presented in reports.
type Instrument struct {
	Symbol string `yaml:"symbol"`
	// Name is used when the provider reports no display name.
	Name string `yaml:"name"`
	// Label is the report section title, the upper-cased display name when empty.
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	// Currency and VolumeUnit are appended to prices and volume, e.g. "€" and "shares".
	Currency   string `yaml:"currency"`
	VolumeUnit string `yaml:"volume_unit"`
}

// Session is one trading day's aggregated data for an instrument.
type Session struct {
	Symbol   string
	LongName string
	Time     time.Time
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
	Volume   int64
}

// Empty reports whether the session carries no usable prices.
func (s *Session) Empty() bool {
	return s == nil || (s.Open.IsZero() && s.High.IsZero() && s.Low.IsZero() && s.Close.IsZero())
}
