package report

import (
	"fmt"
	"strings"
	"time"

	"QuoteJournal/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// TimestampLayout is day/month/year with 24-hour time.
const TimestampLayout = "02/01/2006 - 15:04:05"

const width = 70

var (
	heavyRule = strings.Repeat("=", width)
	lightRule = strings.Repeat("─", width)
)

// Format renders the snapshots of one run as a report block stamped with at.
// The output depends only on its arguments.
func Format(at time.Time, snaps []model.Snapshot) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(heavyRule + "\n")
	b.WriteString("                    📊 MARKET SUMMARY\n")
	b.WriteString(heavyRule + "\n")
	b.WriteString(fmt.Sprintf("Date and Time: %s\n", at.Format(TimestampLayout)))
	b.WriteString(heavyRule + "\n")

	for _, s := range snaps {
		writeSection(&b, s)
	}

	b.WriteString("\n\n")
	return b.String()
}

func writeSection(b *strings.Builder, s model.Snapshot) {
	inst := s.Instrument

	b.WriteString("\n")
	if inst.Icon != "" {
		b.WriteString(inst.Icon + " ")
	}
	b.WriteString(s.Title() + "\n")
	b.WriteString(lightRule + "\n")

	writeField(b, "Current Price:", withUnit(s.Current.StringFixed(2), inst.Currency))
	writeField(b, "Open Price:", withUnit(s.Open.StringFixed(2), inst.Currency))
	writeField(b, "High Price:", withUnit(s.High.StringFixed(2), inst.Currency))
	writeField(b, "Low Price:", withUnit(s.Low.StringFixed(2), inst.Currency))
	b.WriteString("  \n")
	writeField(b, "Daily Change:", fmt.Sprintf("%s (%s%%)",
		withUnit(Signed(s.Change), inst.Currency), Signed(s.ChangePercent)))
	b.WriteString("  " + Indicator(s.Direction()) + "\n")
	b.WriteString("  \n")
	writeField(b, "Volume:", withUnit(humanize.Comma(s.Volume), inst.VolumeUnit))

	b.WriteString("\n")
	b.WriteString(heavyRule + "\n")
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %-21s%s\n", label, value))
}

func withUnit(v, unit string) string {
	if unit == "" {
		return v
	}
	return v + " " + unit
}

// Signed renders d with two decimals and an explicit sign.
// The sign is taken before rounding, so -0.001 renders as -0.00.
func Signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + d.Abs().StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}

// Indicator is the directional marker shown under the daily change.
func Indicator(dir model.Direction) string {
	if dir == model.DirectionDown {
		return "📉 DOWN"
	}
	return "📈 UP"
}
