// Package formatting provides parsing and display helpers shared across
// domain handlers: model-response JSON recovery, rupiah amounts, and
// Indonesian-locale dates.
package formatting

import (
	"strconv"
	"strings"
	"time"
)

var monthNames = []string{
	"Januari", "Februari", "Maret",
	"April", "Mei", "Juni",
	"Juli", "Agustus", "September",
	"Oktober", "November", "Desember",
}

// FormatRupiah renders an amount in rupiah with dot-grouped thousands
// and no decimal places, e.g. 2500000 -> "Rp2.500.000".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("Rp")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(".")
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(".")
		}
	}

	return b.String()
}

// FormatDateID renders a date in long Indonesian form, e.g. "15 Juni 1975".
func FormatDateID(t time.Time) string {
	return strconv.Itoa(t.Day()) + " " + monthNames[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// ParseISODate parses a YYYY-MM-DD date string.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
