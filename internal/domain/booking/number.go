package booking

import (
	"fmt"
	"time"
)

// DateKey returns the sequence-counter key for a calendar day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatNumber renders the public booking number: BK-{YY}{MM}{DD}-{seq},
// zero-padded to four digits. Sequences past 9999 widen the field
// instead of wrapping.
func FormatNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("BK-%s-%04d", day.Format("060102"), seq)
}
