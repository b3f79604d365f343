package progress

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders counts with thousands separators ("12,340").
var printer = message.NewPrinter(language.English)

// FormatCount formats a count with thousands separators.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// Percent computes processed as a percentage of total. A zero total yields
// 0 rather than a division error: a phase may legitimately have nothing
// to do.
func Percent(processed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(processed) * 100 / float64(total)
}

// FormatPercent renders a percentage with two fixed decimals.
func FormatPercent(processed, total int64) string {
	return fmt.Sprintf("%.2f%%", Percent(processed, total))
}
