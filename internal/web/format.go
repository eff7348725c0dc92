package web

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "January 2, 2006"

var printer = message.NewPrinter(language.AmericanEnglish)

// formatDate renders a calendar date, or "TBA" when it is unknown.
func formatDate(t *time.Time) string {
	if t == nil {
		return "TBA"
	}
	return t.Format(dateLayout)
}

// formatDateRange renders "April 25 & 26, 2026" inside one month and
// "April 25 - May 2, 2026" across months. Either end missing gives "".
func formatDateRange(start, end *time.Time) string {
	if start == nil || end == nil {
		return ""
	}
	switch {
	case start.Year() != end.Year():
		return start.Format(dateLayout) + " - " + end.Format(dateLayout)
	case start.Month() == end.Month():
		if start.Day() == end.Day() {
			return end.Format(dateLayout)
		}
		return fmt.Sprintf("%s %d & %d, %d", start.Month(), start.Day(), end.Day(), end.Year())
	default:
		return fmt.Sprintf("%s %d - %s %d, %d", start.Month(), start.Day(), end.Month(), end.Day(), end.Year())
	}
}

// formatFee renders a USD amount with cents and thousands grouping.
func formatFee(fee *float64) string {
	if fee == nil {
		return ""
	}
	return printer.Sprintf("$%.2f", *fee)
}
