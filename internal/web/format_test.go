package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "TBA", formatDate(nil))
	assert.Equal(t, "April 6, 2026", formatDate(day(2026, time.April, 6)))
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    *time.Time
		end      *time.Time
		expected string
	}{
		{"same month", day(2026, time.April, 25), day(2026, time.April, 26), "April 25 & 26, 2026"},
		{"single day", day(2026, time.April, 25), day(2026, time.April, 25), "April 25, 2026"},
		{"across months", day(2026, time.April, 25), day(2026, time.May, 2), "April 25 - May 2, 2026"},
		{"across years", day(2025, time.December, 30), day(2026, time.January, 3), "December 30, 2025 - January 3, 2026"},
		{"missing end", day(2026, time.April, 25), nil, ""},
		{"missing start", nil, day(2026, time.April, 25), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDateRange(tt.start, tt.end))
		})
	}
}

func TestFormatFee(t *testing.T) {
	fee := func(f float64) *float64 { return &f }

	assert.Equal(t, "", formatFee(nil))
	assert.Equal(t, "$550.00", formatFee(fee(550)))
	assert.Equal(t, "$1,250.50", formatFee(fee(1250.5)))
}
