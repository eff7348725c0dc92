package sanity

import (
	"fmt"
	"time"

	"github.com/dom/power-league-website/internal/domain"
)

// Sanity date fields are plain calendar dates; datetime fields are RFC 3339.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q is not a date", domain.ErrMalformedContent, field, *value)
}

func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
