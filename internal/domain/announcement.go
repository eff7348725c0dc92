package domain

import "time"

// Announcement is the homepage message of the day.
type Announcement struct {
	ID           string     `json:"id"`
	Message      string     `json:"message"`
	Active       bool       `json:"active"`
	DisplayStart *time.Time `json:"displayStart,omitempty"`
	DisplayEnd   *time.Time `json:"displayEnd,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// VisibleAt reports whether the announcement should be shown at now.
// Both bounds are inclusive and an unset bound is open.
func (a *Announcement) VisibleAt(now time.Time) bool {
	if !a.Active {
		return false
	}
	if a.DisplayStart != nil && now.Before(*a.DisplayStart) {
		return false
	}
	if a.DisplayEnd != nil && now.After(*a.DisplayEnd) {
		return false
	}
	return true
}

// SortKey is the instant used to pick the most recent announcement.
func (a *Announcement) SortKey() time.Time {
	if a.DisplayStart != nil {
		return *a.DisplayStart
	}
	return a.UpdatedAt
}
