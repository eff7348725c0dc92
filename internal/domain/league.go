package domain

import "time"

// LeagueSeason is one power league season as published in the CMS.
type LeagueSeason struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	ShortName       string          `json:"shortName,omitempty"`
	SeasonYear      *int            `json:"seasonYear,omitempty"`
	StartDate       *time.Time      `json:"startDate,omitempty"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	Location        string          `json:"location,omitempty"`
	AgeGroups       []AgeGroupEntry `json:"ageGroups"`
	EntryFee        *float64        `json:"entryFee,omitempty"`
	EntryDeadline   *time.Time      `json:"entryDeadline,omitempty"`
	Rules           string          `json:"rules,omitempty"`
	RegistrationURL string          `json:"registrationLink,omitempty"`
	HotelInfoURL    string          `json:"hotelInfoLink,omitempty"`
	ScheduleURL     string          `json:"scheduleLink,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type AgeGroupEntry struct {
	AgeGroup string `json:"ageGroup"`
	Notes    string `json:"notes,omitempty"`
}

// LeagueLink is the reduced projection used by the navigation menu.
type LeagueLink struct {
	Title           string     `json:"title"`
	RegistrationURL string     `json:"registrationLink,omitempty"`
	StartDate       *time.Time `json:"-"`
}
