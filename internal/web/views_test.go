package web

import (
	"testing"

	"github.com/dom/power-league-website/internal/domain"
	"github.com/dom/power-league-website/internal/static"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHomeView_NoSeasons(t *testing.T) {
	view := buildHomeView(nil, nil)

	assert.Equal(t, "Loading tournament information...", view.Subtitle)
	assert.Equal(t, unavailableMessage, view.Unavailable)
	assert.Empty(t, view.Cards)
	assert.Empty(t, view.Seasons)
	assert.Empty(t, view.Announcement)
}

func TestBuildHomeView_Cards(t *testing.T) {
	seasons := []*domain.LeagueSeason{
		{Title: "Spring 2026", HotelInfoURL: "https://hotels.example.com", ScheduleURL: "https://schedule.example.com"},
		{Title: "Fall 2025"},
	}

	view := buildHomeView(seasons, &domain.Announcement{Message: "Doors open at 7"})

	assert.Equal(t, "Doors open at 7", view.Announcement)
	assert.Empty(t, view.Unavailable)
	require.Len(t, view.Cards, 4)
	assert.Equal(t, NavLink{Label: "Schedule", URL: "https://schedule.example.com"}, view.Cards[0])
	assert.Equal(t, "Hotel Information", view.Cards[1].Label)
	assert.Len(t, view.Seasons, 2)
}

func TestBuildHomeView_NoHotelCard(t *testing.T) {
	view := buildHomeView([]*domain.LeagueSeason{{Title: "Spring 2026"}}, nil)

	require.Len(t, view.Cards, 3)
	assert.Equal(t, "/information#schedule", view.Cards[0].URL)
	for _, c := range view.Cards {
		assert.NotEqual(t, "Hotel Information", c.Label)
	}
}

func TestBuildSeasonView(t *testing.T) {
	fee := 550.0
	view := buildSeasonView(&domain.LeagueSeason{
		Title:         "Spring 2026",
		StartDate:     day(2026, 4, 25),
		EndDate:       day(2026, 4, 26),
		EntryFee:      &fee,
		EntryDeadline: day(2026, 4, 6),
	})

	assert.Equal(t, "April 25 & 26, 2026", view.DateRange)
	assert.Equal(t, static.DefaultVenue, view.Location)
	assert.Equal(t, "$550.00", view.EntryFee)
	assert.Equal(t, "April 6, 2026", view.EntryDeadline)
}

func TestBuildLocationsView(t *testing.T) {
	seating := "Bleachers on both courts"
	concessions := true
	venues := []*domain.VenueLocation{
		{
			ID:             "dunes",
			Name:           "Dunes",
			Seating:        &seating,
			Concessions:    &concessions,
			PaymentMethods: []domain.PaymentMethod{domain.PaymentCash, domain.PaymentVenmo},
		},
		{ID: "fieldhouse", Name: "Fieldhouse"},
	}

	view := buildLocationsView(nil, venues)

	require.Len(t, view.Venues, 2)
	assert.Equal(t, seating, view.Venues[0].Seating)
	assert.True(t, view.Venues[0].HasSeating)
	assert.Equal(t, "Concessions available", view.Venues[0].ConcessionsText)
	require.Len(t, view.Venues[0].PaymentMethods, 2)
	assert.Equal(t, PaymentView{Tag: "cash", Label: "Cash", Icon: "/assets/icons/banknotes.svg"}, view.Venues[0].PaymentMethods[0])

	assert.Equal(t, "Information not available", view.Venues[1].Seating)
	assert.False(t, view.Venues[1].HasSeating)
	assert.Equal(t, "No concessions available onsite", view.Venues[1].ConcessionsText)
	assert.Empty(t, view.Venues[1].PaymentMethods)
}

func TestBuildInformationView(t *testing.T) {
	tests := []struct {
		name          string
		section       string
		expectedID    string
		expectWinners bool
	}{
		{"default tab", "", static.SectionRulebook, false},
		{"unknown tab", "nope", static.SectionRulebook, false},
		{"facility rules", "facility-rules", "facility-rules", false},
		{"previous winners", static.SectionPreviousWinners, static.SectionPreviousWinners, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := buildInformationView(nil, tt.section)

			assert.Equal(t, tt.expectedID, view.Section.ID)
			assert.Equal(t, tt.expectWinners, len(view.Winners) > 0)

			active := 0
			for _, tab := range view.Tabs {
				if tab.Active {
					active++
					assert.Equal(t, tt.expectedID, tab.ID)
				}
			}
			assert.Equal(t, 1, active)
		})
	}
}

func TestNewLayout_Registrations(t *testing.T) {
	layout := newLayout("Title", "", []*domain.LeagueSeason{
		{Title: "Spring 2026", RegistrationURL: "https://register.example.com/spring"},
		{Title: "Fall 2025"},
	})

	assert.Equal(t, []NavLink{{Label: "Spring 2026", URL: "https://register.example.com/spring"}}, layout.Registrations)
	assert.Equal(t, static.SiteName, layout.SiteName)
}
