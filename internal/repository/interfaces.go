package repository

import (
	"context"

	"github.com/dom/power-league-website/internal/domain"
)

// Content sources are read-only. Implementations return records in the
// backend's own order; the service layer owns the final ordering.

type LeagueSeasonRepository interface {
	List(ctx context.Context) ([]*domain.LeagueSeason, error)
	ListLinks(ctx context.Context) ([]*domain.LeagueLink, error)
}

type VenueRepository interface {
	List(ctx context.Context) ([]*domain.VenueLocation, error)
}

type AnnouncementRepository interface {
	// ListActive returns announcements flagged active, regardless of their
	// display window.
	ListActive(ctx context.Context) ([]*domain.Announcement, error)
}

type Repositories struct {
	LeagueSeason LeagueSeasonRepository
	Venue        VenueRepository
	Announcement AnnouncementRepository
}
