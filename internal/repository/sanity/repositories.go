package sanity

import (
	"github.com/dom/power-league-website/internal/repository"
	"github.com/rs/zerolog"
)

func NewRepositories(client *Client, logger zerolog.Logger) *repository.Repositories {
	return &repository.Repositories{
		LeagueSeason: NewLeagueSeasonRepository(client),
		Venue:        NewVenueRepository(client, logger),
		Announcement: NewAnnouncementRepository(client),
	}
}
