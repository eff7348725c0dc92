package postgres

import (
	"github.com/dom/power-league-website/internal/repository"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the content mirror. The schema belongs to the export
// job that fills the mirror, so nothing is migrated here.
func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Models lists the mirror tables.
func Models() []any {
	return []any{
		&LeagueSeasonRecord{},
		&VenueRecord{},
		&AnnouncementRecord{},
	}
}

func NewRepositories(db *gorm.DB, logger zerolog.Logger) *repository.Repositories {
	return &repository.Repositories{
		LeagueSeason: NewLeagueSeasonRepository(db),
		Venue:        NewVenueRepository(db, logger),
		Announcement: NewAnnouncementRepository(db),
	}
}
