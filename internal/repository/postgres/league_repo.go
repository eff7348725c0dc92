package postgres

import (
	"context"
	"fmt"

	"github.com/dom/power-league-website/internal/domain"
	"gorm.io/gorm"
)

type leagueSeasonRepository struct {
	db *gorm.DB
}

func NewLeagueSeasonRepository(db *gorm.DB) *leagueSeasonRepository {
	return &leagueSeasonRepository{db: db}
}

func (r *leagueSeasonRepository) List(ctx context.Context) ([]*domain.LeagueSeason, error) {
	var records []*LeagueSeasonRecord
	err := r.db.WithContext(ctx).Order("start_date DESC NULLS LAST").Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}

	seasons := make([]*domain.LeagueSeason, len(records))
	for i, rec := range records {
		seasons[i] = rec.toDomain()
	}
	return seasons, nil
}

func (r *leagueSeasonRepository) ListLinks(ctx context.Context) ([]*domain.LeagueLink, error) {
	var records []*LeagueSeasonRecord
	err := r.db.WithContext(ctx).
		Select("id", "title", "registration_url", "start_date").
		Order("start_date DESC NULLS LAST").
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}

	links := make([]*domain.LeagueLink, len(records))
	for i, rec := range records {
		links[i] = &domain.LeagueLink{
			Title:           rec.Title,
			RegistrationURL: rec.RegistrationURL,
			StartDate:       rec.StartDate,
		}
	}
	return links, nil
}
