package postgres

import (
	"context"
	"fmt"

	"github.com/dom/power-league-website/internal/domain"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type venueRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewVenueRepository(db *gorm.DB, logger zerolog.Logger) *venueRepository {
	return &venueRepository{
		db:     db,
		logger: logger.With().Str("component", "postgres").Logger(),
	}
}

func (r *venueRepository) List(ctx context.Context) ([]*domain.VenueLocation, error) {
	var records []*VenueRecord
	err := r.db.WithContext(ctx).Order("name ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}

	venues := make([]*domain.VenueLocation, len(records))
	for i, rec := range records {
		methods, unknown := domain.ParsePaymentMethods(rec.PaymentMethods)
		if len(unknown) > 0 {
			r.logger.Warn().
				Str("venue_id", rec.ID).
				Strs("tags", unknown).
				Msg("dropping unknown payment methods")
		}
		venues[i] = &domain.VenueLocation{
			ID:             rec.ID,
			Name:           rec.Name,
			AddressLine1:   rec.AddressLine1,
			AddressLine2:   rec.AddressLine2,
			Seating:        rec.Seating,
			Concessions:    rec.Concessions,
			PaymentMethods: methods,
		}
	}
	return venues, nil
}
