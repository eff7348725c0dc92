package sanity

import (
	"context"

	"github.com/dom/power-league-website/internal/domain"
	"github.com/rs/zerolog"
)

const venuesQuery = `*[_type == "location"] | order(locationName asc){
  _id,
  locationName,
  addressLine1,
  addressLine2,
  seating,
  concessions,
  paymentMethods
}`

type venueDocument struct {
	ID             string   `json:"_id"`
	LocationName   string   `json:"locationName"`
	AddressLine1   string   `json:"addressLine1"`
	AddressLine2   string   `json:"addressLine2"`
	Seating        *string  `json:"seating"`
	Concessions    *bool    `json:"concessions"`
	PaymentMethods []string `json:"paymentMethods"`
}

type venueRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewVenueRepository(client *Client, logger zerolog.Logger) *venueRepository {
	return &venueRepository{
		client: client,
		logger: logger.With().Str("component", "sanity").Logger(),
	}
}

func (r *venueRepository) List(ctx context.Context) ([]*domain.VenueLocation, error) {
	var docs []venueDocument
	if err := r.client.Query(ctx, venuesQuery, nil, &docs); err != nil {
		return nil, err
	}

	venues := make([]*domain.VenueLocation, 0, len(docs))
	for _, doc := range docs {
		methods, unknown := domain.ParsePaymentMethods(doc.PaymentMethods)
		if len(unknown) > 0 {
			r.logger.Warn().
				Str("venue_id", doc.ID).
				Strs("tags", unknown).
				Msg("dropping unknown payment methods")
		}
		venues = append(venues, &domain.VenueLocation{
			ID:             doc.ID,
			Name:           doc.LocationName,
			AddressLine1:   doc.AddressLine1,
			AddressLine2:   doc.AddressLine2,
			Seating:        doc.Seating,
			Concessions:    doc.Concessions,
			PaymentMethods: methods,
		})
	}
	return venues, nil
}
