package sanity

import (
	"context"

	"github.com/dom/power-league-website/internal/domain"
)

const leagueSeasonsQuery = `*[_type == "powerLeague"] | order(startDate desc){
  _id,
  _updatedAt,
  title,
  shortName,
  seasonYear,
  startDate,
  endDate,
  location,
  ageGroups[]{
    ageGroup,
    notes
  },
  entryFee,
  entryDeadline,
  rules,
  registrationLink,
  hotelInfoLink,
  scheduleLink
}`

const leagueLinksQuery = `*[_type == "powerLeague"] | order(startDate desc){
  title,
  registrationLink,
  startDate
}`

type leagueDocument struct {
	ID               string             `json:"_id"`
	UpdatedAt        string             `json:"_updatedAt"`
	Title            string             `json:"title"`
	ShortName        string             `json:"shortName"`
	SeasonYear       *int               `json:"seasonYear"`
	StartDate        *string            `json:"startDate"`
	EndDate          *string            `json:"endDate"`
	Location         string             `json:"location"`
	AgeGroups        []ageGroupDocument `json:"ageGroups"`
	EntryFee         *float64           `json:"entryFee"`
	EntryDeadline    *string            `json:"entryDeadline"`
	Rules            string             `json:"rules"`
	RegistrationLink string             `json:"registrationLink"`
	HotelInfoLink    string             `json:"hotelInfoLink"`
	ScheduleLink     string             `json:"scheduleLink"`
}

type ageGroupDocument struct {
	AgeGroup string `json:"ageGroup"`
	Notes    string `json:"notes"`
}

type leagueLinkDocument struct {
	Title            string  `json:"title"`
	RegistrationLink string  `json:"registrationLink"`
	StartDate        *string `json:"startDate"`
}

type leagueSeasonRepository struct {
	client *Client
}

func NewLeagueSeasonRepository(client *Client) *leagueSeasonRepository {
	return &leagueSeasonRepository{client: client}
}

func (r *leagueSeasonRepository) List(ctx context.Context) ([]*domain.LeagueSeason, error) {
	var docs []leagueDocument
	if err := r.client.Query(ctx, leagueSeasonsQuery, nil, &docs); err != nil {
		return nil, err
	}

	seasons := make([]*domain.LeagueSeason, 0, len(docs))
	for _, doc := range docs {
		season, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, season)
	}
	return seasons, nil
}

func (r *leagueSeasonRepository) ListLinks(ctx context.Context) ([]*domain.LeagueLink, error) {
	var docs []leagueLinkDocument
	if err := r.client.Query(ctx, leagueLinksQuery, nil, &docs); err != nil {
		return nil, err
	}

	links := make([]*domain.LeagueLink, 0, len(docs))
	for _, doc := range docs {
		start, err := parseDate("startDate", doc.StartDate)
		if err != nil {
			return nil, err
		}
		links = append(links, &domain.LeagueLink{
			Title:           doc.Title,
			RegistrationURL: doc.RegistrationLink,
			StartDate:       start,
		})
	}
	return links, nil
}

func (d leagueDocument) toDomain() (*domain.LeagueSeason, error) {
	start, err := parseDate("startDate", d.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", d.EndDate)
	if err != nil {
		return nil, err
	}
	deadline, err := parseDate("entryDeadline", d.EntryDeadline)
	if err != nil {
		return nil, err
	}

	ageGroups := make([]domain.AgeGroupEntry, 0, len(d.AgeGroups))
	for _, g := range d.AgeGroups {
		ageGroups = append(ageGroups, domain.AgeGroupEntry{
			AgeGroup: g.AgeGroup,
			Notes:    g.Notes,
		})
	}

	return &domain.LeagueSeason{
		ID:              d.ID,
		Title:           d.Title,
		ShortName:       d.ShortName,
		SeasonYear:      d.SeasonYear,
		StartDate:       start,
		EndDate:         end,
		Location:        d.Location,
		AgeGroups:       ageGroups,
		EntryFee:        d.EntryFee,
		EntryDeadline:   deadline,
		Rules:           d.Rules,
		RegistrationURL: d.RegistrationLink,
		HotelInfoURL:    d.HotelInfoLink,
		ScheduleURL:     d.ScheduleLink,
		UpdatedAt:       parseTimestamp(d.UpdatedAt),
	}, nil
}
