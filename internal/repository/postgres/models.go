package postgres

import (
	"time"

	"github.com/dom/power-league-website/internal/domain"
	"gorm.io/datatypes"
)

// LeagueSeasonRecord mirrors a powerLeague document.
type LeagueSeasonRecord struct {
	ID              string                                    `gorm:"primaryKey"`
	Title           string                                    `gorm:"not null"`
	ShortName       string
	SeasonYear      *int
	StartDate       *time.Time                                `gorm:"type:date;index"`
	EndDate         *time.Time                                `gorm:"type:date"`
	Location        string
	AgeGroups       datatypes.JSONSlice[domain.AgeGroupEntry] `gorm:"type:jsonb"`
	EntryFee        *float64
	EntryDeadline   *time.Time                                `gorm:"type:date"`
	Rules           string
	RegistrationURL string
	HotelInfoURL    string
	ScheduleURL     string
	UpdatedAt       time.Time
}

func (LeagueSeasonRecord) TableName() string { return "league_seasons" }

func (r *LeagueSeasonRecord) toDomain() *domain.LeagueSeason {
	ageGroups := make([]domain.AgeGroupEntry, len(r.AgeGroups))
	copy(ageGroups, r.AgeGroups)

	return &domain.LeagueSeason{
		ID:              r.ID,
		Title:           r.Title,
		ShortName:       r.ShortName,
		SeasonYear:      r.SeasonYear,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Location:        r.Location,
		AgeGroups:       ageGroups,
		EntryFee:        r.EntryFee,
		EntryDeadline:   r.EntryDeadline,
		Rules:           r.Rules,
		RegistrationURL: r.RegistrationURL,
		HotelInfoURL:    r.HotelInfoURL,
		ScheduleURL:     r.ScheduleURL,
		UpdatedAt:       r.UpdatedAt,
	}
}

// VenueRecord mirrors a location document.
type VenueRecord struct {
	ID             string                      `gorm:"primaryKey"`
	Name           string                      `gorm:"not null;index"`
	AddressLine1   string
	AddressLine2   string
	Seating        *string
	Concessions    *bool
	PaymentMethods datatypes.JSONSlice[string] `gorm:"type:jsonb"`
}

func (VenueRecord) TableName() string { return "venues" }

// AnnouncementRecord mirrors a motd document.
type AnnouncementRecord struct {
	ID           string     `gorm:"primaryKey"`
	Message      string     `gorm:"not null"`
	Active       bool       `gorm:"not null;default:false;index"`
	DisplayStart *time.Time
	DisplayEnd   *time.Time
	UpdatedAt    time.Time
}

func (AnnouncementRecord) TableName() string { return "announcements" }

func (r *AnnouncementRecord) toDomain() *domain.Announcement {
	return &domain.Announcement{
		ID:           r.ID,
		Message:      r.Message,
		Active:       r.Active,
		DisplayStart: r.DisplayStart,
		DisplayEnd:   r.DisplayEnd,
		UpdatedAt:    r.UpdatedAt,
	}
}
