package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/dom/power-league-website/internal/domain"
	"github.com/dom/power-league-website/internal/repository/postgres"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// LeagueBuilder creates league seasons with a builder pattern. The same
// builder feeds the CMS stub and the database mirror.
type LeagueBuilder struct {
	id              string
	title           string
	shortName       string
	startDate       *time.Time
	endDate         *time.Time
	location        string
	ageGroups       []domain.AgeGroupEntry
	entryFee        *float64
	registrationURL string
	hotelInfoURL    string
	scheduleURL     string
}

// NewLeagueBuilder creates a new LeagueBuilder with default values
func NewLeagueBuilder() *LeagueBuilder {
	id := uuid.New().String()
	return &LeagueBuilder{
		id:              id,
		title:           fmt.Sprintf("Power League %s", id[:8]),
		location:        "Grand Rapids, MI",
		registrationURL: fmt.Sprintf("https://register.example.com/%s", id[:8]),
	}
}

func (b *LeagueBuilder) WithTitle(title string) *LeagueBuilder {
	b.title = title
	return b
}

func (b *LeagueBuilder) WithShortName(name string) *LeagueBuilder {
	b.shortName = name
	return b
}

func (b *LeagueBuilder) WithDates(start, end *time.Time) *LeagueBuilder {
	b.startDate = start
	b.endDate = end
	return b
}

func (b *LeagueBuilder) WithLocation(location string) *LeagueBuilder {
	b.location = location
	return b
}

func (b *LeagueBuilder) WithAgeGroups(groups ...domain.AgeGroupEntry) *LeagueBuilder {
	b.ageGroups = groups
	return b
}

func (b *LeagueBuilder) WithEntryFee(fee float64) *LeagueBuilder {
	b.entryFee = &fee
	return b
}

func (b *LeagueBuilder) WithRegistrationURL(url string) *LeagueBuilder {
	b.registrationURL = url
	return b
}

func (b *LeagueBuilder) WithHotelInfoURL(url string) *LeagueBuilder {
	b.hotelInfoURL = url
	return b
}

func (b *LeagueBuilder) WithScheduleURL(url string) *LeagueBuilder {
	b.scheduleURL = url
	return b
}

// Document renders the season the way the CMS returns it.
func (b *LeagueBuilder) Document() map[string]any {
	ageGroups := make([]map[string]string, 0, len(b.ageGroups))
	for _, g := range b.ageGroups {
		ageGroups = append(ageGroups, map[string]string{"ageGroup": g.AgeGroup, "notes": g.Notes})
	}

	doc := map[string]any{
		"_id":              b.id,
		"_updatedAt":       TestNow.Format(time.RFC3339),
		"title":            b.title,
		"shortName":        b.shortName,
		"location":         b.location,
		"ageGroups":        ageGroups,
		"registrationLink": b.registrationURL,
		"hotelInfoLink":    b.hotelInfoURL,
		"scheduleLink":     b.scheduleURL,
		"startDate":        formatDocumentDate(b.startDate),
		"endDate":          formatDocumentDate(b.endDate),
	}
	if b.entryFee != nil {
		doc["entryFee"] = *b.entryFee
	}
	return doc
}

// Build stores the season in the database mirror
func (b *LeagueBuilder) Build(t *testing.T, db *gorm.DB) *postgres.LeagueSeasonRecord {
	t.Helper()

	record := &postgres.LeagueSeasonRecord{
		ID:              b.id,
		Title:           b.title,
		ShortName:       b.shortName,
		StartDate:       b.startDate,
		EndDate:         b.endDate,
		Location:        b.location,
		AgeGroups:       datatypes.JSONSlice[domain.AgeGroupEntry](b.ageGroups),
		EntryFee:        b.entryFee,
		RegistrationURL: b.registrationURL,
		HotelInfoURL:    b.hotelInfoURL,
		ScheduleURL:     b.scheduleURL,
		UpdatedAt:       TestNow,
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create league season: %v", err)
	}

	return record
}

// VenueBuilder creates venue locations
type VenueBuilder struct {
	id             string
	name           string
	addressLine1   string
	addressLine2   string
	seating        *string
	concessions    *bool
	paymentMethods []string
}

// NewVenueBuilder creates a new VenueBuilder with default values
func NewVenueBuilder() *VenueBuilder {
	id := uuid.New().String()
	return &VenueBuilder{
		id:           id,
		name:         fmt.Sprintf("Fieldhouse %s", id[:8]),
		addressLine1: "100 Main St",
		addressLine2: "Grand Rapids, MI 49503",
	}
}

func (b *VenueBuilder) WithName(name string) *VenueBuilder {
	b.name = name
	return b
}

func (b *VenueBuilder) WithAddress(line1, line2 string) *VenueBuilder {
	b.addressLine1 = line1
	b.addressLine2 = line2
	return b
}

func (b *VenueBuilder) WithSeating(seating string) *VenueBuilder {
	b.seating = &seating
	return b
}

func (b *VenueBuilder) WithConcessions(available bool) *VenueBuilder {
	b.concessions = &available
	return b
}

func (b *VenueBuilder) WithPaymentMethods(tags ...string) *VenueBuilder {
	b.paymentMethods = tags
	return b
}

// Document renders the venue the way the CMS returns it.
func (b *VenueBuilder) Document() map[string]any {
	doc := map[string]any{
		"_id":            b.id,
		"locationName":   b.name,
		"addressLine1":   b.addressLine1,
		"addressLine2":   b.addressLine2,
		"paymentMethods": b.paymentMethods,
	}
	if b.seating != nil {
		doc["seating"] = *b.seating
	}
	if b.concessions != nil {
		doc["concessions"] = *b.concessions
	}
	return doc
}

// Build stores the venue in the database mirror
func (b *VenueBuilder) Build(t *testing.T, db *gorm.DB) *postgres.VenueRecord {
	t.Helper()

	record := &postgres.VenueRecord{
		ID:             b.id,
		Name:           b.name,
		AddressLine1:   b.addressLine1,
		AddressLine2:   b.addressLine2,
		Seating:        b.seating,
		Concessions:    b.concessions,
		PaymentMethods: datatypes.JSONSlice[string](b.paymentMethods),
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create venue: %v", err)
	}

	return record
}

// AnnouncementBuilder creates message-of-the-day entries
type AnnouncementBuilder struct {
	id           string
	message      string
	active       bool
	displayStart *time.Time
	displayEnd   *time.Time
	updatedAt    time.Time
}

// NewAnnouncementBuilder creates an active announcement with no window
func NewAnnouncementBuilder() *AnnouncementBuilder {
	id := uuid.New().String()
	return &AnnouncementBuilder{
		id:        id,
		message:   fmt.Sprintf("Announcement %s", id[:8]),
		active:    true,
		updatedAt: TestNow,
	}
}

func (b *AnnouncementBuilder) WithMessage(message string) *AnnouncementBuilder {
	b.message = message
	return b
}

func (b *AnnouncementBuilder) WithActive(active bool) *AnnouncementBuilder {
	b.active = active
	return b
}

func (b *AnnouncementBuilder) WithWindow(start, end *time.Time) *AnnouncementBuilder {
	b.displayStart = start
	b.displayEnd = end
	return b
}

func (b *AnnouncementBuilder) WithUpdatedAt(updatedAt time.Time) *AnnouncementBuilder {
	b.updatedAt = updatedAt
	return b
}

// Document renders the announcement the way the CMS returns it.
func (b *AnnouncementBuilder) Document() map[string]any {
	return map[string]any{
		"_id":          b.id,
		"_updatedAt":   b.updatedAt.Format(time.RFC3339),
		"message":      b.message,
		"active":       b.active,
		"displayStart": formatDocumentTime(b.displayStart),
		"displayEnd":   formatDocumentTime(b.displayEnd),
	}
}

// Build stores the announcement in the database mirror
func (b *AnnouncementBuilder) Build(t *testing.T, db *gorm.DB) *postgres.AnnouncementRecord {
	t.Helper()

	record := &postgres.AnnouncementRecord{
		ID:           b.id,
		Message:      b.message,
		Active:       b.active,
		DisplayStart: b.displayStart,
		DisplayEnd:   b.displayEnd,
		UpdatedAt:    b.updatedAt,
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create announcement: %v", err)
	}

	return record
}

// Documents renders builders for CMSStub.SetResult.
func Documents[B interface{ Document() map[string]any }](builders ...B) []map[string]any {
	docs := make([]map[string]any, 0, len(builders))
	for _, b := range builders {
		docs = append(docs, b.Document())
	}
	return docs
}

func formatDocumentDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

func formatDocumentTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
