package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/dom/power-league-website/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContent struct {
	seasons      []*domain.LeagueSeason
	venues       []*domain.VenueLocation
	announcement *domain.Announcement
}

func (f *fakeContent) LeagueSeasons(context.Context) []*domain.LeagueSeason { return f.seasons }
func (f *fakeContent) Venues(context.Context) []*domain.VenueLocation       { return f.venues }
func (f *fakeContent) ActiveAnnouncement(context.Context) *domain.Announcement {
	return f.announcement
}

func renderPage(t *testing.T, content ContentReader, handle func(*Handler) http.HandlerFunc, target string) *goquery.Document {
	t.Helper()

	h, err := NewHandler(content, zerolog.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handle(h)(rec, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestHandler_HomeUnavailable(t *testing.T) {
	doc := renderPage(t, &fakeContent{}, func(h *Handler) http.HandlerFunc { return h.Home }, "/")

	assert.Equal(t, unavailableMessage, doc.Find(".unavailable-message").Text())
	assert.Equal(t, 0, doc.Find("article.season").Length())
	assert.Equal(t, 0, doc.Find(".motd").Length())
	assert.Equal(t, 1, doc.Find(".contact").Length())
}

func TestHandler_HomeSeasons(t *testing.T) {
	fee := 480.0
	content := &fakeContent{
		seasons: []*domain.LeagueSeason{
			{
				Title:           "Spring 2026",
				RegistrationURL: "https://register.example.com/spring",
				EntryFee:        &fee,
				AgeGroups:       []domain.AgeGroupEntry{{AgeGroup: "12U"}, {AgeGroup: "14U", Notes: "Two courts"}},
			},
		},
		announcement: &domain.Announcement{Message: "Parking lot B is closed"},
	}

	doc := renderPage(t, content, func(h *Handler) http.HandlerFunc { return h.Home }, "/")

	assert.Equal(t, "Parking lot B is closed", doc.Find(".motd").Text())
	assert.Equal(t, 1, doc.Find("article.season").Length())
	assert.Equal(t, "$480.00", doc.Find(".entry-fee").Text())
	assert.Equal(t, 2, doc.Find(".age-group").Length())
	assert.Equal(t, 3, doc.Find(".nav-card").Length())
	assert.Equal(t, 0, doc.Find(".unavailable-message").Length())

	href, ok := doc.Find(".dropdown a").Attr("href")
	require.True(t, ok)
	assert.Equal(t, "https://register.example.com/spring", href)
}

func TestHandler_LocationsEmpty(t *testing.T) {
	doc := renderPage(t, &fakeContent{}, func(h *Handler) http.HandlerFunc { return h.Locations }, "/locations")

	assert.Equal(t, 0, doc.Find("article.venue").Length())
	assert.Equal(t, "Locations", doc.Find("h1").Text())
}

func TestHandler_Locations(t *testing.T) {
	content := &fakeContent{
		venues: []*domain.VenueLocation{
			{
				ID:             "dunes",
				Name:           "Dunes",
				AddressLine1:   "3131 Dunes Dr",
				AddressLine2:   "Michigan City, IN",
				PaymentMethods: []domain.PaymentMethod{domain.PaymentApplePay},
			},
		},
	}

	doc := renderPage(t, content, func(h *Handler) http.HandlerFunc { return h.Locations }, "/locations")

	venue := doc.Find("article.venue")
	require.Equal(t, 1, venue.Length())
	assert.Equal(t, "Dunes", venue.Find("h2").Text())

	href, _ := venue.Find(".map-link").Attr("href")
	assert.Contains(t, href, "query=3131+Dunes+Dr%2C+Michigan+City%2C+IN")

	method, _ := venue.Find("li.payment").Attr("data-method")
	assert.Equal(t, "apple_pay", method)
}

func TestHandler_InformationTabs(t *testing.T) {
	doc := renderPage(t, &fakeContent{}, func(h *Handler) http.HandlerFunc { return h.Information }, "/information?section=previous-winners")

	active := doc.Find(".tab.active")
	require.Equal(t, 1, active.Length())
	href, _ := active.Attr("href")
	assert.Equal(t, "/information?section=previous-winners", href)
	assert.Greater(t, doc.Find(".winners").Length(), 0)
}
