package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dom/power-league-website/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// ContentReader is the plain-value view of the content service that pages
// render from. None of its methods fail.
type ContentReader interface {
	LeagueSeasons(ctx context.Context) []*domain.LeagueSeason
	Venues(ctx context.Context) []*domain.VenueLocation
	ActiveAnnouncement(ctx context.Context) *domain.Announcement
}

const (
	pageHome        = "home"
	pageLocations   = "locations"
	pageInformation = "information"
)

type Handler struct {
	content ContentReader
	pages   map[string]*template.Template
	logger  zerolog.Logger
}

func NewHandler(content ContentReader, logger zerolog.Logger) (*Handler, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{pageHome, pageLocations, pageInformation} {
		tmpl, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Handler{
		content: content,
		pages:   pages,
		logger:  logger.With().Str("component", "web").Logger(),
	}, nil
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view := buildHomeView(h.content.LeagueSeasons(ctx), h.content.ActiveAnnouncement(ctx))
	h.render(w, r, pageHome, view)
}

func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view := buildLocationsView(h.content.LeagueSeasons(ctx), h.content.Venues(ctx))
	h.render(w, r, pageLocations, view)
}

func (h *Handler) Information(w http.ResponseWriter, r *http.Request) {
	view := buildInformationView(h.content.LeagueSeasons(r.Context()), r.URL.Query().Get("section"))
	h.render(w, r, pageInformation, view)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, view any) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", view); err != nil {
		h.logger.Error().
			Err(err).
			Str("page", page).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("failed to render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug().Err(err).Str("page", page).Msg("failed to write page")
	}
}
