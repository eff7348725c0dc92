package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/power-league-website/internal/service"
	"github.com/rs/zerolog"
)

type LeagueHandler struct {
	contentService *service.ContentService
	logger         zerolog.Logger
}

func NewLeagueHandler(contentService *service.ContentService, logger zerolog.Logger) *LeagueHandler {
	return &LeagueHandler{
		contentService: contentService,
		logger:         logger.With().Str("component", "handlers.League").Logger(),
	}
}

type LeagueLinkResponse struct {
	Title            string `json:"title"`
	RegistrationLink string `json:"registrationLink,omitempty"`
}

// List answers the navigation menu. A failed fetch still returns an empty
// array, with a 500 status.
func (h *LeagueHandler) List(w http.ResponseWriter, r *http.Request) {
	res := h.contentService.LeagueLinks(r.Context())

	resp := make([]LeagueLinkResponse, 0, len(res.Data))
	for _, l := range res.Data {
		resp = append(resp, LeagueLinkResponse{
			Title:            l.Title,
			RegistrationLink: l.RegistrationURL,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if res.IsDegraded() {
		h.logger.Error().
			Str("incident_id", res.IncidentID.String()).
			Err(res.Reason).
			Msg("serving empty league list")
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(resp)
}
