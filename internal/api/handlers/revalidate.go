package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dom/power-league-website/internal/api/middleware"
	"github.com/dom/power-league-website/internal/service"
	"github.com/rs/zerolog"
)

const maxWebhookBody = 64 << 10

type RevalidateHandler struct {
	contentService *service.ContentService
	logger         zerolog.Logger
}

func NewRevalidateHandler(contentService *service.ContentService, logger zerolog.Logger) *RevalidateHandler {
	return &RevalidateHandler{
		contentService: contentService,
		logger:         logger.With().Str("component", "handlers.Revalidate").Logger(),
	}
}

// RevalidateRequest matches the webhook projection `{_type}` configured in
// the CMS. An empty body or type revalidates everything.
type RevalidateRequest struct {
	Type string `json:"_type"`
}

type RevalidateResponse struct {
	Revalidated []string `json:"revalidated"`
}

func (h *RevalidateHandler) Revalidate(w http.ResponseWriter, r *http.Request) {
	var req RevalidateRequest
	body := http.MaxBytesReader(w, r.Body, maxWebhookBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn().Err(err).Msg("invalid webhook body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	keys := h.contentService.Revalidate(req.Type)
	if req.Type != "" && len(keys) == 0 {
		http.Error(w, "Unknown document type", http.StatusBadRequest)
		return
	}

	subject, _ := middleware.GetWebhookSubject(r.Context())
	h.logger.Info().
		Str("subject", subject).
		Str("document_type", req.Type).
		Msg("revalidation requested")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RevalidateResponse{Revalidated: keys})
}
