package api

import (
	"net/http"
	"os"

	"github.com/dom/power-league-website/internal/api/handlers"
	"github.com/dom/power-league-website/internal/api/middleware"
	"github.com/dom/power-league-website/internal/config"
	"github.com/dom/power-league-website/internal/service"
	"github.com/dom/power-league-website/internal/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func NewRouter(services *service.Services, cfg *config.Config, logger zerolog.Logger) (http.Handler, error) {
	pages, err := web.NewHandler(services.Content, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Pages
	r.Get("/", pages.Home)
	r.Get("/locations", pages.Locations)
	r.Get("/information", pages.Information)

	// Static assets
	if info, err := os.Stat(cfg.PublicDir); err == nil && info.IsDir() {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.PublicDir))))
	} else {
		logger.Warn().Str("dir", cfg.PublicDir).Msg("public directory not found, assets disabled")
	}

	leagueHandler := handlers.NewLeagueHandler(services.Content, logger)
	revalidateHandler := handlers.NewRevalidateHandler(services.Content, logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(corsHandler.Handler)

		r.Get("/leagues", leagueHandler.List)

		// CMS webhook
		if services.WebhookAuth.Enabled() {
			r.With(middleware.WebhookAuth(services.WebhookAuth, logger)).Post("/revalidate", revalidateHandler.Revalidate)
		}
	})

	return r, nil
}
