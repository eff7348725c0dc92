package service

import (
	"github.com/dom/power-league-website/internal/cache"
	"github.com/dom/power-league-website/internal/config"
	"github.com/dom/power-league-website/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type Services struct {
	Content     *ContentService
	WebhookAuth *WebhookAuthService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, clock clockwork.Clock, logger zerolog.Logger) *Services {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Services{
		Content:     NewContentService(repos, cache.New(clock), cfg, clock, logger),
		WebhookAuth: NewWebhookAuthService(cfg.RevalidateSecret, clock),
	}
}
