package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dom/power-league-website/internal/service"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	WebhookSubjectKey contextKey = "webhookSubject"
)

// WebhookAuth rejects requests without a valid bearer token.
func WebhookAuth(authService *service.WebhookAuthService, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("component", "middleware.WebhookAuth").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn().Msg("missing authorization header")
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Warn().Msg("invalid authorization header format")
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				logger.Warn().Err(err).Msg("token validation failed")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			subject, ok := (*claims)["sub"].(string)
			if !ok || subject == "" {
				logger.Warn().Msg("missing 'sub' claim in token")
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), WebhookSubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetWebhookSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(WebhookSubjectKey).(string)
	return subject, ok
}
