package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/power-league-website/internal/api/middleware"
	"github.com/dom/power-league-website/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookAuth(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC))
	auth := service.NewWebhookAuthService("secret", clock)
	token, err := auth.IssueToken("sanity", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedLog    string
	}{
		{"missing header", "", http.StatusUnauthorized, "missing authorization header"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "invalid authorization header format"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "token validation failed"},
		{"valid token", "Bearer " + token, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			var subject string
			handler := middleware.WebhookAuth(auth, zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject, _ = middleware.GetWebhookSubject(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/revalidate", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedLog != "" {
				assert.Contains(t, buf.String(), tt.expectedLog)
				assert.Contains(t, buf.String(), `"component":"middleware.WebhookAuth"`)
				return
			}
			assert.Empty(t, buf.String())
			assert.Equal(t, "sanity", subject)
		})
	}
}
