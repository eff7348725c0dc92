package config_test

import (
	"testing"
	"time"

	"github.com/dom/power-league-website/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "abc123")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.BackendSanity, cfg.ContentBackend)
	assert.Equal(t, "production", cfg.SanityDataset)
	assert.True(t, cfg.SanityUseCDN)
	assert.Equal(t, time.Hour, cfg.LeagueCacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.AnnouncementCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "sanity without project",
			env:     map[string]string{"CONTENT_BACKEND": "sanity"},
			wantErr: "SANITY_PROJECT_ID",
		},
		{
			name:    "postgres without database",
			env:     map[string]string{"CONTENT_BACKEND": "postgres"},
			wantErr: "DATABASE_URL",
		},
		{
			name:    "unknown backend",
			env:     map[string]string{"CONTENT_BACKEND": "wordpress"},
			wantErr: "unknown CONTENT_BACKEND",
		},
		{
			name: "non-positive ttl",
			env: map[string]string{
				"SANITY_PROJECT_ID": "abc123",
				"LEAGUE_CACHE_TTL":  "0s",
			},
			wantErr: "LEAGUE_CACHE_TTL",
		},
		{
			name: "postgres backend",
			env: map[string]string{
				"CONTENT_BACKEND": "Postgres",
				"DATABASE_URL":    "postgres://localhost/mirror",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SANITY_PROJECT_ID", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, config.BackendPostgres, cfg.ContentBackend)
		})
	}
}
