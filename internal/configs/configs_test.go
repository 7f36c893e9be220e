package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "API_BASE_URL", "ALLOWED_ORIGINS", "SESSION_SECRET",
		"MIN_TOTAL_SEATS", "DISPLAY_LOCALE", "TIMEZONE", "WORKSPACE_IDLE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 1, cfg.MinTotalSeats)
	assert.Equal(t, LocaleEnglish, cfg.DisplayLocale)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 30*time.Minute, cfg.WorkspaceIdleTimeout)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4100")
	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example.com , ,https://b.example.com")
	t.Setenv("MIN_TOTAL_SEATS", "0")
	t.Setenv("DISPLAY_LOCALE", "RU")
	t.Setenv("WORKSPACE_IDLE_TIMEOUT", "5m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 4100, cfg.Port)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 0, cfg.MinTotalSeats)
	assert.Equal(t, LocaleRussian, cfg.DisplayLocale)
	assert.Equal(t, 5*time.Minute, cfg.WorkspaceIdleTimeout)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"privileged port":   {"PORT": "80"},
		"non numeric port":  {"PORT": "http"},
		"relative api url":  {"API_BASE_URL": "localhost"},
		"negative seats":    {"MIN_TOTAL_SEATS": "-1"},
		"unknown locale":    {"DISPLAY_LOCALE": "de"},
		"bad idle timeout":  {"WORKSPACE_IDLE_TIMEOUT": "soon"},
		"production secret": {"ENVIRONMENT": "production"},
		"zero idle timeout": {"WORKSPACE_IDLE_TIMEOUT": "0s"},
		"unknown timezone":  {"TIMEZONE": "Mars/Olympus"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
