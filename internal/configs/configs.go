/*
Package configs is responsible for loading and parsing the portal's configuration settings.

It reads operating system environment variables for the running environment, the listening port,
the base URL of the InnoEvent API, the workspace cookie secret, CORS origins and a few
presentation and validation knobs.
*/
package configs

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported display locales for date rendering.
const (
	LocaleEnglish = "en"
	LocaleRussian = "ru"
)

// AppConfig contains all configuration parameters required for the portal to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Upstream API Settings
	APIBaseURL string

	// Security Settings
	AllowedOrigins []string
	SessionSecret  string

	// Presentation and Validation Settings
	MinTotalSeats        int
	DisplayLocale        string
	Location             *time.Location
	WorkspaceIdleTimeout time.Duration
}

// IsDevelopment reports whether the portal runs in the development environment.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig reads and parses the portal configuration from environment variables.
// It provides default values for each configuration item and performs necessary type conversions and validation.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	port, err := intFromEnv("PORT", 3000)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Upstream API Settings ---
	cfg.APIBaseURL = strings.TrimRight(os.Getenv("API_BASE_URL"), "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8000"
	}
	if u, err := url.Parse(cfg.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_BASE_URL %q: expected an absolute http(s) URL", cfg.APIBaseURL)
	}

	// --- Security Settings ---
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	cfg.AllowedOrigins = []string{}
	for _, origin := range strings.Split(originsStr, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("SESSION_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
		secret = "innoevent_insecure_dev_secret_change_me"
	}
	cfg.SessionSecret = secret

	// --- Presentation and Validation Settings ---
	minSeats, err := intFromEnv("MIN_TOTAL_SEATS", 1)
	if err != nil {
		return nil, err
	}
	if minSeats < 0 {
		return nil, fmt.Errorf("MIN_TOTAL_SEATS must not be negative, got %d", minSeats)
	}
	cfg.MinTotalSeats = minSeats

	cfg.DisplayLocale = strings.ToLower(os.Getenv("DISPLAY_LOCALE"))
	switch cfg.DisplayLocale {
	case "":
		cfg.DisplayLocale = LocaleEnglish
	case LocaleEnglish, LocaleRussian:
	default:
		return nil, fmt.Errorf("unsupported DISPLAY_LOCALE %q (want %q or %q)", cfg.DisplayLocale, LocaleEnglish, LocaleRussian)
	}

	cfg.Location = time.UTC
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid TIMEZONE environment variable: %w", err)
		}
		cfg.Location = loc
	}

	idleStr := os.Getenv("WORKSPACE_IDLE_TIMEOUT")
	if idleStr == "" {
		idleStr = "30m"
	}
	idle, err := time.ParseDuration(idleStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WORKSPACE_IDLE_TIMEOUT environment variable: %w", err)
	}
	if idle <= 0 {
		return nil, fmt.Errorf("WORKSPACE_IDLE_TIMEOUT must be positive, got %s", idle)
	}
	cfg.WorkspaceIdleTimeout = idle

	return cfg, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}
