package sitecore

import (
	"log"
	"os"
	"time"
)

// SiteConfig holds all configuration for the site backend.
type SiteConfig struct {
	Addr string // Listen address (default ":3000")

	// DatabasePath selects the storage backend: when set, the SQLite store
	// is used; when empty, the ephemeral in-memory store. Evaluated once at
	// startup.
	DatabasePath string

	SessionSecret string // Required: session cookie signing secret
	CookieSecure  bool   // Set true for HTTPS deployments

	LoginRateLimit    int           // Login attempts per IP per window (default 5)
	PageViewRateLimit int           // Page views per IP per window (default 60)
	RateLimitWindow   time.Duration // Sliding window for both limiters (default 1min)
}

func (c *SiteConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LoginRateLimit == 0 {
		c.LoginRateLimit = 5
	}
	if c.PageViewRateLimit == 0 {
		c.PageViewRateLimit = 60
	}
	if c.RateLimitWindow == 0 {
		c.RateLimitWindow = time.Minute
	}
}

// ConfigFromEnv builds a SiteConfig from environment variables.
func ConfigFromEnv() SiteConfig {
	return SiteConfig{
		Addr:          EnvOr("ADDR", ":3000"),
		DatabasePath:  os.Getenv("DATABASE_PATH"),
		SessionSecret: MustEnv("SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithStorage injects a pre-built storage backend, overriding the
// DatabasePath selection. Used by tests and embedders.
func WithStorage(s Storage) Option {
	return func(a *App) {
		a.Store = s
	}
}

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("sitecore: required environment variable %s is not set", key)
	}
	return v
}
