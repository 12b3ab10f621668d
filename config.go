package interiorgen

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/roihacks/interiorgen/views"
)

// SiteConfig holds all configuration for an interiorgen site. Fields are
// populated from the environment via ConfigFromEnv; zero values fall back to
// the defaults in setDefaults.
type SiteConfig struct {
	Name        string `env:"SITE_NAME"`        // default "AI Interior Design Generator"
	URL         string `env:"SITE_URL"`         // canonical URL (default "http://localhost:3000")
	Description string `env:"SITE_DESCRIPTION"` // meta description and RSS channel description
	Author      string `env:"SITE_AUTHOR"`      // default "Interior Design Team"

	Addr         string `env:"ADDR"`          // listen address (default ":3000")
	DatabasePath string `env:"DATABASE_PATH"` // SQLite path (default "data/site.db")

	FalAPIKey  string `env:"FAL_API_KEY"`  // image service credential; generator disabled when empty
	FalBaseURL string `env:"FAL_BASE_URL"` // override for tests and proxies

	AdminPassword string `env:"ADMIN_PASSWORD"` // required: admin login password
	SessionSecret string `env:"SESSION_SECRET"` // required: session encryption secret
	CookieSecure  bool   `env:"COOKIE_SECURE"`  // set true for HTTPS

	PostsPerPage         int           `env:"POSTS_PER_PAGE"`         // blog index page size (default 6)
	PostCacheTTL         time.Duration `env:"POST_CACHE_TTL"`         // post cache TTL (default 5min)
	GenerationSessionTTL time.Duration `env:"GENERATION_SESSION_TTL"` // idle generator session expiry (default 30min)
}

// ConfigFromEnv builds a SiteConfig from environment variables.
func ConfigFromEnv() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("interiorgen: parse config: %w", err)
	}
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "AI Interior Design Generator"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Author == "" {
		c.Author = "Interior Design Team"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.PostsPerPage == 0 {
		c.PostsPerPage = 6
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.GenerationSessionTTL == 0 {
		c.GenerationSessionTTL = 30 * time.Minute
	}
}

// viewConfig projects the site-wide settings the views package needs.
func (c *SiteConfig) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
