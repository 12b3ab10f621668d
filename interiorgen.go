// Package interiorgen serves an AI interior-design-generator website built
// with Go, Echo, and templ: a text-to-image generator front end backed by a
// hosted model, plus a markdown blog, admin dashboard, RSS, and sitemap.
package interiorgen

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roihacks/interiorgen/generator"
)

// App is the central application. It wires together the store, cache,
// generation client, session registry, handlers, and middleware.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Store     *Store
	Cache     *PostCache
	Generator *generator.Client
	Sessions  *generator.Manager

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates an App with the given configuration. The image service
// credential is read from cfg and injected into the generation client here;
// nothing else in the tree touches it.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	var clientOpts []generator.ClientOption
	if cfg.FalBaseURL != "" {
		clientOpts = append(clientOpts, generator.WithBaseURL(cfg.FalBaseURL))
	}

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Generator: generator.NewClient(cfg.FalAPIKey, clientOpts...),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// init prepares everything short of binding the listen address, so tests can
// drive a.Echo directly with httptest.
func (a *App) init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("interiorgen: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("interiorgen: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("interiorgen: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	a.Sessions = generator.NewManager(a.Config.GenerationSessionTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and runs the HTTP server until it stops.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Generator API, consumed by the HTMX front end
	e.POST("/api/generate/", a.handleGenerate)
	e.GET("/api/generate/prompt/", a.handleGeneratePrompt)
	e.POST("/api/generate/page/", a.handleGeneratePage)
	e.GET("/api/generate/download/", a.handleDownload)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogList)
	e.GET("/about/", a.handleAbout)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)
	e.GET("/sitemap/", a.handleSitemapPage)

	// Admin
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/post/:slug/", a.handleAdminPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/post/:slug/", a.handleAdminDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)

	// Posts live at root-level slugs; this must register last
	e.GET("/:slug/", a.handlePost)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
