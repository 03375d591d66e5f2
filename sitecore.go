// Package sitecore is the JSON API backend for the Ventrox marketing site:
// contact inquiries, blog posts, portfolio case studies, page-view analytics,
// and a single-admin session-authenticated management surface.
//
// The front-end SPA is a separate deliverable; this package serves only
// /api routes and returns every response in the uniform
// {success, data, message, errors} envelope.
package sitecore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// App wires together configuration, storage, limiters, middleware, and routes.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  Storage

	loginLimiter    *RateLimiter
	pageViewLimiter *RateLimiter
	customRoutes    []func(*App)
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Bootstrap initializes storage, limiters, middleware, and routes without
// starting the listener. Start calls it; tests call it directly and drive
// the Echo handler through httptest.
func (a *App) Bootstrap() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("sitecore: SessionSecret is required")
	}

	// Storage backend is chosen once at startup and never re-evaluated.
	if a.Store == nil {
		if a.Config.DatabasePath != "" {
			store, err := NewDBStore(a.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("sitecore: init store: %w", err)
			}
			a.Store = store
		} else {
			a.Store = NewMemStore()
		}
	}

	a.loginLimiter = NewRateLimiter(a.Config.LoginRateLimit, a.Config.RateLimitWindow)
	a.pageViewLimiter = NewRateLimiter(a.Config.PageViewRateLimit, a.Config.RateLimitWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start bootstraps the app and runs the HTTP server until it is shut down.
func (a *App) Start() error {
	if err := a.Bootstrap(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Public routes
	e.POST("/api/contact", a.handleContact)
	e.GET("/api/blog", a.handleListPublishedPosts)
	e.GET("/api/blog/:slug", a.handleGetPostBySlug)
	e.GET("/api/portfolio", a.handleListProjects)
	e.POST("/api/analytics/pageview", a.handlePageView)

	// Session lifecycle
	e.POST("/api/admin/login", a.handleLogin)
	e.POST("/api/admin/logout", a.handleLogout)
	e.GET("/api/admin/me", a.handleMe)
	e.POST("/api/admin/setup", a.handleSetup)

	// Admin routes
	admin := e.Group("/api/admin", requireAdmin)
	admin.GET("/inquiries", a.handleListInquiries)
	admin.PATCH("/inquiries/:id", a.handleUpdateInquiryStatus)
	admin.GET("/blog", a.handleAdminListPosts)
	admin.POST("/blog", a.handleCreatePost)
	admin.GET("/blog/:id", a.handleAdminGetPost)
	admin.PATCH("/blog/:id", a.handleUpdatePost)
	admin.DELETE("/blog/:id", a.handleDeletePost)
	admin.GET("/portfolio", a.handleAdminListProjects)
	admin.POST("/portfolio", a.handleCreateProject)
	admin.PATCH("/portfolio/:id", a.handleUpdateProject)
	admin.DELETE("/portfolio/:id", a.handleDeleteProject)
	admin.GET("/analytics", a.handleAnalytics)
}
