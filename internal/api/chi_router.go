// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/hostduel/internal/config"
	"github.com/tomtom215/hostduel/internal/middleware"
)

// Router binds the handler to its routes and middleware.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	botFilter     *middleware.BotFilter
	indexNowKey   string
}

// NewRouter builds the router from the security and IndexNow settings.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled
	mwConfig.TrustedProxies = cfg.Security.TrustedProxies

	router := &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
	if cfg.Security.BotBlocking {
		router.botFilter = middleware.DefaultBotFilter()
	}
	if cfg.IndexNow.Key != "" {
		router.indexNowKey = cfg.IndexNow.Key
	}
	return router
}

// chiMiddleware adapts http.HandlerFunc middleware to chi's
// func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures every route.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(router.chiMiddleware.RealIP())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	if router.botFilter != nil {
		r.Use(chiMiddleware(router.botFilter.Middleware))
	}
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, r, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// ========================
	// Crawler Endpoints
	// ========================
	r.With(chiMiddleware(middleware.Compression)).Get("/sitemap.xml", h.Sitemap)
	if router.indexNowKey != "" {
		r.Get("/"+router.indexNowKey+".txt", h.IndexNowKey)
	}

	// ========================
	// Outbound Redirects
	// ========================
	r.Route("/go", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Get("/{id}", h.GoRedirect)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/hosts", h.Hosts)
		r.Get("/hosts/types", h.HostTypes)
		r.Get("/hosts/{id}", h.Host)
		r.Get("/categories/{type}", h.Category)
		r.Get("/best-for/{useCase}", h.BestFor)

		r.Route("/compare", func(r chi.Router) {
			r.Get("/pairs", h.ComparePairs)
			r.Get("/clusters", h.CompareClusters)
			r.Get("/{slug}", h.Compare)
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/questions", h.QuizQuestions)
			r.Get("/results", h.QuizResults)
		})

		r.Get("/clicks", h.Clicks)
	})

	return r
}
