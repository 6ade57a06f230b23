// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package api

import (
	"context"
	"time"

	"github.com/tomtom215/hostduel/internal/affiliate"
	"github.com/tomtom215/hostduel/internal/clicks"
	"github.com/tomtom215/hostduel/internal/compare"
	"github.com/tomtom215/hostduel/internal/config"
	"github.com/tomtom215/hostduel/internal/quiz"
	"github.com/tomtom215/hostduel/internal/seo"
	"github.com/tomtom215/hostduel/internal/store"
)

// ClickTracker records and reports click counters. *clicks.Store
// satisfies it.
type ClickTracker interface {
	Track(ctx context.Context, event string)
	Counts(ctx context.Context, prefix string) ([]clicks.Count, error)
}

// Handler serves the API from one immutable snapshot.
//
// Handler methods are split across files by route group:
//   - handlers_hosts.go: listings, host detail, categories, best-for
//   - handlers_compare.go: pairs, clusters, comparisons
//   - handlers_quiz.go: quiz questions and results
//   - handlers_public.go: redirects, clicks, sitemap, IndexNow key
//   - handlers_health.go: health
type Handler struct {
	snapshot  *store.Snapshot
	compare   *compare.Engine
	quiz      *quiz.Engine
	resolver  *affiliate.Resolver
	clicks    ClickTracker
	config    *config.Config
	baseURL   string
	startTime time.Time
	now       func() time.Time
}

// NewHandler wires the engines over snapshot. A nil tracker disables click
// tracking and the clicks endpoint.
//
// Example:
//
//	handler := api.NewHandler(snapshot, resolver, clickStore, cfg)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(snapshot *store.Snapshot, resolver *affiliate.Resolver, tracker ClickTracker, cfg *config.Config) *Handler {
	engine := compare.NewEngine(snapshot.Rows(),
		compare.WithCache(cfg.Cache.ComparisonCapacity, cfg.Cache.ComparisonTTL),
		compare.WithSiteName(cfg.Site.Name),
	)

	return &Handler{
		snapshot:  snapshot,
		compare:   engine,
		quiz:      quiz.NewEngine(quiz.DefaultWeights()),
		resolver:  resolver,
		clicks:    tracker,
		config:    cfg,
		baseURL:   seo.BaseURL(cfg.Site.BaseURL),
		startTime: time.Now(),
		now:       time.Now,
	}
}

// track records event when tracking is enabled.
func (h *Handler) track(ctx context.Context, event string) {
	if h.clicks != nil {
		h.clicks.Track(ctx, event)
	}
}
