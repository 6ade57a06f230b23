// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/hostduel/internal/cache"
)

// Version is reported by the health endpoint. It is set at build time.
var Version = "dev"

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status          string      `json:"status"`
	Version         string      `json:"version"`
	Records         int         `json:"records"`
	Skipped         []string    `json:"skipped"`
	Pairs           int         `json:"pairs"`
	ClicksEnabled   bool        `json:"clicks_enabled"`
	ComparisonCache cache.Stats `json:"comparison_cache"`
	Uptime          float64     `json:"uptime_seconds"`
}

// Health reports liveness and the size of the loaded snapshot. A snapshot
// with no records is reported as degraded but still answers 200 so the
// process is not restarted over a data problem.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if h.snapshot.Len() == 0 {
		status = "degraded"
	}

	skipped := h.snapshot.Skipped()
	if skipped == nil {
		skipped = []string{}
	}

	NewResponseWriter(w, r).Success(HealthStatus{
		Status:          status,
		Version:         Version,
		Records:         h.snapshot.Len(),
		Skipped:         skipped,
		Pairs:           len(h.compare.Pairs()),
		ClicksEnabled:   h.clicks != nil,
		ComparisonCache: h.compare.CacheStats(),
		Uptime:          time.Since(h.startTime).Seconds(),
	})
}
