// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package api

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/hostduel/internal/affiliate"
	"github.com/tomtom215/hostduel/internal/clicks"
	"github.com/tomtom215/hostduel/internal/logging"
	"github.com/tomtom215/hostduel/internal/metrics"
	"github.com/tomtom215/hostduel/internal/seo"
)

// GoRedirect sends the visitor to the provider's affiliate link or website.
// Unknown ids land on the home page. Only known hosts are counted as visits.
func (h *Handler) GoRedirect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	dest := h.resolver.Lookup(id)

	metrics.RecordRedirect(string(dest.Source))
	if dest.Source != affiliate.SourceFallback {
		h.track(r.Context(), clicks.VisitEvent(id))
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Robots-Tag", "noindex, nofollow")
	http.Redirect(w, r, dest.URL, http.StatusFound)
}

// Clicks reports click counters, optionally filtered by event prefix.
func (h *Handler) Clicks(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.clicks == nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeUnavailable, "click tracking is disabled")
		return
	}

	req := ClicksRequest{Prefix: newQueryReader(r.URL.Query()).String("prefix")}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	counts, err := h.clicks.Counts(r.Context(), req.Prefix)
	if err != nil {
		writeServiceError(rw, err)
		return
	}
	rw.Success(counts)
}

// SitemapURLs returns every public page URL.
func (h *Handler) SitemapURLs() []seo.SitemapURL {
	return seo.BuildSitemap(h.baseURL, h.snapshot.IDs(), h.compare.Pairs(), h.now())
}

// Sitemap serves sitemap.xml.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := seo.WriteSitemap(&buf, h.SitemapURLs()); err != nil {
		NewResponseWriter(w, r).InternalError(err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write sitemap")
	}
}

// IndexNowKey serves the IndexNow key file that proves site ownership.
func (h *Handler) IndexNowKey(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(h.config.IndexNow.Key)); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write IndexNow key")
	}
}
