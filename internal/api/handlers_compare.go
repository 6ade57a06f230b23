// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/hostduel/internal/compare"
)

// PairSummary is one entry of the pair list.
type PairSummary struct {
	compare.Pair
	Slug string `json:"slug"`
}

// ComparePairs lists every valid comparison, optionally within one cluster.
func (h *Handler) ComparePairs(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := PairsRequest{Cluster: newQueryReader(r.URL.Query()).String("cluster")}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	pairs := h.compare.Pairs()
	if req.Cluster != "" {
		pairs = h.compare.PairsInCluster(req.Cluster)
	}

	out := make([]PairSummary, len(pairs))
	for i, p := range pairs {
		out[i] = PairSummary{Pair: p, Slug: p.Slug()}
	}
	rw.Success(out)
}

// CompareClusters lists the comparison clusters.
func (h *Handler) CompareClusters(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(compare.Clusters)
}

// Compare returns the head-to-head for a slug. A reversed slug is
// redirected permanently to its canonical form.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	slug := chi.URLParam(r, "slug")

	c, err := h.compare.Compare(slug)
	if err != nil {
		writeServiceError(rw, err)
		return
	}

	if c.Slug != slug {
		http.Redirect(w, r, "/api/v1/compare/"+c.Slug, http.StatusMovedPermanently)
		return
	}
	rw.Success(c)
}
