// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

// Package affiliate resolves the outbound destination of a /go/{id} link.
//
// An active affiliate entry wins, then the provider's own website, then the
// site root. Resolution never fails.
package affiliate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/hostduel/internal/models"
)

// FallbackURL is the destination for unknown hosts.
const FallbackURL = "/"

// Source says where a resolved URL came from.
type Source string

const (
	SourceAffiliate Source = "affiliate"
	SourceWebsite   Source = "website"
	SourceFallback  Source = "fallback"
)

// Destination is a resolved redirect target.
type Destination struct {
	URL    string
	Source Source
}

// RecordSource looks up provider records. *store.Snapshot satisfies it.
type RecordSource interface {
	GetByID(id string) (*models.Company, bool)
}

// LoadEntries reads an affiliates.json file: a flat object keyed by provider
// id. Keys starting with "_" hold comments and examples and are skipped, as
// are entries that do not decode. A missing file yields an empty table.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func LoadEntries(path string, logger zerolog.Logger) (map[string]models.AffiliateEntry, error) {
	entries := make(map[string]models.AffiliateEntry)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read affiliates %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse affiliates %s: %w", path, err)
	}

	for id, msg := range raw {
		if strings.HasPrefix(id, "_") {
			continue
		}
		var entry models.AffiliateEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			logger.Warn().Err(err).Str("host_id", id).Msg("Skipping malformed affiliate entry")
			continue
		}
		entries[id] = entry
	}
	return entries, nil
}

// Resolver picks redirect destinations. It is read-only after construction.
type Resolver struct {
	entries map[string]models.AffiliateEntry
	records RecordSource
}

// NewResolver returns a resolver over entries and records. records may be
// nil, in which case only affiliate entries resolve.
func NewResolver(entries map[string]models.AffiliateEntry, records RecordSource) *Resolver {
	if entries == nil {
		entries = map[string]models.AffiliateEntry{}
	}
	return &Resolver{entries: entries, records: records}
}

// AffiliateURL returns the active affiliate URL for id.
func (r *Resolver) AffiliateURL(id string) (string, bool) {
	if strings.HasPrefix(id, "_") {
		return "", false
	}
	entry, ok := r.entries[id]
	if !ok || !entry.Active || entry.URL == "" {
		return "", false
	}
	return entry.URL, true
}

// HasAffiliate reports whether id has an active affiliate URL.
func (r *Resolver) HasAffiliate(id string) bool {
	_, ok := r.AffiliateURL(id)
	return ok
}

// Lookup resolves id and reports which source supplied the URL.
func (r *Resolver) Lookup(id string) Destination {
	if u, ok := r.AffiliateURL(id); ok {
		return Destination{URL: u, Source: SourceAffiliate}
	}
	if r.records != nil {
		if c, ok := r.records.GetByID(id); ok && c.BasicInfo.WebsiteURL != "" {
			return Destination{URL: c.BasicInfo.WebsiteURL, Source: SourceWebsite}
		}
	}
	return Destination{URL: FallbackURL, Source: SourceFallback}
}

// Resolve returns the redirect URL for id.
func (r *Resolver) Resolve(id string) string {
	return r.Lookup(id).URL
}

// Len returns the number of loaded entries, active or not.
func (r *Resolver) Len() int {
	return len(r.entries)
}
