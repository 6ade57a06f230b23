// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package models

// IndexStatus tracks how far data collection has progressed for a provider.
type IndexStatus string

const (
	StatusComplete   IndexStatus = "complete"
	StatusInProgress IndexStatus = "in-progress"
	StatusPending    IndexStatus = "pending"
)

// IndexEntry is one provider listed in index.json.
type IndexEntry struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Status      IndexStatus `json:"status"`
	LastUpdated string      `json:"lastUpdated"`
}

// Index is the manifest of every provider record in the data directory.
type Index struct {
	Companies      []IndexEntry `json:"companies"`
	TotalCompanies int          `json:"totalCompanies"`
	LastFullUpdate string       `json:"lastFullUpdate"`
}

// AffiliateEntry is a single entry of affiliates.json.
type AffiliateEntry struct {
	URL    string `json:"url"`
	Active bool   `json:"active"`
	Notes  string `json:"notes,omitempty"`
}
