// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

// Package store loads the provider dataset into an immutable in-memory
// snapshot.
//
// The dataset directory holds index.json and companies/{id}.json. Load reads
// the index, then every record it lists. A record that is missing, unreadable
// or malformed is skipped with a warning; a malformed index fails the load.
// A quota field holding an unrecognized value is cleared to unknown and the
// record is kept.
//
// A Snapshot is never modified after Load returns and may be shared by any
// number of goroutines.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/hostduel/internal/catalog"
	"github.com/tomtom215/hostduel/internal/models"
)

const (
	indexFile    = "index.json"
	companiesDir = "companies"
)

// Entry pairs a provider id with its record.
type Entry struct {
	ID      string
	Company *models.Company
}

// Snapshot is the loaded dataset.
type Snapshot struct {
	index   models.Index
	entries []Entry
	byID    map[string]int
	rows    []models.TableRow
	skipped []string
}

// Load reads the dataset rooted at dir.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Load(ctx context.Context, dir string, logger zerolog.Logger) (*Snapshot, error) {
	log := logger.With().Str("component", "store").Logger()

	indexPath := filepath.Join(dir, indexFile)
	data, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", indexPath, err)
	}

	var index models.Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse index %s: %w", indexPath, err)
	}

	companies := make(map[string]*models.Company, len(index.Companies))
	for _, e := range index.Companies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c, err := readCompany(dir, e.ID)
		if err != nil {
			log.Warn().Err(err).Str("id", e.ID).Msg("skipping provider record")
			continue
		}
		for _, issue := range c.DropUnrecognizedQuotas() {
			log.Warn().
				Str("id", e.ID).
				Str("field", issue.Field).
				Str("value", issue.Raw).
				Msg("unrecognized quota treated as unknown")
		}
		companies[e.ID] = c
	}

	snap := New(index, companies)
	log.Info().
		Int("listed", len(index.Companies)).
		Int("loaded", len(snap.entries)).
		Int("skipped", len(snap.skipped)).
		Msg("provider snapshot loaded")

	return snap, nil
}

func readCompany(dir, id string) (*models.Company, error) {
	if id == "" || filepath.Base(id) != id || id == "." || id == ".." {
		return nil, fmt.Errorf("invalid provider id %q", id)
	}

	path := filepath.Join(dir, companiesDir, id+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var c models.Company
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse record %s: %w", path, err)
	}
	return &c, nil
}

// New builds a snapshot from an index and the records that were loaded for
// it. Index entries without a record are kept as ids but skipped as entries.
// Duplicate ids keep their first position.
func New(index models.Index, companies map[string]*models.Company) *Snapshot {
	s := &Snapshot{
		index:   index,
		entries: make([]Entry, 0, len(index.Companies)),
		byID:    make(map[string]int, len(index.Companies)),
	}

	for _, e := range index.Companies {
		if _, dup := s.byID[e.ID]; dup {
			continue
		}
		c, ok := companies[e.ID]
		if !ok || c == nil {
			s.skipped = append(s.skipped, e.ID)
			continue
		}
		s.byID[e.ID] = len(s.entries)
		s.entries = append(s.entries, Entry{ID: e.ID, Company: c})
	}

	s.rows = make([]models.TableRow, len(s.entries))
	for i, e := range s.entries {
		s.rows[i] = catalog.ToTableRow(e.ID, e.Company)
	}
	return s
}

// GetByID returns the record for id.
func (s *Snapshot) GetByID(id string) (*models.Company, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return s.entries[i].Company, true
}

// All returns the loaded records in index order.
func (s *Snapshot) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// IDs returns every id listed in the index, including skipped ones.
func (s *Snapshot) IDs() []string {
	out := make([]string, len(s.index.Companies))
	for i, e := range s.index.Companies {
		out[i] = e.ID
	}
	return out
}

// Index returns the manifest the snapshot was loaded from.
func (s *Snapshot) Index() models.Index {
	return s.index
}

// Rows returns the table projection of every loaded record, in index order.
// Callers must not modify the returned rows.
func (s *Snapshot) Rows() []models.TableRow {
	return s.rows
}

// RowByID returns the table row for id.
func (s *Snapshot) RowByID(id string) (models.TableRow, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.TableRow{}, false
	}
	return s.rows[i], true
}

// Len is the number of loaded records.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Skipped lists index ids whose record could not be loaded.
func (s *Snapshot) Skipped() []string {
	out := make([]string, len(s.skipped))
	copy(out, s.skipped)
	return out
}
