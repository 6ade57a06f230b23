// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package compare

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/hostduel/internal/cache"
	"github.com/tomtom215/hostduel/internal/metrics"
	"github.com/tomtom215/hostduel/internal/models"
)

// DefaultRelated is the number of related comparisons shown per page.
const DefaultRelated = 4

const (
	defaultCacheCapacity = 2000
	defaultCacheTTL      = time.Hour
	defaultSiteName      = "HostDuel"
)

var (
	// ErrInvalidSlug is returned for slugs that do not name two distinct ids.
	ErrInvalidSlug = errors.New("invalid comparison slug")

	// ErrHostNotFound is returned when either id has no record.
	ErrHostNotFound = errors.New("host not found")

	// ErrCrossCluster is returned when the two hosts are not in the same
	// comparison cluster.
	ErrCrossCluster = errors.New("hosts are not comparable")
)

// RelatedComparison links to another comparison page.
type RelatedComparison struct {
	Slug      string `json:"slug"`
	HostA     string `json:"hostA"`
	HostB     string `json:"hostB"`
	HostAName string `json:"hostAName"`
	HostBName string `json:"hostBName"`
}

// Comparison is a complete head-to-head between two hosts. Values returned
// by Engine.Compare are shared through the memo and must not be modified.
type Comparison struct {
	Slug        string              `json:"slug"`
	Cluster     string              `json:"cluster"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Canonical   string              `json:"canonical"`
	HostA       models.TableRow     `json:"hostA"`
	HostB       models.TableRow     `json:"hostB"`
	Winners     []CategoryWinner    `json:"categoryWinners"`
	Overall     Overall             `json:"overall"`
	Related     []RelatedComparison `json:"related"`
}

// Engine answers comparison queries over an immutable set of rows. It is
// safe for concurrent use.
type Engine struct {
	rows     []models.TableRow
	byID     map[string]int
	pairs    []Pair
	clusters map[string]string // slug -> cluster
	memo     *cache.LRUCache[*Comparison]
	siteName string
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache sizes the comparison memo.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(e *Engine) {
		e.memo = cache.NewLRUCache[*Comparison](capacity, ttl)
	}
}

// WithSiteName sets the brand used in page titles.
func WithSiteName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.siteName = name
		}
	}
}

// WithClock overrides the clock used for the year in page titles.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine indexes rows and precomputes every valid pair. Duplicate ids
// keep their first row.
func NewEngine(rows []models.TableRow, opts ...Option) *Engine {
	e := &Engine{
		rows:     rows,
		byID:     make(map[string]int, len(rows)),
		siteName: defaultSiteName,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.memo == nil {
		e.memo = cache.NewLRUCache[*Comparison](defaultCacheCapacity, defaultCacheTTL)
	}

	for i := range rows {
		if _, dup := e.byID[rows[i].ID]; !dup {
			e.byID[rows[i].ID] = i
		}
	}

	e.pairs = GeneratePairs(rows)
	e.clusters = make(map[string]string, len(e.pairs))
	for _, p := range e.pairs {
		e.clusters[p.Slug()] = p.Cluster
	}
	return e
}

// Pairs returns every valid pair in generation order.
func (e *Engine) Pairs() []Pair {
	out := make([]Pair, len(e.pairs))
	copy(out, e.pairs)
	return out
}

// PairsInCluster returns the pairs of one cluster. An unknown cluster
// yields no pairs.
func (e *Engine) PairsInCluster(cluster string) []Pair {
	var out []Pair
	for _, p := range e.pairs {
		if p.Cluster == cluster {
			out = append(out, p)
		}
	}
	return out
}

// HasPair reports whether slug is the canonical slug of a valid pair.
func (e *Engine) HasPair(slug string) bool {
	_, ok := e.clusters[slug]
	return ok
}

// CacheStats reports the comparison memo counters.
func (e *Engine) CacheStats() cache.Stats {
	return e.memo.Stats()
}

func (e *Engine) row(id string) (*models.TableRow, bool) {
	i, ok := e.byID[id]
	if !ok {
		return nil, false
	}
	return &e.rows[i], true
}

// Compare returns the head-to-head for slug. Either id order is accepted;
// the result always carries the canonical slug with HostA as the smaller id.
func (e *Engine) Compare(slug string) (*Comparison, error) {
	a, b, ok := ParseSlug(slug)
	if !ok || a == b {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	canonical := Slug(a, b)

	if c, hit := e.memo.Get(canonical); hit {
		metrics.RecordComparisonCache(true)
		return c, nil
	}
	metrics.RecordComparisonCache(false)

	if b < a {
		a, b = b, a
	}
	rowA, okA := e.row(a)
	rowB, okB := e.row(b)
	if !okA || !okB {
		missing := a
		if okA {
			missing = b
		}
		return nil, fmt.Errorf("%w: %s", ErrHostNotFound, missing)
	}

	cluster, ok := e.clusters[canonical]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCrossCluster, canonical)
	}

	winners := CategoryWinners(rowA, rowB)
	c := &Comparison{
		Slug:    canonical,
		Cluster: cluster,
		Title: fmt.Sprintf("%s vs %s: Complete %d Comparison | %s",
			rowA.Name, rowB.Name, e.now().Year(), e.siteName),
		Description: fmt.Sprintf("Compare %s vs %s side by side. See pricing, features, performance, "+
			"support, and our expert verdict on which hosting is better for your needs.", rowA.Name, rowB.Name),
		Canonical: "/compare/" + canonical,
		HostA:     *rowA,
		HostB:     *rowB,
		Winners:   winners,
		Overall:   OverallWinner(rowA, rowB, winners),
		Related:   e.RelatedFor(a, b, canonical),
	}

	e.memo.Add(canonical, c)
	return c, nil
}

// RelatedFor returns up to DefaultRelated other comparisons: two involving
// a and two involving b, without duplicates. Names fall back to ids for
// hosts without a record.
func (e *Engine) RelatedFor(a, b, slug string) []RelatedComparison {
	half := DefaultRelated / 2
	candidates := append(Related(e.pairs, a, slug, half), Related(e.pairs, b, slug, half)...)

	seen := make(map[string]bool, len(candidates))
	out := make([]RelatedComparison, 0, len(candidates))
	for _, p := range candidates {
		s := p.Slug()
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, RelatedComparison{
			Slug:      s,
			HostA:     p.HostA,
			HostB:     p.HostB,
			HostAName: e.name(p.HostA),
			HostBName: e.name(p.HostB),
		})
		if len(out) == DefaultRelated {
			break
		}
	}
	return out
}

func (e *Engine) name(id string) string {
	if r, ok := e.row(id); ok && r.Name != "" {
		return r.Name
	}
	return id
}
