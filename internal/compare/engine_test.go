// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package compare

import (
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/hostduel/internal/models"
)

func engineFixture() *Engine {
	rows := []models.TableRow{
		typedRow("bluehost", models.HostingShared),
		typedRow("hostinger", models.HostingShared),
		typedRow("a2", models.HostingShared),
		typedRow("siteground", models.HostingShared),
		typedRow("kinsta", models.HostingManagedWordPress),
		typedRow("wp-engine", models.HostingManagedWordPress),
		typedRow("ovh", models.HostingDedicated),
	}
	rows[0].Name = "Bluehost"
	rows[1].Name = "Hostinger"
	rows[0].MonthlyPrice = models.Ptr(2.95)
	rows[1].MonthlyPrice = models.Ptr(2.99)

	clock := func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return NewEngine(rows, WithCache(8, time.Hour), WithClock(clock))
}

func TestEngine_Compare(t *testing.T) {
	t.Parallel()

	e := engineFixture()
	c, err := e.Compare("hostinger-vs-bluehost")
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if c.Slug != "bluehost-vs-hostinger" {
		t.Errorf("Slug = %q, want canonical bluehost-vs-hostinger", c.Slug)
	}
	if c.HostA.ID != "bluehost" || c.HostB.ID != "hostinger" {
		t.Errorf("hosts = %s, %s", c.HostA.ID, c.HostB.ID)
	}
	if c.Cluster != "shared" {
		t.Errorf("Cluster = %q", c.Cluster)
	}
	if len(c.Winners) != 7 {
		t.Errorf("len(Winners) = %d, want 7", len(c.Winners))
	}
	if c.Winners[0].WinnerName != "Bluehost" {
		t.Errorf("price winner = %q, want Bluehost", c.Winners[0].WinnerName)
	}
	if c.Title != "Bluehost vs Hostinger: Complete 2026 Comparison | HostDuel" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Canonical != "/compare/bluehost-vs-hostinger" {
		t.Errorf("Canonical = %q", c.Canonical)
	}
}

func TestEngine_CompareErrors(t *testing.T) {
	t.Parallel()

	e := engineFixture()
	tests := []struct {
		slug string
		want error
	}{
		{"bluehost", ErrInvalidSlug},
		{"a-vs-b-vs-c", ErrInvalidSlug},
		{"kinsta-vs-kinsta", ErrInvalidSlug},
		{"bluehost-vs-godaddy", ErrHostNotFound},
		{"nobody-vs-bluehost", ErrHostNotFound},
		{"bluehost-vs-kinsta", ErrCrossCluster},
		{"bluehost-vs-ovh", ErrCrossCluster},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			t.Parallel()
			c, err := e.Compare(tt.slug)
			if !errors.Is(err, tt.want) {
				t.Errorf("Compare(%q) error = %v, want %v", tt.slug, err, tt.want)
			}
			if c != nil {
				t.Errorf("Compare(%q) returned a comparison alongside an error", tt.slug)
			}
		})
	}
}

func TestEngine_Memo(t *testing.T) {
	t.Parallel()

	e := engineFixture()
	first, err := e.Compare("kinsta-vs-wp-engine")
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Compare("wp-engine-vs-kinsta")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("second lookup was recomputed instead of served from the memo")
	}
	if stats := e.CacheStats(); stats.Hits != 1 || stats.Size != 1 {
		t.Errorf("CacheStats() = %+v, want 1 hit and 1 entry", stats)
	}
}

func TestEngine_RelatedFor(t *testing.T) {
	t.Parallel()

	e := engineFixture()
	related := e.RelatedFor("bluehost", "hostinger", "bluehost-vs-hostinger")

	if len(related) != 4 {
		t.Fatalf("len(RelatedFor) = %d, want 4: %+v", len(related), related)
	}
	seen := make(map[string]bool)
	for _, r := range related {
		if r.Slug == "bluehost-vs-hostinger" {
			t.Error("current comparison listed as related")
		}
		if seen[r.Slug] {
			t.Errorf("duplicate related slug %s", r.Slug)
		}
		seen[r.Slug] = true
	}

	if related[0].Slug != "a2-vs-bluehost" || related[0].HostBName != "Bluehost" {
		t.Errorf("related[0] = %+v", related[0])
	}
	if related[0].HostAName != "a2" {
		t.Errorf("name fallback = %q, want a2", related[0].HostAName)
	}
}

func TestEngine_Pairs(t *testing.T) {
	t.Parallel()

	e := engineFixture()
	if got := len(e.Pairs()); got != 7 {
		t.Errorf("len(Pairs()) = %d, want 7 (6 shared + 1 managed-wordpress)", got)
	}
	if got := len(e.PairsInCluster("managed-wordpress")); got != 1 {
		t.Errorf("managed-wordpress pairs = %d, want 1", got)
	}
	if got := e.PairsInCluster("nope"); len(got) != 0 {
		t.Errorf("unknown cluster pairs = %v", got)
	}
	if !e.HasPair("kinsta-vs-wp-engine") || e.HasPair("wp-engine-vs-kinsta") {
		t.Error("HasPair should accept only canonical slugs")
	}
}
