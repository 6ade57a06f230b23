// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package compare

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/tomtom215/hostduel/internal/models"
)

func typedRow(id string, t models.HostingType) models.TableRow {
	return models.TableRow{ID: id, Name: id, HostingType: &t}
}

func TestClusterForType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ    models.HostingType
		want   string
		wantOK bool
	}{
		{models.HostingShared, "shared", true},
		{models.HostingVPS, "cloud-vps", true},
		{models.HostingCloudIaaS, "cloud-vps", true},
		{models.HostingEcommercePlatform, "website-builders", true},
		{models.HostingPaaS, "modern-platforms", true},
		{models.HostingDedicated, "", false},
		{models.HostingCDNSecurity, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			t.Parallel()
			got, ok := ClusterForType(tt.typ)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ClusterForType(%q) = %q, %v, want %q, %v", tt.typ, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGeneratePairs(t *testing.T) {
	t.Parallel()

	rows := []models.TableRow{
		typedRow("vultr", models.HostingCloudIaaS),
		typedRow("hostinger", models.HostingShared),
		typedRow("bluehost", models.HostingShared),
		typedRow("linode", models.HostingVPS),
		typedRow("ovh", models.HostingDedicated),
		typedRow("a2", models.HostingShared),
		{ID: "untyped", Name: "Untyped"},
	}

	got := GeneratePairs(rows)
	want := []Pair{
		{"a2", "bluehost", "shared"},
		{"a2", "hostinger", "shared"},
		{"bluehost", "hostinger", "shared"},
		{"linode", "vultr", "cloud-vps"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GeneratePairs() = %v, want %v", got, want)
	}
}

func TestGeneratePairsCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 5, 12} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			rows := make([]models.TableRow, n)
			for i := range rows {
				rows[i] = typedRow(fmt.Sprintf("host%02d", i), models.HostingManagedWordPress)
			}

			pairs := GeneratePairs(rows)
			if want := n * (n - 1) / 2; len(pairs) != want {
				t.Errorf("len(pairs) = %d, want %d", len(pairs), want)
			}

			seen := make(map[string]bool)
			for _, p := range pairs {
				if p.HostA >= p.HostB {
					t.Errorf("pair %v not ordered", p)
				}
				if seen[p.Slug()] {
					t.Errorf("duplicate pair %s", p.Slug())
				}
				seen[p.Slug()] = true
			}
		})
	}
}

func TestSlugCanonical(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{{"bluehost", "hostinger"}, {"kinsta", "wp-engine"}, {"z", "a"}}
	for _, p := range pairs {
		ab, ba := Slug(p[0], p[1]), Slug(p[1], p[0])
		if ab != ba {
			t.Errorf("Slug(%q, %q) = %q but reversed = %q", p[0], p[1], ab, ba)
		}

		a, b, ok := ParseSlug(ab)
		if !ok {
			t.Fatalf("ParseSlug(%q) failed", ab)
		}
		got := map[string]bool{a: true, b: true}
		if !got[p[0]] || !got[p[1]] {
			t.Errorf("ParseSlug(%q) = %q, %q, want {%q, %q}", ab, a, b, p[0], p[1])
		}
	}

	if got := Slug("wp-engine", "kinsta"); got != "kinsta-vs-wp-engine" {
		t.Errorf("Slug = %q, want kinsta-vs-wp-engine", got)
	}
}

func TestParseSlugInvalid(t *testing.T) {
	t.Parallel()

	for _, slug := range []string{"", "bluehost", "a-vs-b-vs-c", "-vs-b", "a-vs-", "bluehost-versus-hostinger"} {
		if _, _, ok := ParseSlug(slug); ok {
			t.Errorf("ParseSlug(%q) succeeded, want failure", slug)
		}
	}
}

func TestRelated(t *testing.T) {
	t.Parallel()

	pairs := []Pair{
		{"a", "b", "shared"},
		{"a", "c", "shared"},
		{"a", "d", "shared"},
		{"b", "c", "shared"},
		{"a", "c", "shared"},
		{"a", "e", "shared"},
		{"a", "f", "shared"},
	}

	got := Related(pairs, "a", "a-vs-b", 0)
	var slugs []string
	for _, p := range got {
		slugs = append(slugs, p.Slug())
	}
	want := []string{"a-vs-c", "a-vs-d", "a-vs-e", "a-vs-f"}
	if !reflect.DeepEqual(slugs, want) {
		t.Errorf("Related() = %v, want %v", slugs, want)
	}

	if got := Related(pairs, "a", "", 2); len(got) != 2 {
		t.Errorf("len(Related(limit 2)) = %d, want 2", len(got))
	}
	if got := Related(pairs, "zzz", "", 4); len(got) != 0 {
		t.Errorf("Related(unknown) = %v, want empty", got)
	}
}
