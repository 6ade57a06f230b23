// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package filter

import (
	"reflect"
	"testing"

	"github.com/tomtom215/hostduel/internal/models"
)

func ids(rows []models.TableRow) []string {
	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].ID
	}
	return out
}

func hostType(t models.HostingType) *models.HostingType { return &t }

func TestApply_PriceAndFeature(t *testing.T) {
	t.Parallel()

	rows := []models.TableRow{
		{ID: "a", Name: "A", MonthlyPrice: models.Ptr(5.0), SSHAccess: models.Ptr(true)},
		{ID: "b", Name: "B", MonthlyPrice: models.Ptr(15.0), SSHAccess: models.Ptr(false)},
		{ID: "c", Name: "C", SSHAccess: models.Ptr(true)},
	}

	state := DefaultFilterState()
	state.PriceRange = PriceRange{Min: 0, Max: 10}
	state.Features.SSHAccess = true

	got := ids(Apply(rows, state))
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestApply_EmptyStateKeepsEverything(t *testing.T) {
	t.Parallel()

	rows := []models.TableRow{
		{ID: "a", Name: "A", MonthlyPrice: models.Ptr(2.99)},
		{ID: "b", Name: "B"},
	}
	got := ids(Apply(rows, DefaultFilterState()))
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Apply(default) = %v", got)
	}
}

func TestApply_Filters(t *testing.T) {
	t.Parallel()

	rows := []models.TableRow{
		{
			ID: "alpha", Name: "Alpha Host", HostingType: hostType(models.HostingShared),
			MonthlyPrice: models.Ptr(3.0), OverallRating: models.Ptr(4.5), UptimeGuarantee: models.Ptr(99.9),
			StorageGB: models.Unbounded(), SuitabilityBlogger: models.Ptr(5.0),
		},
		{
			ID: "beta", Name: "Beta Cloud", HostingType: hostType(models.HostingCloudIaaS),
			MonthlyPrice: models.Ptr(50.0), OverallRating: models.Ptr(3.5), UptimeGuarantee: models.Ptr(99.99),
			StorageGB: models.Bounded(100), SuitabilityBlogger: models.Ptr(3.0),
		},
		{ID: "gamma", Name: "Gamma"},
	}

	tests := []struct {
		name   string
		mutate func(*FilterState)
		want   []string
	}{
		{"hosting type drops null type", func(s *FilterState) {
			s.HostingTypes = []models.HostingType{models.HostingShared}
		}, []string{"alpha"}},
		{"min rating", func(s *FilterState) { s.MinRating = 4 }, []string{"alpha"}},
		{"min uptime", func(s *FilterState) { s.MinUptime = 99.95 }, []string{"beta"}},
		{"unlimited storage", func(s *FilterState) { s.Features.UnlimitedStorage = true }, []string{"alpha"}},
		{"suitability", func(s *FilterState) { s.Suitability.Blogger = true }, []string{"alpha"}},
		{"price range", func(s *FilterState) { s.PriceRange = PriceRange{Min: 10, Max: 100} }, []string{"beta", "gamma"}},
		{"filters combine", func(s *FilterState) {
			s.MinRating = 3
			s.PriceRange = PriceRange{Min: 10, Max: 100}
		}, []string{"beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state := DefaultFilterState()
			tt.mutate(&state)
			got := ids(Apply(rows, state))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesSearch(t *testing.T) {
	t.Parallel()

	row := models.TableRow{
		ID:            "bluehost",
		Name:          "Bluehost",
		HostingType:   hostType(models.HostingShared),
		FreeSSL:       models.Ptr(true),
		SSHAccess:     models.Ptr(false),
		LiveChatHours: models.Ptr("24/7"),
		BandwidthGB:   models.Unbounded(),
		GreenHosting:  nil,
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"blue", true},
		{"BLUEHOST", true},
		{"shared", true},
		{"shared hosting", true},
		{"free ssl", true},
		{"cheap ssl please", true},
		{"ssh", false},
		{"24/7 support", true},
		{"unlimited", true},
		{"eco", false},
		{"kinsta", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			if got := MatchesSearch(&row, tt.query); got != tt.want {
				t.Errorf("MatchesSearch(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestKeywordsMatchDictionaryOrder(t *testing.T) {
	t.Parallel()

	if keywordMatcher.PatternCount() != len(Keywords) {
		t.Fatalf("matcher has %d patterns, want %d", keywordMatcher.PatternCount(), len(Keywords))
	}
	if Keywords[0].Term != "adult" || Keywords[len(Keywords)-1].Term != "eco" {
		t.Errorf("dictionary order changed: first %q last %q", Keywords[0].Term, Keywords[len(Keywords)-1].Term)
	}
}

func TestSetFeatureAndSuitability(t *testing.T) {
	t.Parallel()

	var f Features
	for _, name := range FeatureNames() {
		if !f.SetFeature(name) {
			t.Errorf("SetFeature(%q) = false", name)
		}
	}
	if !f.PCICompliance || !f.FreeSSL || !f.UnlimitedBandwidth {
		t.Errorf("SetFeature did not enable every toggle: %+v", f)
	}
	if f.SetFeature("teleport") {
		t.Error("SetFeature accepted an unknown name")
	}
	if len(FeatureNames()) != 17 {
		t.Errorf("len(FeatureNames()) = %d, want 17", len(FeatureNames()))
	}

	var s Suitability
	if !s.SetSuitability("enterprise") || !s.Enterprise {
		t.Error("SetSuitability(enterprise) failed")
	}
	if s.SetSuitability("gamer") {
		t.Error("SetSuitability accepted an unknown name")
	}
}
