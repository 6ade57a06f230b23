// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/hostduel/internal/models"
)

func typed(id string, t models.HostingType, rating *float64) models.TableRow {
	return models.TableRow{ID: id, Name: id, HostingType: models.Ptr(t), OverallRating: rating}
}

func ids(rows []models.TableRow) []string {
	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHostingTypeCounts(t *testing.T) {
	t.Parallel()

	rows := []models.TableRow{
		typed("a", models.HostingShared, nil),
		typed("b", models.HostingShared, nil),
		typed("c", models.HostingVPS, nil),
		{ID: "untyped"},
	}

	counts := HostingTypeCounts(rows)
	if counts[models.HostingShared] != 2 || counts[models.HostingVPS] != 1 || len(counts) != 2 {
		t.Errorf("HostingTypeCounts() = %v", counts)
	}

	list := TypeCounts(rows)
	if len(list) != 2 || list[0].Type != models.HostingShared || list[0].Label != "Shared Hosting" {
		t.Errorf("TypeCounts() = %+v", list)
	}
}

func TestByTypeAndAlternatives(t *testing.T) {
	t.Parallel()

	rows := []models.TableRow{
		typed("low", models.HostingShared, models.Ptr(3.0)),
		typed("unrated", models.HostingShared, nil),
		typed("high", models.HostingShared, models.Ptr(4.8)),
		typed("vps", models.HostingVPS, models.Ptr(5.0)),
		typed("mid", models.HostingShared, models.Ptr(4.0)),
		typed("mid2", models.HostingShared, models.Ptr(4.0)),
	}

	if got := ids(ByType(rows, models.HostingShared)); !equalIDs(got, []string{"high", "mid", "mid2", "low", "unrated"}) {
		t.Errorf("ByType() = %v", got)
	}

	got := ids(Alternatives(rows, rows[2], 0))
	if !equalIDs(got, []string{"mid", "mid2", "low", "unrated"}) {
		t.Errorf("Alternatives() = %v", got)
	}

	if got := Alternatives(rows, models.TableRow{ID: "x"}, 4); len(got) != 0 {
		t.Errorf("Alternatives(untyped) = %v, want empty", ids(got))
	}
}

func TestPriceBand(t *testing.T) {
	t.Parallel()

	priced := func(p *float64) models.TableRow { return models.TableRow{MonthlyPrice: p} }

	tests := []struct {
		name string
		rows []models.TableRow
		want string
	}{
		{name: "empty", rows: nil, want: NotAvailable},
		{name: "no prices", rows: []models.TableRow{priced(nil)}, want: NotAvailable},
		{name: "single", rows: []models.TableRow{priced(models.Ptr(2.95)), priced(nil)}, want: "$2.95"},
		{
			name: "band",
			rows: []models.TableRow{priced(models.Ptr(9.99)), priced(models.Ptr(2.95)), priced(nil), priced(models.Ptr(35.0))},
			want: "$2.95 - $35.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatPriceRange(PriceBand(tt.rows)); got != tt.want {
				t.Errorf("FormatPriceRange(PriceBand()) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTopByUseCase(t *testing.T) {
	t.Parallel()

	rows := []models.TableRow{
		{ID: "zero", SuitabilityBlogger: models.Ptr(0.0)},
		{ID: "four", SuitabilityBlogger: models.Ptr(4.0)},
		{ID: "missing"},
		{ID: "five", SuitabilityBlogger: models.Ptr(5.0)},
		{ID: "four-b", SuitabilityBlogger: models.Ptr(4.0)},
	}

	got := TopByUseCase(rows, UseCaseBlogger, 0)
	want := []string{"five", "four", "four-b"}
	if len(got) != len(want) {
		t.Fatalf("TopByUseCase() returned %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Row.ID != want[i] {
			t.Errorf("TopByUseCase()[%d] = %s, want %s", i, got[i].Row.ID, want[i])
		}
	}
	if got[0].Score != 5 {
		t.Errorf("Score = %v, want 5", got[0].Score)
	}

	if got := TopByUseCase(rows, UseCaseBlogger, 1); len(got) != 1 {
		t.Errorf("TopByUseCase(limit 1) returned %d rows", len(got))
	}
}

func TestLookupUseCase(t *testing.T) {
	t.Parallel()

	info, err := LookupUseCase("developer")
	if err != nil {
		t.Fatalf("LookupUseCase() error = %v", err)
	}
	if info.Title != "Best Web Hosting for Developers" {
		t.Errorf("Title = %q", info.Title)
	}
	if _, err := LookupUseCase("gamers"); !errors.Is(err, ErrUnknownUseCase) {
		t.Errorf("LookupUseCase(gamers) error = %v, want ErrUnknownUseCase", err)
	}
	if len(UseCases) != len(UseCaseIDs) {
		t.Errorf("UseCases has %d entries, UseCaseIDs %d", len(UseCases), len(UseCaseIDs))
	}
}

func TestWeightedRating(t *testing.T) {
	t.Parallel()

	var total float64
	for _, w := range RatingWeights {
		total += w.Weight
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("weights sum to %v, want 1", total)
	}

	if got := WeightedRating(&models.TableRow{}); got != nil {
		t.Errorf("WeightedRating(empty) = %v, want nil", *got)
	}

	row := models.TableRow{ValueForMoney: models.Ptr(5.0), PerformanceRating: models.Ptr(3.0)}
	got := WeightedRating(&row)
	if got == nil || math.Abs(*got-4.0) > 1e-9 {
		t.Errorf("WeightedRating() = %v, want 4", deref(got))
	}
}
