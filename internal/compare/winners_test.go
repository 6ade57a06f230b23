// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package compare

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/hostduel/internal/models"
)

func findCategory(t *testing.T, winners []CategoryWinner, category string) CategoryWinner {
	t.Helper()
	for _, w := range winners {
		if w.Category == category {
			return w
		}
	}
	t.Fatalf("category %q missing", category)
	return CategoryWinner{}
}

func TestCategoryWinners_AlwaysSeven(t *testing.T) {
	t.Parallel()

	a := &models.TableRow{ID: "a", Name: "Alpha"}
	b := &models.TableRow{ID: "b", Name: "Beta"}
	winners := CategoryWinners(a, b)

	wantOrder := []string{"price", "value", "performance", "support", "wordpress", "developers", "beginners"}
	var got []string
	for _, w := range winners {
		got = append(got, w.Category)
		if w.Winner != Tie || w.WinnerName != TieName {
			t.Errorf("%s: empty rows gave winner %q (%q), want tie", w.Category, w.Winner, w.WinnerName)
		}
	}
	if !reflect.DeepEqual(got, wantOrder) {
		t.Errorf("categories = %v, want %v", got, wantOrder)
	}

	if r := findCategory(t, winners, "price").Reason; r != "Pricing unavailable" {
		t.Errorf("price reason = %q", r)
	}
	if r := findCategory(t, winners, "value").Reason; r != "Renewal pricing unavailable" {
		t.Errorf("value reason = %q", r)
	}
}

func TestCategoryWinners_Price(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a, b       *float64
		wantSide   Side
		wantReason string
	}{
		{"cheaper A", models.Ptr(4.99), models.Ptr(9.99), SideA, "$4.99/mo vs $9.99/mo"},
		{"cheaper B", models.Ptr(12.0), models.Ptr(2.5), SideB, "$2.50/mo vs $12.00/mo"},
		{"equal", models.Ptr(3.0), models.Ptr(3.0), Tie, "Both at $3.00/mo"},
		{"only B priced", nil, models.Ptr(7.0), SideB, "$7.00/mo vs N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := &models.TableRow{Name: "Alpha", MonthlyPrice: tt.a}
			b := &models.TableRow{Name: "Beta", MonthlyPrice: tt.b}
			w := findCategory(t, CategoryWinners(a, b), "price")
			if w.Winner != tt.wantSide {
				t.Errorf("winner = %q, want %q", w.Winner, tt.wantSide)
			}
			if w.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", w.Reason, tt.wantReason)
			}
		})
	}
}

func TestCategoryWinners_PriceReasonContainsBothPrices(t *testing.T) {
	t.Parallel()

	a := &models.TableRow{Name: "Alpha", MonthlyPrice: models.Ptr(4.99)}
	b := &models.TableRow{Name: "Beta", MonthlyPrice: models.Ptr(9.99)}
	w := findCategory(t, CategoryWinners(a, b), "price")

	if w.Winner != SideA || w.WinnerName != "Alpha" {
		t.Errorf("winner = %q (%q), want A (Alpha)", w.Winner, w.WinnerName)
	}
	if !strings.Contains(w.Reason, "4.99") || !strings.Contains(w.Reason, "9.99") {
		t.Errorf("reason %q does not mention both prices", w.Reason)
	}
}

func TestCategoryWinners_Value(t *testing.T) {
	t.Parallel()

	a := &models.TableRow{Name: "Alpha", RenewalMarkupPercent: models.Ptr(150.0)}
	b := &models.TableRow{Name: "Beta"}
	w := findCategory(t, CategoryWinners(a, b), "value")

	if w.Winner != SideB {
		t.Errorf("winner = %q, want B (missing markup counts as 0)", w.Winner)
	}
	if w.Reason != "Lower renewal markup (0% vs 150%)" {
		t.Errorf("reason = %q", w.Reason)
	}
}

func TestCategoryWinners_Performance(t *testing.T) {
	t.Parallel()

	a := &models.TableRow{Name: "Alpha", UptimeGuarantee: models.Ptr(99.9), OverallRating: models.Ptr(4.2)}
	b := &models.TableRow{Name: "Beta", OverallRating: models.Ptr(4.8)}
	w := findCategory(t, CategoryWinners(a, b), "performance")

	// A: 0.9*10 + 4.2 = 13.2, B: 0 + 4.8
	if w.Winner != SideA {
		t.Errorf("winner = %q, want A", w.Winner)
	}
	if w.Reason != "99.9% uptime, 4.2/5 rating" {
		t.Errorf("reason = %q", w.Reason)
	}

	c := &models.TableRow{Name: "Gamma", UptimeGuarantee: models.Ptr(99.99)}
	w = findCategory(t, CategoryWinners(c, &models.TableRow{Name: "Delta"}), "performance")
	if w.Reason != "99.99% uptime, N/A/5 rating" {
		t.Errorf("reason with missing rating = %q", w.Reason)
	}
}

func TestCategoryWinners_FeatureCategories(t *testing.T) {
	t.Parallel()

	a := &models.TableRow{
		Name:              "Alpha",
		LiveChatAvailable: models.Ptr(true),
		LiveChatHours:     models.Ptr("24/7"),
		TicketSupport:     models.Ptr(true),
		SSHAccess:         models.Ptr(true),
		GitDeployment:     models.Ptr(true),
		PythonSupport:     models.Ptr(true),
	}
	b := &models.TableRow{
		Name:                  "Beta",
		PhoneSupportAvailable: models.Ptr(true),
		WordPressOptimized:    models.Ptr(true),
		WordPressStaging:      models.Ptr(true),
		LiteSpeedCache:        models.Ptr(true),
		EaseOfUse:             models.Ptr(9.0),
		SuitabilityBeginner:   models.Ptr(5.0),
	}
	winners := CategoryWinners(a, b)

	tests := []struct {
		category   string
		wantSide   Side
		wantReason string
	}{
		{"support", SideA, "Live chat, 24/7"},
		{"wordpress", SideB, "Optimized, Staging, LiteSpeed"},
		{"developers", SideA, "SSH, Git"},
		{"beginners", SideB, "Higher ease of use score (14.0/10)"},
	}
	for _, tt := range tests {
		w := findCategory(t, winners, tt.category)
		if w.Winner != tt.wantSide || w.Reason != tt.wantReason {
			t.Errorf("%s = %q %q, want %q %q", tt.category, w.Winner, w.Reason, tt.wantSide, tt.wantReason)
		}
	}
}

func TestCategoryWinners_FallbackReasons(t *testing.T) {
	t.Parallel()

	// Python alone wins developers but is not a listed feature.
	a := &models.TableRow{Name: "Alpha", PythonSupport: models.Ptr(true), TicketSupport: models.Ptr(true)}
	b := &models.TableRow{Name: "Beta"}
	winners := CategoryWinners(a, b)

	if r := findCategory(t, winners, "developers").Reason; r != "Basic features" {
		t.Errorf("developers reason = %q, want Basic features", r)
	}
	if r := findCategory(t, winners, "support").Reason; r != "Basic support" {
		t.Errorf("support reason = %q, want Basic support", r)
	}
}

func TestOverallWinner(t *testing.T) {
	t.Parallel()

	a := &models.TableRow{Name: "Alpha", OverallRating: models.Ptr(4.56)}
	b := &models.TableRow{Name: "Beta"}
	winners := []CategoryWinner{
		{Label: "Best Price", Winner: SideA},
		{Label: "Best Value", Winner: SideB},
		{Label: "Best Performance", Winner: SideA},
		{Label: "Best Support", Winner: Tie},
		{Label: "Best for WordPress", Winner: SideA},
		{Label: "Best for Developers", Winner: SideA},
		{Label: "Best for Beginners", Winner: Tie},
	}

	got := OverallWinner(a, b, winners)
	want := Overall{
		Winner: SideA,
		Reasons: []string{
			"Wins in 4 of 7 categories",
			"Top in: Best Price, Best Performance, Best for WordPress",
			"4.6/5 overall rating",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OverallWinner() = %+v, want %+v", got, want)
	}

	tied := OverallWinner(a, b, []CategoryWinner{{Winner: SideA}, {Winner: SideB}, {Winner: Tie}})
	if tied.Winner != Tie || len(tied.Reasons) != 2 || tied.Reasons[0] != "Both hosts are evenly matched" {
		t.Errorf("tied OverallWinner() = %+v", tied)
	}

	bWins := OverallWinner(a, b, []CategoryWinner{{Label: "Best Value", Winner: SideB}})
	if bWins.Winner != SideB || len(bWins.Reasons) != 2 {
		t.Errorf("B with no rating = %+v, want two reasons", bWins)
	}
}
