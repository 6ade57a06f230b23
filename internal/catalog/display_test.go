// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package catalog

import (
	"testing"

	"github.com/tomtom215/hostduel/internal/models"
)

func TestFormatStorageValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		quota *models.Quota
		want  string
	}{
		{"missing", nil, "N/A"},
		{"unlimited", models.Unbounded(), "Unlimited"},
		{"whole", models.Bounded(50), "50 GB"},
		{"fraction", models.Bounded(0.5), "0.5 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatStorageValue(tt.quota); got != tt.want {
				t.Errorf("FormatStorageValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewPriceDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		promo       *float64
		renewal     *float64
		wantPrice   string
		wantRenewal string
		wantMarkup  bool
	}{
		{name: "no promo", renewal: models.Ptr(9.99), wantPrice: "N/A"},
		{name: "no renewal", promo: models.Ptr(2.95), wantPrice: "$2.95/mo"},
		{name: "same renewal", promo: models.Ptr(5.0), renewal: models.Ptr(5.0), wantPrice: "$5.00/mo"},
		{name: "markup", promo: models.Ptr(2.99), renewal: models.Ptr(10.99), wantPrice: "$2.99/mo", wantRenewal: "$10.99/mo", wantMarkup: true},
		{name: "cheaper renewal", promo: models.Ptr(12.0), renewal: models.Ptr(10.0), wantPrice: "$12.00/mo", wantRenewal: "$10.00/mo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewPriceDisplay(tt.promo, tt.renewal)
			if got.Price != tt.wantPrice {
				t.Errorf("Price = %q, want %q", got.Price, tt.wantPrice)
			}
			if gotRenewal := models.ValueOr(got.Renewal, ""); gotRenewal != tt.wantRenewal {
				t.Errorf("Renewal = %q, want %q", gotRenewal, tt.wantRenewal)
			}
			if got.HasMarkup != tt.wantMarkup {
				t.Errorf("HasMarkup = %v, want %v", got.HasMarkup, tt.wantMarkup)
			}
		})
	}
}

func TestFormatPriceRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lo, hi *float64
		want   string
	}{
		{"both missing", nil, nil, "N/A"},
		{"only max", nil, models.Ptr(30.0), "Up to $30.00"},
		{"only min", models.Ptr(10.0), nil, "From $10.00"},
		{"equal", models.Ptr(4.5), models.Ptr(4.5), "$4.50"},
		{"range", models.Ptr(2.99), models.Ptr(14.99), "$2.99 - $14.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatPriceRange(tt.lo, tt.hi); got != tt.want {
				t.Errorf("FormatPriceRange() = %q, want %q", got, tt.want)
			}
		})
	}
}
