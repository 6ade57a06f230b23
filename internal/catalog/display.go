// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package catalog

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/hostduel/internal/models"
)

// NotAvailable is shown in place of missing values.
const NotAvailable = "N/A"

// PriceDisplay is the rendered promo and renewal price of a plan.
type PriceDisplay struct {
	Price     string  `json:"price"`
	Renewal   *string `json:"renewal"`
	HasMarkup bool    `json:"hasMarkup"`
}

// FormatStorageValue renders a storage or bandwidth quota.
func FormatStorageValue(q *models.Quota) string {
	switch {
	case q == nil:
		return NotAvailable
	case q.Unlimited:
		return models.UnlimitedSentinel
	default:
		return strconv.FormatFloat(q.Value, 'f', -1, 64) + " GB"
	}
}

// FormatPrice renders a price as "$4.99", or N/A when missing.
func FormatPrice(p *float64) string {
	if p == nil {
		return NotAvailable
	}
	return fmt.Sprintf("$%.2f", *p)
}

// FormatPriceRange renders a price band. Either end may be missing.
func FormatPriceRange(lo, hi *float64) string {
	switch {
	case lo == nil && hi == nil:
		return NotAvailable
	case lo == nil:
		return "Up to " + FormatPrice(hi)
	case hi == nil:
		return "From " + FormatPrice(lo)
	case *lo == *hi:
		return FormatPrice(lo)
	default:
		return FormatPrice(lo) + " - " + FormatPrice(hi)
	}
}

// NewPriceDisplay renders promo and renewal prices. Renewal is omitted when
// it is missing or equal to the promo price.
func NewPriceDisplay(promo, renewal *float64) PriceDisplay {
	if promo == nil {
		return PriceDisplay{Price: NotAvailable}
	}

	d := PriceDisplay{Price: fmt.Sprintf("$%.2f/mo", *promo)}
	if renewal == nil || *renewal == *promo {
		return d
	}

	d.Renewal = models.Ptr(fmt.Sprintf("$%.2f/mo", *renewal))
	d.HasMarkup = *renewal > *promo
	return d
}
