// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package catalog

import "github.com/tomtom215/hostduel/internal/models"

// RatingWeight is the share one rating dimension contributes to the
// weighted rating.
type RatingWeight struct {
	Dimension string
	Weight    float64
	value     func(*models.TableRow) *float64
}

// RatingWeights are the methodology weights for the 1-5 rating dimensions.
// They sum to 1.
var RatingWeights = []RatingWeight{
	{"valueForMoney", 0.20, func(r *models.TableRow) *float64 { return r.ValueForMoney }},
	{"performance", 0.20, func(r *models.TableRow) *float64 { return r.PerformanceRating }},
	{"supportQuality", 0.15, func(r *models.TableRow) *float64 { return r.SupportQuality }},
	{"security", 0.15, func(r *models.TableRow) *float64 { return r.SecurityRating }},
	{"features", 0.10, func(r *models.TableRow) *float64 { return r.FeaturesRating }},
	{"easeOfUse", 0.10, func(r *models.TableRow) *float64 { return r.EaseOfUse }},
	{"transparency", 0.10, func(r *models.TableRow) *float64 { return r.TransparencyRating }},
}

// WeightedRating combines the present rating dimensions with RatingWeights,
// renormalising over the weights of the dimensions that are present.
// It returns nil when no dimension is rated.
func WeightedRating(row *models.TableRow) *float64 {
	var sum, weight float64
	for _, w := range RatingWeights {
		if v := w.value(row); v != nil {
			sum += *v * w.Weight
			weight += w.Weight
		}
	}
	if weight == 0 {
		return nil
	}
	return models.Ptr(sum / weight)
}
