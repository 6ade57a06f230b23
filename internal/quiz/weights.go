// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package quiz

// Weights are the multipliers and caps of the scoring model. Suitability
// and priority ratings are on a 1-5 scale, so a weight of 4 turns a perfect
// building-type fit into 20 points.
type Weights struct {
	BuildingType   float64 // per suitability point
	TechnicalLevel float64 // per suitability point
	Priority       float64 // per priority rating point

	SuitabilityCap float64
	BudgetCap      float64
	FeaturesCap    float64
	PriorityCap    float64

	BudgetUnder         float64 // price at or below the bracket floor
	BudgetFitBase       float64 // price inside the bracket, before the linear bonus
	BudgetFitBonus      float64 // bonus scaled by distance from the ceiling
	BudgetStretch       float64 // price up to BudgetStretchFactor over the ceiling
	BudgetStretchFactor float64

	ReasonThreshold     float64 // minimum 1-5 rating that earns a reason
	OverallRatingReason float64 // minimum overall rating that earns a reason
	MaxReasons          int
	MaxScore            int
}

// DefaultWeights returns the production scoring model: suitability 40,
// budget 25, features 20, priority 15.
func DefaultWeights() Weights {
	return Weights{
		BuildingType:   4,
		TechnicalLevel: 2,
		Priority:       3,

		SuitabilityCap: 40,
		BudgetCap:      25,
		FeaturesCap:    20,
		PriorityCap:    15,

		BudgetUnder:         25,
		BudgetFitBase:       20,
		BudgetFitBonus:      5,
		BudgetStretch:       10,
		BudgetStretchFactor: 1.2,

		ReasonThreshold:     4,
		OverallRatingReason: 4,
		MaxReasons:          4,
		MaxScore:            100,
	}
}
