// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package compare

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/hostduel/internal/models"
)

// Side identifies the winner of a category.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
	Tie   Side = "tie"
)

// TieName is the WinnerName of a tied category.
const TieName = "Tie"

// CategoryWinner is the result of one category of a head-to-head.
type CategoryWinner struct {
	Category   string `json:"category"`
	Label      string `json:"label"`
	Winner     Side   `json:"winner"`
	WinnerName string `json:"winnerName"`
	Reason     string `json:"reason"`
}

// Overall is the aggregate verdict across categories.
type Overall struct {
	Winner  Side     `json:"winner"`
	Reasons []string `json:"reasons"`
}

// Category ids in evaluation order.
const (
	CategoryPrice       = "price"
	CategoryValue       = "value"
	CategoryPerformance = "performance"
	CategorySupport     = "support"
	CategoryWordPress   = "wordpress"
	CategoryDevelopers  = "developers"
	CategoryBeginners   = "beginners"
)

func pick(a, b float64, lowerWins bool) Side {
	if lowerWins {
		a, b = -a, -b
	}
	switch {
	case a > b:
		return SideA
	case a < b:
		return SideB
	default:
		return Tie
	}
}

func winnerName(side Side, a, b *models.TableRow) string {
	switch side {
	case SideA:
		return a.Name
	case SideB:
		return b.Name
	default:
		return TieName
	}
}

func sideRow(side Side, a, b *models.TableRow) *models.TableRow {
	if side == SideB {
		return b
	}
	return a
}

func point(v *bool, weight int) int {
	if models.IsTrue(v) {
		return weight
	}
	return 0
}

func is247(hours *string) bool {
	return hours != nil && *hours == "24/7"
}

// CategoryWinners scores a against b in each of the seven categories and
// always returns seven entries. Missing data never fails a category; it
// degrades towards a tie.
func CategoryWinners(a, b *models.TableRow) []CategoryWinner {
	winners := make([]CategoryWinner, 0, 7)
	add := func(category, label string, side Side, reason string) {
		winners = append(winners, CategoryWinner{
			Category:   category,
			Label:      label,
			Winner:     side,
			WinnerName: winnerName(side, a, b),
			Reason:     reason,
		})
	}

	side, reason := priceWinner(a, b)
	add(CategoryPrice, "Best Price", side, reason)

	side, reason = valueWinner(a, b)
	add(CategoryValue, "Best Value", side, reason)

	side, reason = performanceWinner(a, b)
	add(CategoryPerformance, "Best Performance", side, reason)

	side = pick(float64(supportScore(a)), float64(supportScore(b)), false)
	add(CategorySupport, "Best Support", side, featureReason(side, sideRow(side, a, b), supportFeatures,
		"Basic support", "Similar support options"))

	side = pick(float64(wordPressScore(a)), float64(wordPressScore(b)), false)
	add(CategoryWordPress, "Best for WordPress", side, featureReason(side, sideRow(side, a, b), wordPressFeatures,
		"Basic WordPress support", "Similar WordPress features"))

	side = pick(float64(developerScore(a)), float64(developerScore(b)), false)
	add(CategoryDevelopers, "Best for Developers", side, featureReason(side, sideRow(side, a, b), developerFeatures,
		"Basic features", "Similar developer features"))

	side, reason = beginnerWinner(a, b)
	add(CategoryBeginners, "Best for Beginners", side, reason)

	return winners
}

func priceWinner(a, b *models.TableRow) (Side, string) {
	if a.MonthlyPrice == nil && b.MonthlyPrice == nil {
		return Tie, "Pricing unavailable"
	}

	ap := models.ValueOr(a.MonthlyPrice, math.Inf(1))
	bp := models.ValueOr(b.MonthlyPrice, math.Inf(1))
	side := pick(ap, bp, true)
	if side == Tie {
		return Tie, fmt.Sprintf("Both at $%.2f/mo", ap)
	}
	if math.IsInf(ap, 1) || math.IsInf(bp, 1) {
		return side, fmt.Sprintf("$%.2f/mo vs %s", math.Min(ap, bp), naText)
	}
	return side, fmt.Sprintf("$%.2f/mo vs $%.2f/mo", math.Min(ap, bp), math.Max(ap, bp))
}

func valueWinner(a, b *models.TableRow) (Side, string) {
	if a.RenewalMarkupPercent == nil && b.RenewalMarkupPercent == nil {
		return Tie, "Renewal pricing unavailable"
	}

	am := models.ValueOr(a.RenewalMarkupPercent, 0)
	bm := models.ValueOr(b.RenewalMarkupPercent, 0)
	side := pick(am, bm, true)
	if side == Tie {
		return Tie, "Similar renewal pricing"
	}
	return side, fmt.Sprintf("Lower renewal markup (%.0f%% vs %.0f%%)", math.Min(am, bm), math.Max(am, bm))
}

func performanceScore(r *models.TableRow) float64 {
	return (models.ValueOr(r.UptimeGuarantee, 99)-99)*10 + models.ValueOr(r.OverallRating, 0)
}

func performanceWinner(a, b *models.TableRow) (Side, string) {
	side := pick(performanceScore(a), performanceScore(b), false)
	if side == Tie {
		return Tie, "Similar performance metrics"
	}

	w := sideRow(side, a, b)
	uptime, rating := naText, naText
	if w.UptimeGuarantee != nil {
		uptime = strconv.FormatFloat(*w.UptimeGuarantee, 'f', -1, 64)
	}
	if w.OverallRating != nil {
		rating = strconv.FormatFloat(*w.OverallRating, 'f', 1, 64)
	}
	return side, fmt.Sprintf("%s%% uptime, %s/5 rating", uptime, rating)
}

const naText = "N/A"

func beginnerWinner(a, b *models.TableRow) (Side, string) {
	as := models.ValueOr(a.EaseOfUse, 0) + models.ValueOr(a.SuitabilityBeginner, 0)
	bs := models.ValueOr(b.EaseOfUse, 0) + models.ValueOr(b.SuitabilityBeginner, 0)
	side := pick(as, bs, false)
	if side == Tie {
		return Tie, "Similar beginner-friendliness"
	}
	return side, fmt.Sprintf("Higher ease of use score (%.1f/10)", math.Max(as, bs))
}

func supportScore(r *models.TableRow) int {
	score := point(r.LiveChatAvailable, 2) + point(r.PhoneSupportAvailable, 2) + point(r.TicketSupport, 1)
	if is247(r.LiveChatHours) {
		score += 2
	}
	return score
}

func wordPressScore(r *models.TableRow) int {
	return point(r.WordPressOptimized, 2) + point(r.WordPressStaging, 1) +
		point(r.WooCommerceOptimized, 1) + point(r.LiteSpeedCache, 1)
}

func developerScore(r *models.TableRow) int {
	return point(r.SSHAccess, 2) + point(r.GitDeployment, 1) + point(r.StagingEnvironment, 1) +
		point(r.NodejsSupport, 1) + point(r.PythonSupport, 1)
}

type labelledFeature struct {
	label string
	has   func(*models.TableRow) bool
}

var supportFeatures = []labelledFeature{
	{"Live chat", func(r *models.TableRow) bool { return models.IsTrue(r.LiveChatAvailable) }},
	{"Phone", func(r *models.TableRow) bool { return models.IsTrue(r.PhoneSupportAvailable) }},
	{"24/7", func(r *models.TableRow) bool { return is247(r.LiveChatHours) }},
}

var wordPressFeatures = []labelledFeature{
	{"Optimized", func(r *models.TableRow) bool { return models.IsTrue(r.WordPressOptimized) }},
	{"Staging", func(r *models.TableRow) bool { return models.IsTrue(r.WordPressStaging) }},
	{"WooCommerce", func(r *models.TableRow) bool { return models.IsTrue(r.WooCommerceOptimized) }},
	{"LiteSpeed", func(r *models.TableRow) bool { return models.IsTrue(r.LiteSpeedCache) }},
}

var developerFeatures = []labelledFeature{
	{"SSH", func(r *models.TableRow) bool { return models.IsTrue(r.SSHAccess) }},
	{"Git", func(r *models.TableRow) bool { return models.IsTrue(r.GitDeployment) }},
	{"Staging", func(r *models.TableRow) bool { return models.IsTrue(r.StagingEnvironment) }},
	{"Node.js", func(r *models.TableRow) bool { return models.IsTrue(r.NodejsSupport) }},
}

func featureReason(side Side, winner *models.TableRow, features []labelledFeature, fallback, tie string) string {
	if side == Tie {
		return tie
	}
	var labels []string
	for _, f := range features {
		if f.has(winner) {
			labels = append(labels, f.label)
		}
	}
	if len(labels) == 0 {
		return fallback
	}
	return strings.Join(labels, ", ")
}

// OverallWinner declares the side with strictly more category wins.
func OverallWinner(a, b *models.TableRow, winners []CategoryWinner) Overall {
	aWins, bWins := 0, 0
	for _, w := range winners {
		switch w.Winner {
		case SideA:
			aWins++
		case SideB:
			bWins++
		}
	}

	side := pick(float64(aWins), float64(bWins), false)
	if side == Tie {
		return Overall{
			Winner:  Tie,
			Reasons: []string{"Both hosts are evenly matched", "Choose based on your specific needs"},
		}
	}

	var won []string
	for _, w := range winners {
		if w.Winner == side {
			won = append(won, w.Label)
		}
	}
	top := won
	if len(top) > 3 {
		top = top[:3]
	}

	reasons := []string{
		fmt.Sprintf("Wins in %d of %d categories", len(won), len(winners)),
		"Top in: " + strings.Join(top, ", "),
	}
	if r := sideRow(side, a, b).OverallRating; r != nil && *r != 0 {
		reasons = append(reasons, fmt.Sprintf("%.1f/5 overall rating", *r))
	}
	return Overall{Winner: side, Reasons: reasons}
}
