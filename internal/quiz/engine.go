// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package quiz

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/hostduel/internal/models"
)

// DefaultRecommendations is the number of hosts shown on the results page.
const DefaultRecommendations = 3

// Engine scores hosts against quiz answers. It holds no mutable state.
type Engine struct {
	w Weights
}

// NewEngine returns an engine using w.
func NewEngine(w Weights) *Engine {
	return &Engine{w: w}
}

// Weights returns the engine's scoring model.
func (e *Engine) Weights() Weights {
	return e.w
}

// Score rates every row and returns the results best first. Ties on score
// are broken by overall rating and then by input order.
func (e *Engine) Score(rows []models.TableRow, answers models.QuizAnswers) []models.HostScore {
	scores := make([]models.HostScore, 0, len(rows))
	for i := range rows {
		scores = append(scores, e.scoreRow(&rows[i], &answers))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return models.ValueOr(scores[i].Host.OverallRating, 0) > models.ValueOr(scores[j].Host.OverallRating, 0)
	})
	return scores
}

// Recommend returns the top limit scores. A non-positive limit selects
// DefaultRecommendations.
func (e *Engine) Recommend(rows []models.TableRow, answers models.QuizAnswers, limit int) []models.HostScore {
	if limit <= 0 {
		limit = DefaultRecommendations
	}
	scores := e.Score(rows, answers)
	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}

func (e *Engine) scoreRow(row *models.TableRow, a *models.QuizAnswers) models.HostScore {
	var reasons []string

	suitability := e.suitability(row, a, &reasons)
	budget := e.budget(row, a.Budget, &reasons)
	features := e.features(row, a.MustHaveFeatures, &reasons)
	priority := e.priority(row, a.Priority, &reasons)

	total := int(math.Round(suitability + budget + features + priority))
	total = max(0, min(e.w.MaxScore, total))

	if r := row.OverallRating; r != nil && *r >= e.w.OverallRatingReason {
		reasons = append(reasons, fmt.Sprintf("%.1f overall rating", *r))
	}
	if len(reasons) > e.w.MaxReasons {
		reasons = reasons[:e.w.MaxReasons]
	}
	if reasons == nil {
		reasons = []string{}
	}

	return models.HostScore{
		Host:         *row,
		Score:        total,
		MatchReasons: reasons,
		Breakdown: models.ScoreBreakdown{
			Suitability: suitability,
			Budget:      budget,
			Features:    features,
			Priority:    priority,
		},
	}
}

func clampScore(v, limit float64) float64 {
	return math.Max(0, math.Min(limit, v))
}

func (e *Engine) suitability(row *models.TableRow, a *models.QuizAnswers, reasons *[]string) float64 {
	score := 0.0

	if a.BuildingType != "" {
		s := buildingSuitability(row, a.BuildingType)
		score += s * e.w.BuildingType
		if s >= e.w.ReasonThreshold {
			*reasons = append(*reasons, "Great for "+string(a.BuildingType))
		}
	}

	if a.TechnicalLevel != "" {
		s := levelSuitability(row, a.TechnicalLevel)
		score += s * e.w.TechnicalLevel
		if s >= e.w.ReasonThreshold {
			*reasons = append(*reasons, "Perfect for "+string(a.TechnicalLevel)+"s")
		}
	}

	if a.ExpectedTraffic != "" {
		score += trafficScore(row, a.ExpectedTraffic)
	}

	if a.CMSPreference != "" {
		s := cmsScore(row, a.CMSPreference)
		score += s
		if s >= e.w.ReasonThreshold && a.CMSPreference == models.CMSWordPress {
			*reasons = append(*reasons, "WordPress optimized")
		}
	}

	return clampScore(score, e.w.SuitabilityCap)
}

func buildingSuitability(row *models.TableRow, bt models.BuildingType) float64 {
	switch bt {
	case models.BuildBlog, models.BuildPortfolio:
		return models.ValueOr(row.SuitabilityBlogger, 0)
	case models.BuildEcommerce:
		return models.ValueOr(row.SuitabilityEcommerce, 0)
	case models.BuildSaaS:
		return models.ValueOr(row.SuitabilityDeveloper, 0)
	case models.BuildAgency:
		return models.ValueOr(row.SuitabilityAgency, 0)
	default:
		return 0
	}
}

func levelSuitability(row *models.TableRow, level models.TechnicalLevel) float64 {
	switch level {
	case models.LevelBeginner:
		return models.ValueOr(row.SuitabilityBeginner, 0)
	case models.LevelDeveloper:
		return models.ValueOr(row.SuitabilityDeveloper, 0)
	case models.LevelAgency:
		return models.ValueOr(row.SuitabilityAgency, 0)
	default:
		return 0
	}
}

func rowType(row *models.TableRow) models.HostingType {
	if row.HostingType == nil {
		return ""
	}
	return *row.HostingType
}

func trafficScore(row *models.TableRow, traffic models.TrafficLevel) float64 {
	t := rowType(row)
	switch traffic {
	case models.TrafficStarting:
		return 5
	case models.Traffic10k:
		if t == models.HostingShared {
			return 4
		}
		return 5
	case models.Traffic100k:
		switch t {
		case models.HostingShared:
			return 2
		case models.HostingManagedWordPress, models.HostingVPS:
			return 5
		}
		return 4
	case models.Traffic1m:
		switch t {
		case models.HostingShared:
			return 1
		case models.HostingCloudIaaS, models.HostingDedicated:
			return 5
		case models.HostingManagedWordPress, models.HostingVPS:
			return 4
		}
		return 3
	default:
		return 0
	}
}

func cmsScore(row *models.TableRow, cms models.CMSPreference) float64 {
	t := rowType(row)
	switch cms {
	case models.CMSWordPress:
		if models.IsTrue(row.WordPressOptimized) {
			return 5
		}
		return 2
	case models.CMSCustom:
		n := 0
		for _, v := range []*bool{row.NodejsSupport, row.PythonSupport, row.RubySupport, row.SSHAccess} {
			if models.IsTrue(v) {
				n++
			}
		}
		return float64(min(5, n+1))
	case models.CMSDrupal:
		if t == models.HostingShared || t == models.HostingVPS {
			return 4
		}
		return 3
	case models.CMSStatic:
		if t == models.HostingJamstack {
			return 5
		}
		if models.IsTrue(row.CDNIncluded) {
			return 4
		}
		return 3
	default:
		return 0
	}
}

// BudgetBounds returns the floor and ceiling of a budget bracket in USD.
// The 100+ bracket has no ceiling.
func BudgetBounds(b models.BudgetRange) (lo, hi float64, ok bool) {
	switch b {
	case models.Budget0To10:
		return 0, 10, true
	case models.Budget10To30:
		return 10, 30, true
	case models.Budget30To100:
		return 30, 100, true
	case models.Budget100Plus:
		return 100, math.Inf(1), true
	default:
		return 0, 0, false
	}
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func (e *Engine) budget(row *models.TableRow, b models.BudgetRange, reasons *[]string) float64 {
	lo, hi, ok := BudgetBounds(b)
	if !ok || row.MonthlyPrice == nil {
		return 0
	}
	p := *row.MonthlyPrice

	var score float64
	switch {
	case p <= lo:
		score = e.w.BudgetUnder
		*reasons = append(*reasons, "Under budget at $"+formatPrice(p)+"/mo")
	case p <= hi:
		score = e.w.BudgetFitBase + e.w.BudgetFitBonus*(1-(p-lo)/(hi-lo))
		*reasons = append(*reasons, "Fits budget at $"+formatPrice(p)+"/mo")
	case p <= hi*e.w.BudgetStretchFactor:
		score = e.w.BudgetStretch
	}
	return clampScore(score, e.w.BudgetCap)
}

func hasFeature(row *models.TableRow, f models.MustHaveFeature) bool {
	switch f {
	case models.FeatureFreeDomain:
		return models.IsTrue(row.FreeDomain)
	case models.FeatureFreeSSL:
		return models.IsTrue(row.FreeSSL)
	case models.FeatureSSHAccess:
		return models.IsTrue(row.SSHAccess)
	case models.FeatureStaging:
		return models.IsTrue(row.StagingEnvironment)
	case models.FeatureManagedUpdates:
		return models.IsTrue(row.WordPressAutoUpdates)
	case models.FeatureCDN:
		return models.IsTrue(row.CDNIncluded)
	case models.FeatureEmail:
		return models.IsTrue(row.EmailAccountsIncluded)
	case models.FeatureBackups:
		return row.BackupFrequency != nil && strings.Contains(strings.ToLower(*row.BackupFrequency), "daily")
	default:
		return false
	}
}

func (e *Engine) features(row *models.TableRow, wanted []models.MustHaveFeature, reasons *[]string) float64 {
	if len(wanted) == 0 {
		return e.w.FeaturesCap
	}

	var matched []string
	for _, f := range wanted {
		if hasFeature(row, f) {
			matched = append(matched, FeatureLabel(f))
		}
	}

	switch {
	case len(matched) == len(wanted):
		*reasons = append(*reasons, "All required features included")
	case len(matched) > 0:
		*reasons = append(*reasons, "Has "+strings.Join(matched[:min(2, len(matched))], ", "))
	}

	return clampScore(math.Round(e.w.FeaturesCap*float64(len(matched))/float64(len(wanted))), e.w.FeaturesCap)
}

var priorityReasons = map[models.Priority]string{
	models.PriorityPrice:       "Excellent value",
	models.PriorityPerformance: "Top performance",
	models.PrioritySupport:     "Great support",
	models.PriorityFeatures:    "Feature-rich",
}

func priorityRating(row *models.TableRow, p models.Priority) float64 {
	switch p {
	case models.PriorityPrice:
		return models.ValueOr(row.ValueForMoney, 0)
	case models.PriorityPerformance:
		return models.ValueOr(row.PerformanceRating, 0)
	case models.PrioritySupport:
		return models.ValueOr(row.SupportQuality, 0)
	case models.PriorityFeatures:
		return models.ValueOr(row.FeaturesRating, 0)
	default:
		return 0
	}
}

func (e *Engine) priority(row *models.TableRow, p models.Priority, reasons *[]string) float64 {
	if p == "" {
		return 0
	}
	rating := priorityRating(row, p)
	if reason, ok := priorityReasons[p]; ok && rating >= e.w.ReasonThreshold {
		*reasons = append(*reasons, reason)
	}
	return clampScore(rating*e.w.Priority, e.w.PriorityCap)
}
