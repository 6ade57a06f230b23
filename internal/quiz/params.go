// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package quiz

import (
	"net/url"
	"strings"

	"github.com/tomtom215/hostduel/internal/models"
)

// Query parameter names of a shareable results URL.
const (
	ParamBuild    = "build"
	ParamLevel    = "level"
	ParamTraffic  = "traffic"
	ParamBudget   = "budget"
	ParamFeatures = "features"
	ParamCMS      = "cms"
	ParamPriority = "priority"
)

// EncodeParams returns the query parameters for answers. Skipped questions
// are omitted and features are comma-joined.
func EncodeParams(a models.QuizAnswers) url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}

	set(ParamBuild, string(a.BuildingType))
	set(ParamLevel, string(a.TechnicalLevel))
	set(ParamTraffic, string(a.ExpectedTraffic))
	set(ParamBudget, string(a.Budget))
	if len(a.MustHaveFeatures) > 0 {
		features := make([]string, len(a.MustHaveFeatures))
		for i, f := range a.MustHaveFeatures {
			features[i] = string(f)
		}
		v.Set(ParamFeatures, strings.Join(features, ","))
	}
	set(ParamCMS, string(a.CMSPreference))
	set(ParamPriority, string(a.Priority))
	return v
}

// QueryString is EncodeParams rendered as a URL query.
func QueryString(a models.QuizAnswers) string {
	return EncodeParams(a).Encode()
}

// DecodeParams reads answers from query parameters. Values that are not
// options of their question are dropped, as are repeated features; the
// first occurrence of each feature keeps its position.
func DecodeParams(v url.Values) models.QuizAnswers {
	get := func(key, questionID string) string {
		value := strings.TrimSpace(v.Get(key))
		if !validAnswer(questionID, value) {
			return ""
		}
		return value
	}

	a := models.QuizAnswers{
		BuildingType:     models.BuildingType(get(ParamBuild, QuestionBuildingType)),
		TechnicalLevel:   models.TechnicalLevel(get(ParamLevel, QuestionTechnicalLevel)),
		ExpectedTraffic:  models.TrafficLevel(get(ParamTraffic, QuestionExpectedTraffic)),
		Budget:           models.BudgetRange(get(ParamBudget, QuestionBudget)),
		MustHaveFeatures: []models.MustHaveFeature{},
		CMSPreference:    models.CMSPreference(get(ParamCMS, QuestionCMSPreference)),
		Priority:         models.Priority(get(ParamPriority, QuestionPriority)),
	}

	seen := make(map[string]bool)
	for _, raw := range v[ParamFeatures] {
		for _, f := range strings.Split(raw, ",") {
			f = strings.TrimSpace(f)
			if seen[f] || !validAnswer(QuestionMustHaveFeatures, f) {
				continue
			}
			seen[f] = true
			a.MustHaveFeatures = append(a.MustHaveFeatures, models.MustHaveFeature(f))
		}
	}
	return a
}
