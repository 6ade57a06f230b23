// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package quiz

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/tomtom215/hostduel/internal/models"
)

func TestParamsRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []models.QuizAnswers{
		{MustHaveFeatures: []models.MustHaveFeature{}},
		{
			BuildingType:     models.BuildSaaS,
			TechnicalLevel:   models.LevelDeveloper,
			ExpectedTraffic:  models.Traffic1m,
			Budget:           models.Budget100Plus,
			MustHaveFeatures: []models.MustHaveFeature{models.FeatureSSHAccess, models.FeatureBackups},
			CMSPreference:    models.CMSCustom,
			Priority:         models.PriorityPerformance,
		},
		{
			Budget:           models.Budget0To10,
			MustHaveFeatures: []models.MustHaveFeature{models.FeatureFreeDomain},
		},
	}

	for _, want := range tests {
		encoded := QueryString(want)
		v, err := url.ParseQuery(encoded)
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", encoded, err)
		}
		if got := DecodeParams(v); !reflect.DeepEqual(got, want) {
			t.Errorf("round trip via %q = %+v, want %+v", encoded, got, want)
		}
	}
}

func TestEncodeParamsOmitsSkipped(t *testing.T) {
	t.Parallel()

	v := EncodeParams(models.QuizAnswers{
		Budget:           models.Budget10To30,
		MustHaveFeatures: []models.MustHaveFeature{models.FeatureCDN, models.FeatureEmail},
	})
	want := url.Values{"budget": {"10-30"}, "features": {"cdn,email"}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("EncodeParams() = %v, want %v", v, want)
	}
}

func TestDecodeParamsDropsInvalid(t *testing.T) {
	t.Parallel()

	v := url.Values{
		"build":    {"spaceship"},
		"level":    {"beginner"},
		"traffic":  {"10M"},
		"budget":   {"10-30"},
		"features": {"cdn,teleport,cdn,,free-ssl", "cdn,email"},
		"cms":      {"WordPress"},
		"priority": {"support"},
	}

	got := DecodeParams(v)
	want := models.QuizAnswers{
		TechnicalLevel:   models.LevelBeginner,
		Budget:           models.Budget10To30,
		MustHaveFeatures: []models.MustHaveFeature{models.FeatureCDN, models.FeatureFreeSSL, models.FeatureEmail},
		Priority:         models.PrioritySupport,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeParams() = %+v, want %+v", got, want)
	}
}

func TestQuestionsTable(t *testing.T) {
	t.Parallel()

	if len(Questions) != 7 {
		t.Fatalf("len(Questions) = %d, want 7", len(Questions))
	}
	for _, q := range Questions {
		if len(q.Options) == 0 {
			t.Errorf("question %s has no options", q.ID)
		}
		if q.MultiSelect != (q.ID == QuestionMustHaveFeatures) {
			t.Errorf("question %s MultiSelect = %v", q.ID, q.MultiSelect)
		}
	}
	if got := FeatureLabel(models.FeatureBackups); got != "Daily Backups" {
		t.Errorf("FeatureLabel(backups) = %q", got)
	}
	if got := FeatureLabel("nope"); got != "nope" {
		t.Errorf("FeatureLabel(unknown) = %q", got)
	}
}
