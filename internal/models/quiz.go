// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package models

// BuildingType is what the visitor is building.
type BuildingType string

const (
	BuildBlog      BuildingType = "blog"
	BuildEcommerce BuildingType = "ecommerce"
	BuildPortfolio BuildingType = "portfolio"
	BuildSaaS      BuildingType = "saas"
	BuildAgency    BuildingType = "agency"
)

// TechnicalLevel is the visitor's self-assessed skill.
type TechnicalLevel string

const (
	LevelBeginner  TechnicalLevel = "beginner"
	LevelDeveloper TechnicalLevel = "developer"
	LevelAgency    TechnicalLevel = "agency"
)

// TrafficLevel is the expected monthly traffic bracket.
type TrafficLevel string

const (
	TrafficStarting TrafficLevel = "starting"
	Traffic10k      TrafficLevel = "10k"
	Traffic100k     TrafficLevel = "100k"
	Traffic1m       TrafficLevel = "1m"
)

// BudgetRange is a monthly budget bracket in USD.
type BudgetRange string

const (
	Budget0To10   BudgetRange = "0-10"
	Budget10To30  BudgetRange = "10-30"
	Budget30To100 BudgetRange = "30-100"
	Budget100Plus BudgetRange = "100+"
)

// MustHaveFeature is a feature the visitor requires.
type MustHaveFeature string

const (
	FeatureFreeDomain     MustHaveFeature = "free-domain"
	FeatureFreeSSL        MustHaveFeature = "free-ssl"
	FeatureSSHAccess      MustHaveFeature = "ssh-access"
	FeatureStaging        MustHaveFeature = "staging"
	FeatureManagedUpdates MustHaveFeature = "managed-updates"
	FeatureCDN            MustHaveFeature = "cdn"
	FeatureEmail          MustHaveFeature = "email"
	FeatureBackups        MustHaveFeature = "backups"
)

// CMSPreference is the platform the visitor plans to run.
type CMSPreference string

const (
	CMSWordPress CMSPreference = "wordpress"
	CMSCustom    CMSPreference = "custom"
	CMSDrupal    CMSPreference = "drupal"
	CMSStatic    CMSPreference = "static"
)

// Priority is what the visitor values most.
type Priority string

const (
	PriorityPrice       Priority = "price"
	PriorityPerformance Priority = "performance"
	PrioritySupport     Priority = "support"
	PriorityFeatures    Priority = "features"
)

// QuizAnswers is one completed (or partially completed) quiz. Empty string
// values mean the question was skipped.
type QuizAnswers struct {
	BuildingType     BuildingType      `json:"buildingType,omitempty"`
	TechnicalLevel   TechnicalLevel    `json:"technicalLevel,omitempty"`
	ExpectedTraffic  TrafficLevel      `json:"expectedTraffic,omitempty"`
	Budget           BudgetRange       `json:"budget,omitempty"`
	MustHaveFeatures []MustHaveFeature `json:"mustHaveFeatures"`
	CMSPreference    CMSPreference     `json:"cmsPreference,omitempty"`
	Priority         Priority          `json:"priority,omitempty"`
}

// ScoreBreakdown holds the unrounded component scores of a HostScore.
type ScoreBreakdown struct {
	Suitability float64 `json:"suitability"` // 0-40
	Budget      float64 `json:"budget"`      // 0-25
	Features    float64 `json:"features"`    // 0-20
	Priority    float64 `json:"priority"`    // 0-15
}

// HostScore is a host's quiz match.
type HostScore struct {
	Host         TableRow       `json:"host"`
	Score        int            `json:"score"` // 0-100
	MatchReasons []string       `json:"matchReasons"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
}
