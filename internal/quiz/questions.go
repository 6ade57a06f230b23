// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package quiz

import "github.com/tomtom215/hostduel/internal/models"

// Option is one selectable answer.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Question is one quiz step.
type Question struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Subtitle    string   `json:"subtitle,omitempty"`
	MultiSelect bool     `json:"multiSelect"`
	Options     []Option `json:"options"`
}

// Question ids.
const (
	QuestionBuildingType     = "buildingType"
	QuestionTechnicalLevel   = "technicalLevel"
	QuestionExpectedTraffic  = "expectedTraffic"
	QuestionBudget           = "budget"
	QuestionMustHaveFeatures = "mustHaveFeatures"
	QuestionCMSPreference    = "cmsPreference"
	QuestionPriority         = "priority"
)

// Questions is the quiz in presentation order. Option values are the only
// accepted answers for each question.
var Questions = []Question{
	{
		ID:       QuestionBuildingType,
		Question: "What are you building?",
		Subtitle: "Select the primary purpose of your website",
		Options: []Option{
			{string(models.BuildBlog), "Blog or Content Site", "Personal blog, news site, or content-focused website"},
			{string(models.BuildEcommerce), "Online Store", "Sell products or services with shopping cart"},
			{string(models.BuildPortfolio), "Portfolio or Landing Page", "Showcase work, simple business site, or landing page"},
			{string(models.BuildSaaS), "Web Application / SaaS", "Custom web app, SaaS product, or API backend"},
			{string(models.BuildAgency), "Multiple Client Sites", "Agency managing websites for multiple clients"},
		},
	},
	{
		ID:       QuestionTechnicalLevel,
		Question: "What's your technical level?",
		Subtitle: "This helps us find the right balance of control vs simplicity",
		Options: []Option{
			{string(models.LevelBeginner), "Beginner", "I'm new to web hosting and want things simple"},
			{string(models.LevelDeveloper), "Developer", "Comfortable with code, SSH, and server configuration"},
			{string(models.LevelAgency), "Agency / Team", "Managing multiple sites with team collaboration"},
		},
	},
	{
		ID:       QuestionExpectedTraffic,
		Question: "How much traffic do you expect?",
		Subtitle: "Monthly visitors to your website",
		Options: []Option{
			{string(models.TrafficStarting), "Just Starting", "New site, building audience (under 1,000/month)"},
			{string(models.Traffic10k), "Up to 10,000/month", "Growing site with steady traffic"},
			{string(models.Traffic100k), "Up to 100,000/month", "Established site with significant traffic"},
			{string(models.Traffic1m), "100,000+ / month", "High-traffic site requiring robust infrastructure"},
		},
	},
	{
		ID:       QuestionBudget,
		Question: "What's your monthly budget?",
		Subtitle: "We'll find the best value within your range",
		Options: []Option{
			{string(models.Budget0To10), "$0 - $10/month", "Budget-friendly shared hosting"},
			{string(models.Budget10To30), "$10 - $30/month", "Better performance and features"},
			{string(models.Budget30To100), "$30 - $100/month", "Managed hosting or VPS"},
			{string(models.Budget100Plus), "$100+/month", "Enterprise or high-performance hosting"},
		},
	},
	{
		ID:          QuestionMustHaveFeatures,
		Question:    "Which features are must-haves?",
		Subtitle:    "Select all that apply",
		MultiSelect: true,
		Options: []Option{
			{string(models.FeatureFreeDomain), "Free Domain", "Domain name included with hosting"},
			{string(models.FeatureFreeSSL), "Free SSL", "HTTPS security certificate included"},
			{string(models.FeatureSSHAccess), "SSH Access", "Command line access to server"},
			{string(models.FeatureStaging), "Staging Environment", "Test changes before going live"},
			{string(models.FeatureManagedUpdates), "Managed Updates", "Automatic WordPress/CMS updates"},
			{string(models.FeatureCDN), "CDN Included", "Content delivery network for speed"},
			{string(models.FeatureEmail), "Email Hosting", "Business email with your domain"},
			{string(models.FeatureBackups), "Daily Backups", "Automatic daily backup protection"},
		},
	},
	{
		ID:       QuestionCMSPreference,
		Question: "What CMS or platform will you use?",
		Subtitle: "This helps us find optimized hosting",
		Options: []Option{
			{string(models.CMSWordPress), "WordPress", "The most popular CMS for blogs and websites"},
			{string(models.CMSCustom), "Custom / No CMS", "Node.js, Python, Ruby, or custom code"},
			{string(models.CMSDrupal), "Drupal or Joomla", "Enterprise CMS platforms"},
			{string(models.CMSStatic), "Static Site", "Jekyll, Hugo, Next.js static export, etc."},
		},
	},
	{
		ID:       QuestionPriority,
		Question: "What's most important to you?",
		Subtitle: "We'll weight our recommendations accordingly",
		Options: []Option{
			{string(models.PriorityPrice), "Best Price", "Maximum value for money"},
			{string(models.PriorityPerformance), "Speed & Performance", "Fastest loading times and uptime"},
			{string(models.PrioritySupport), "Great Support", "24/7 responsive customer service"},
			{string(models.PriorityFeatures), "Most Features", "Maximum functionality and tools"},
		},
	},
}

// validAnswer reports whether value is an option of the question.
func validAnswer(questionID, value string) bool {
	for i := range Questions {
		if Questions[i].ID != questionID {
			continue
		}
		for _, o := range Questions[i].Options {
			if o.Value == value {
				return true
			}
		}
		return false
	}
	return false
}

// FeatureLabel returns the display label of a must-have feature, or the raw
// value when it is unknown.
func FeatureLabel(f models.MustHaveFeature) string {
	for i := range Questions {
		if Questions[i].ID != QuestionMustHaveFeatures {
			continue
		}
		for _, o := range Questions[i].Options {
			if o.Value == string(f) {
				return o.Label
			}
		}
	}
	return string(f)
}
