// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package catalog

import (
	"errors"
	"sort"

	"github.com/tomtom215/hostduel/internal/models"
)

// ErrUnknownUseCase is returned for a use case outside UseCaseIDs.
var ErrUnknownUseCase = errors.New("unknown use case")

// DefaultTopLimit is the number of hosts TopByUseCase returns by default.
const DefaultTopLimit = 5

// UseCase identifies a "best for" audience.
type UseCase string

const (
	UseCaseBlogger    UseCase = "blogger"
	UseCaseEcommerce  UseCase = "ecommerce"
	UseCaseAgency     UseCase = "agency"
	UseCaseDeveloper  UseCase = "developer"
	UseCaseBeginner   UseCase = "beginner"
	UseCaseEnterprise UseCase = "enterprise"
)

// UseCaseIDs lists the use cases in display order.
var UseCaseIDs = []UseCase{
	UseCaseBlogger,
	UseCaseEcommerce,
	UseCaseAgency,
	UseCaseDeveloper,
	UseCaseBeginner,
	UseCaseEnterprise,
}

// UseCaseInfo is the copy shown on a "best for" page.
type UseCaseInfo struct {
	ID              UseCase  `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}

// UseCases holds the page copy for each use case.
var UseCases = map[UseCase]UseCaseInfo{
	UseCaseBlogger: {
		ID:              UseCaseBlogger,
		Name:            "Bloggers",
		Title:           "Best Web Hosting for Bloggers",
		Description:     "These hosting providers excel at supporting blogs and content-driven websites. They offer WordPress optimization, fast loading times, and easy-to-use interfaces perfect for content creators.",
		MetaDescription: "Compare the best web hosting providers for bloggers in 2025. Find WordPress-optimized hosts with fast speeds, easy setup, and excellent support for content creators.",
		Keywords:        []string{"best hosting for bloggers", "blogger hosting", "WordPress hosting", "blog hosting", "content creator hosting", "blogging platform"},
	},
	UseCaseEcommerce: {
		ID:              UseCaseEcommerce,
		Name:            "eCommerce",
		Title:           "Best Web Hosting for eCommerce",
		Description:     "These hosting providers are optimized for online stores. They offer WooCommerce support, SSL certificates, fast checkout speeds, and the reliability your store needs.",
		MetaDescription: "Compare the best web hosting providers for eCommerce and online stores in 2025. Find WooCommerce-optimized hosts with fast speeds, security, and reliability.",
		Keywords:        []string{"best ecommerce hosting", "online store hosting", "WooCommerce hosting", "ecommerce web hosting", "shop hosting", "retail hosting"},
	},
	UseCaseAgency: {
		ID:              UseCaseAgency,
		Name:            "Agencies",
		Title:           "Best Web Hosting for Agencies",
		Description:     "These hosting providers make it easy to manage multiple client websites. They offer reseller features, white-label options, and the tools agencies need to scale.",
		MetaDescription: "Compare the best web hosting providers for agencies in 2025. Find hosts with reseller features, client management tools, and scalable infrastructure.",
		Keywords:        []string{"best hosting for agencies", "agency hosting", "reseller hosting", "white label hosting", "client hosting", "web agency hosting"},
	},
	UseCaseDeveloper: {
		ID:              UseCaseDeveloper,
		Name:            "Developers",
		Title:           "Best Web Hosting for Developers",
		Description:     "These hosting providers offer the tools developers need: SSH access, Git deployment, staging environments, CLI access, and support for modern frameworks.",
		MetaDescription: "Compare the best web hosting providers for developers in 2025. Find hosts with SSH, Git, staging, CLI access, and support for Node.js, Python, and more.",
		Keywords:        []string{"best hosting for developers", "developer hosting", "SSH hosting", "Git deployment hosting", "Node.js hosting", "Python hosting"},
	},
	UseCaseBeginner: {
		ID:              UseCaseBeginner,
		Name:            "Beginners",
		Title:           "Best Web Hosting for Beginners",
		Description:     "These hosting providers make getting started easy. They offer intuitive control panels, one-click installers, helpful tutorials, and responsive customer support.",
		MetaDescription: "Compare the best web hosting providers for beginners in 2025. Find easy-to-use hosts with great support, one-click installers, and beginner-friendly features.",
		Keywords:        []string{"best hosting for beginners", "beginner web hosting", "easy hosting", "simple hosting", "starter hosting", "first website hosting"},
	},
	UseCaseEnterprise: {
		ID:              UseCaseEnterprise,
		Name:            "Enterprise",
		Title:           "Best Web Hosting for Enterprise",
		Description:     "These hosting providers meet enterprise requirements: compliance certifications, SLAs, dedicated support, advanced security, and the scalability large organizations need.",
		MetaDescription: "Compare the best web hosting providers for enterprise in 2025. Find hosts with compliance certifications, SLAs, dedicated support, and enterprise-grade security.",
		Keywords:        []string{"best enterprise hosting", "enterprise web hosting", "business hosting", "corporate hosting", "compliant hosting", "SLA hosting"},
	},
}

// LookupUseCase returns the page copy for id.
func LookupUseCase(id string) (UseCaseInfo, error) {
	info, ok := UseCases[UseCase(id)]
	if !ok {
		return UseCaseInfo{}, ErrUnknownUseCase
	}
	return info, nil
}

// Suitability returns the row's 1-5 suitability score for the use case.
func Suitability(row *models.TableRow, uc UseCase) *float64 {
	switch uc {
	case UseCaseBlogger:
		return row.SuitabilityBlogger
	case UseCaseEcommerce:
		return row.SuitabilityEcommerce
	case UseCaseAgency:
		return row.SuitabilityAgency
	case UseCaseDeveloper:
		return row.SuitabilityDeveloper
	case UseCaseBeginner:
		return row.SuitabilityBeginner
	case UseCaseEnterprise:
		return row.SuitabilityEnterprise
	default:
		return nil
	}
}

// UseCaseScore is a row ranked for a use case.
type UseCaseScore struct {
	Row   models.TableRow `json:"host"`
	Score float64         `json:"suitabilityScore"`
}

// TopByUseCase ranks rows by suitability for uc, dropping rows with no
// positive score. Ties keep input order.
func TopByUseCase(rows []models.TableRow, uc UseCase, limit int) []UseCaseScore {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	scored := make([]UseCaseScore, 0, len(rows))
	for i := range rows {
		score := models.ValueOr(Suitability(&rows[i], uc), 0)
		if score > 0 {
			scored = append(scored, UseCaseScore{Row: rows[i], Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
