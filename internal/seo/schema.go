// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package seo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/hostduel/internal/catalog"
	"github.com/tomtom215/hostduel/internal/models"
)

const (
	schemaContext = "https://schema.org"
	inStock       = "https://schema.org/InStock"
	currencyUSD   = "USD"
)

// AggregateRating is a schema.org AggregateRating.
type AggregateRating struct {
	Type        string   `json:"@type"`
	RatingValue float64  `json:"ratingValue"`
	BestRating  float64  `json:"bestRating"`
	WorstRating float64  `json:"worstRating"`
	ReviewCount *float64 `json:"reviewCount,omitempty"`
}

// Offer is a schema.org Offer.
type Offer struct {
	Type            string  `json:"@type"`
	Price           float64 `json:"price"`
	PriceCurrency   string  `json:"priceCurrency"`
	Availability    string  `json:"availability"`
	PriceValidUntil string  `json:"priceValidUntil,omitempty"`
}

// Brand is a schema.org Brand.
type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Product is a schema.org Product. Context is empty when the product is
// nested inside another document.
type Product struct {
	Context         string           `json:"@context,omitempty"`
	Type            string           `json:"@type"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	URL             string           `json:"url,omitempty"`
	Image           string           `json:"image,omitempty"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
	Offers          *Offer           `json:"offers,omitempty"`
	Brand           *Brand           `json:"brand,omitempty"`
}

// ProductSchema describes one provider. The description prefers the
// record's unique selling point over its "best for" note.
func ProductSchema(baseURL string, row *models.TableRow, c *models.Company, now time.Time) Product {
	base := BaseURL(baseURL)
	p := Product{
		Context: schemaContext,
		Type:    "Product",
		Name:    row.Name,
		Image:   base + "/logo.png",
		Brand:   &Brand{Type: "Brand", Name: row.Name},
	}
	if row.WebsiteURL != nil {
		p.URL = *row.WebsiteURL
	}
	if c != nil {
		p.Description = firstNonEmpty(c.ComparisonData.UniqueSellingPoint, c.Editorial.BestFor)
	}

	if rating := row.OverallRating; rating != nil && *rating != 0 {
		reviews := models.ValueOr(row.TrustpilotReviewsCount, 0)
		if reviews == 0 {
			reviews = 1
		}
		p.AggregateRating = &AggregateRating{
			Type:        "AggregateRating",
			RatingValue: *rating,
			BestRating:  5,
			WorstRating: 1,
			ReviewCount: &reviews,
		}
	}
	if price := row.MonthlyPrice; price != nil && *price != 0 {
		p.Offers = &Offer{
			Type:            "Offer",
			Price:           *price,
			PriceCurrency:   currencyUSD,
			Availability:    inStock,
			PriceValidUntil: strconv.Itoa(now.Year()+1) + "-12-31",
		}
	}
	return p
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

// Answer is a schema.org Answer.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Question is a schema.org Question.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// FAQPage is a schema.org FAQPage.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// FAQItem is a question with its answer, as shown on a host page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQItems returns the answered questions for a host in fixed order.
func FAQItems(name string, faq *models.FAQContent) []FAQItem {
	if faq == nil {
		return nil
	}
	entries := []struct {
		question string
		answer   *string
	}{
		{"Is %s a good web host?", faq.IsThisHostGood},
		{"Who owns %s?", faq.WhoOwnsThisHost},
		{"How much does %s cost?", faq.HowMuchDoesItCost},
		{"Is %s beginner-friendly?", faq.IsItBeginnerFriendly},
		{"Does %s include email hosting?", faq.DoesItIncludeEmail},
		{"Can I host WordPress on %s?", faq.CanIHostWordPress},
		{"What is %s's uptime guarantee?", faq.WhatsTheUptime},
		{"Can I cancel %s anytime?", faq.CanICancelAnytime},
	}

	var items []FAQItem
	for _, e := range entries {
		if e.answer == nil || strings.TrimSpace(*e.answer) == "" {
			continue
		}
		items = append(items, FAQItem{Question: fmt.Sprintf(e.question, name), Answer: *e.answer})
	}
	return items
}

// FAQSchema returns nil when the host has no answered questions.
func FAQSchema(name string, faq *models.FAQContent) *FAQPage {
	items := FAQItems(name, faq)
	if len(items) == 0 {
		return nil
	}
	page := &FAQPage{Context: schemaContext, Type: "FAQPage", MainEntity: make([]Question, len(items))}
	for i, item := range items {
		page.MainEntity[i] = Question{
			Type:           "Question",
			Name:           item.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: item.Answer},
		}
	}
	return page
}

// ListItem is a schema.org ListItem used by breadcrumbs and item lists.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     any    `json:"item,omitempty"`
	URL      string `json:"url,omitempty"`
}

// BreadcrumbList is a schema.org BreadcrumbList.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

func breadcrumbs(base string, trail ...[2]string) BreadcrumbList {
	list := BreadcrumbList{Context: schemaContext, Type: "BreadcrumbList"}
	list.ItemListElement = append(list.ItemListElement, ListItem{Type: "ListItem", Position: 1, Name: "Home", Item: base})
	for i, step := range trail {
		list.ItemListElement = append(list.ItemListElement, ListItem{
			Type:     "ListItem",
			Position: i + 2,
			Name:     step[0],
			Item:     step[1],
		})
	}
	return list
}

// BreadcrumbSchema is the trail Home > Compare Hosts > name for a host page.
func BreadcrumbSchema(baseURL, id, name string) BreadcrumbList {
	base := BaseURL(baseURL)
	return breadcrumbs(base,
		[2]string{"Compare Hosts", base + "/#compare"},
		[2]string{name, base + "/hosting/" + id},
	)
}

// BestForBreadcrumbSchema is the trail Home > Best For > use case name.
func BestForBreadcrumbSchema(baseURL string, uc catalog.UseCaseInfo) BreadcrumbList {
	base := BaseURL(baseURL)
	return breadcrumbs(base,
		[2]string{"Best For", base + "/#best-for"},
		[2]string{uc.Name, base + "/best-for/" + string(uc.ID)},
	)
}

// ItemList is a schema.org ItemList of ranked products.
type ItemList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	NumberOfItems   int        `json:"numberOfItems"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ItemListSchema describes a ranked "best for" list. Nested products carry
// no review count and no price expiry.
func ItemListSchema(baseURL, title, metaDescription, useCaseName string, hosts []catalog.UseCaseScore) ItemList {
	base := BaseURL(baseURL)
	list := ItemList{
		Context:         schemaContext,
		Type:            "ItemList",
		Name:            title,
		Description:     metaDescription,
		NumberOfItems:   len(hosts),
		ItemListElement: make([]ListItem, len(hosts)),
	}

	for i := range hosts {
		row := &hosts[i].Row
		url := base + "/hosting/" + row.ID
		product := Product{
			Type: "Product",
			Name: row.Name,
			Description: fmt.Sprintf("%s - rated %s/5 for %s",
				row.Name, strconv.FormatFloat(hosts[i].Score, 'f', -1, 64), strings.ToLower(useCaseName)),
			URL:   url,
			Image: base + "/logo.png",
		}
		if rating := row.OverallRating; rating != nil && *rating != 0 {
			product.AggregateRating = &AggregateRating{
				Type:        "AggregateRating",
				RatingValue: *rating,
				BestRating:  5,
				WorstRating: 1,
			}
		}
		if price := row.MonthlyPrice; price != nil && *price != 0 {
			product.Offers = &Offer{
				Type:          "Offer",
				Price:         *price,
				PriceCurrency: currencyUSD,
				Availability:  inStock,
			}
		}
		list.ItemListElement[i] = ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     row.Name,
			URL:      url,
			Item:     product,
		}
	}
	return list
}
