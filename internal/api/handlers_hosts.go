// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/hostduel/internal/catalog"
	"github.com/tomtom215/hostduel/internal/clicks"
	"github.com/tomtom215/hostduel/internal/compare"
	"github.com/tomtom215/hostduel/internal/filter"
	"github.com/tomtom215/hostduel/internal/models"
	"github.com/tomtom215/hostduel/internal/seo"
)

// HostDetail is the payload of GET /api/v1/hosts/{id}.
type HostDetail struct {
	Host           models.TableRow      `json:"host"`
	Record         *models.Company      `json:"record"`
	Price          catalog.PriceDisplay `json:"price"`
	Storage        string               `json:"storage"`
	WeightedRating *float64             `json:"weightedRating"`
	Alternatives   []models.TableRow    `json:"alternatives"`
	Comparisons    []compare.Pair       `json:"comparisons"`
	StructuredData HostStructuredData   `json:"structuredData"`
}

// HostStructuredData holds the JSON-LD blocks of a host page.
type HostStructuredData struct {
	Product    seo.Product        `json:"product"`
	FAQ        *seo.FAQPage       `json:"faq,omitempty"`
	Breadcrumb seo.BreadcrumbList `json:"breadcrumb"`
}

// CategoryPage is the payload of GET /api/v1/categories/{type}.
type CategoryPage struct {
	Type       models.HostingType `json:"type"`
	Label      string             `json:"label"`
	PriceRange string             `json:"priceRange"`
	Hosts      []models.TableRow  `json:"hosts"`
}

// BestForPage is the payload of GET /api/v1/best-for/{useCase}.
type BestForPage struct {
	UseCase        catalog.UseCaseInfo    `json:"useCase"`
	Hosts          []catalog.UseCaseScore `json:"hosts"`
	StructuredData BestForStructuredData  `json:"structuredData"`
}

// BestForStructuredData holds the JSON-LD blocks of a best-for page.
type BestForStructuredData struct {
	ItemList   seo.ItemList       `json:"itemList"`
	Breadcrumb seo.BreadcrumbList `json:"breadcrumb"`
}

// Hosts lists rows after filtering, sorting and paging.
//
// Query parameters:
//   - q: free-text search over names, types and feature keywords
//   - type, feature, suitability: repeated or comma-separated toggles
//   - priceMin, priceMax, minRating, minUptime: numeric bounds
//   - sort, dir: column and direction (default overallRating desc)
//   - limit, offset: paging; limit 0 returns every match
func (h *Handler) Hosts(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := newQueryReader(r.URL.Query())

	req := HostsRequest{
		Search:      q.String("q"),
		Types:       q.Strings("type"),
		PriceMin:    q.Float("priceMin", filter.DefaultPriceMin),
		PriceMax:    q.Float("priceMax", filter.DefaultPriceMax),
		MinRating:   q.Float("minRating", 0),
		MinUptime:   q.Float("minUptime", 0),
		Features:    q.Strings("feature"),
		Suitability: q.Strings("suitability"),
		Sort:        q.String("sort"),
		Dir:         q.String("dir"),
		Limit:       q.Int("limit", 0),
		Offset:      q.Int("offset", 0),
	}
	if apiErr := q.Err(); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	rows := filter.Apply(h.snapshot.Rows(), req.filterState())
	rows = filter.Sort(rows, filter.SortState{
		Field:     filter.ParseSortField(req.Sort),
		Direction: filter.ParseSortDirection(req.Dir),
	})

	start, end, page := paginate(len(rows), req.Offset, req.Limit)
	rw.SuccessWithPagination(rows[start:end], page)
}

func (req *HostsRequest) filterState() filter.FilterState {
	state := filter.DefaultFilterState()
	state.Search = req.Search
	state.PriceRange = filter.PriceRange{Min: req.PriceMin, Max: req.PriceMax}
	state.MinRating = req.MinRating
	state.MinUptime = req.MinUptime
	for _, t := range req.Types {
		state.HostingTypes = append(state.HostingTypes, models.HostingType(t))
	}
	for _, f := range req.Features {
		state.Features.SetFeature(f)
	}
	for _, s := range req.Suitability {
		state.Suitability.SetSuitability(s)
	}
	return state
}

// Host returns one provider with its display values, alternatives and
// structured data, and counts a details view.
func (h *Handler) Host(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := HostRequest{ID: chi.URLParam(r, "id")}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.NotFound("host not found")
		return
	}

	row, ok := h.snapshot.RowByID(req.ID)
	if !ok {
		writeServiceError(rw, fmt.Errorf("%w: host %s", ErrNotFound, req.ID))
		return
	}
	record, _ := h.snapshot.GetByID(req.ID)

	detail := HostDetail{
		Host:           row,
		Record:         record,
		Price:          catalog.NewPriceDisplay(row.MonthlyPrice, row.RenewalPrice),
		Storage:        catalog.FormatStorageValue(row.StorageGB),
		WeightedRating: catalog.WeightedRating(&row),
		Alternatives:   catalog.Alternatives(h.snapshot.Rows(), row, catalog.DefaultAlternatives),
		Comparisons:    compare.Related(h.compare.Pairs(), row.ID, "", compare.DefaultRelated),
		StructuredData: HostStructuredData{
			Product:    seo.ProductSchema(h.baseURL, &row, record, h.now()),
			Breadcrumb: seo.BreadcrumbSchema(h.baseURL, row.ID, row.Name),
		},
	}
	if detail.Comparisons == nil {
		detail.Comparisons = []compare.Pair{}
	}
	if record != nil {
		detail.StructuredData.FAQ = seo.FAQSchema(row.Name, &record.FAQContent)
	}

	h.track(r.Context(), clicks.DetailsEvent(row.ID))
	rw.Success(detail)
}

// HostTypes counts listed providers per hosting type.
func (h *Handler) HostTypes(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(catalog.TypeCounts(h.snapshot.Rows()))
}

// Category lists the providers of one hosting type, best rated first.
func (h *Handler) Category(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := CategoryRequest{Type: chi.URLParam(r, "type")}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.NotFound("unknown hosting type")
		return
	}

	t := models.HostingType(req.Type)
	hosts := catalog.ByType(h.snapshot.Rows(), t)
	rw.Success(CategoryPage{
		Type:       t,
		Label:      t.Label(),
		PriceRange: catalog.FormatPriceRange(catalog.PriceBand(hosts)),
		Hosts:      hosts,
	})
}

// BestFor ranks providers for a use case.
func (h *Handler) BestFor(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := BestForRequest{UseCase: chi.URLParam(r, "useCase")}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.NotFound("unknown use case")
		return
	}

	info, err := catalog.LookupUseCase(req.UseCase)
	if err != nil {
		writeServiceError(rw, err)
		return
	}

	hosts := catalog.TopByUseCase(h.snapshot.Rows(), info.ID, bestForLimit)
	rw.Success(BestForPage{
		UseCase: info,
		Hosts:   hosts,
		StructuredData: BestForStructuredData{
			ItemList:   seo.ItemListSchema(h.baseURL, info.Title, info.MetaDescription, info.Name, hosts),
			Breadcrumb: seo.BestForBreadcrumbSchema(h.baseURL, info),
		},
	})
}
