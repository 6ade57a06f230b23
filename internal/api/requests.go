// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

// Request structs carry the query and path parameters of each endpoint with
// go-playground/validator tags. The `query` tag names the URL parameter so
// validation messages refer to what the client actually sent.
//
// Example usage:
//
//	req := HostsRequest{
//	    Limit:  q.Int("limit", 0),
//	    Offset: q.Int("offset", 0),
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    rw.ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}
package api

const (
	defaultQuizResults = 3
	bestForLimit       = 10
)

// HostsRequest is the query of GET /api/v1/hosts. Repeated parameters and
// comma-separated values are both accepted for the list fields. An unknown
// sort column or direction falls back to the default order.
type HostsRequest struct {
	Search      string   `query:"q" validate:"max=200"`
	Types       []string `query:"type" validate:"dive,hostingtype"`
	PriceMin    float64  `query:"priceMin" validate:"gte=0"`
	PriceMax    float64  `query:"priceMax" validate:"gte=0,gtefield=PriceMin"`
	MinRating   float64  `query:"minRating" validate:"gte=0,lte=5"`
	MinUptime   float64  `query:"minUptime" validate:"gte=0,lte=100"`
	Features    []string `query:"feature" validate:"dive,feature"`
	Suitability []string `query:"suitability" validate:"dive,suitability"`
	Sort        string   `query:"sort" validate:"max=64"`
	Dir         string   `query:"dir" validate:"max=8"`
	Limit       int      `query:"limit" validate:"min=0,max=500"`
	Offset      int      `query:"offset" validate:"min=0"`
}

// HostRequest identifies one provider by path.
type HostRequest struct {
	ID string `query:"id" validate:"required,hostid"`
}

// CategoryRequest names a hosting type by path.
type CategoryRequest struct {
	Type string `query:"type" validate:"required,hostingtype"`
}

// BestForRequest names a use case by path.
type BestForRequest struct {
	UseCase string `query:"useCase" validate:"required,usecase"`
}

// PairsRequest optionally narrows the pair list to one cluster.
type PairsRequest struct {
	Cluster string `query:"cluster" validate:"omitempty,cluster"`
}

// QuizResultsRequest bounds the number of recommendations. The answers
// themselves are decoded leniently: unknown values count as skipped.
type QuizResultsRequest struct {
	Limit int `query:"limit" validate:"min=1,max=10"`
}

// ClicksRequest filters counters by event-name prefix.
type ClicksRequest struct {
	Prefix string `query:"prefix" validate:"omitempty,max=128,printascii"`
}
