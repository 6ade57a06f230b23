// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

// Package validation checks API query structs with go-playground/validator.
//
// A single validator instance is built on first use. Error field names come
// from the `query` struct tag, so a failure on
//
//	Limit int `query:"limit" validate:"min=0,max=500"`
//
// reports "limit must be at most 500". Domain tags registered here:
//
//   - hostid: lowercase letters, digits and dashes
//   - hostingtype: one of models.HostingTypes
//   - usecase: one of catalog.UseCaseIDs
//   - cluster: one of compare.Clusters
//   - feature, suitability: a filter toggle name such as freeSsl or blogger
//
// Handlers convert a *RequestValidationError with ToAPIError and answer 400.
package validation
