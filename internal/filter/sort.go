// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package filter

import (
	"sort"
	"strings"

	"github.com/tomtom215/hostduel/internal/models"
)

// SortField names a sortable table column.
type SortField string

const (
	SortName             SortField = "name"
	SortMonthlyPrice     SortField = "monthlyPrice"
	SortRenewalPrice     SortField = "renewalPrice"
	SortOverallRating    SortField = "overallRating"
	SortUptimeGuarantee  SortField = "uptimeGuarantee"
	SortTrustpilotRating SortField = "trustpilotRating"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortState selects the column and direction.
type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort orders by overall rating, best first.
var DefaultSort = SortState{Field: SortOverallRating, Direction: Desc}

var numericFields = map[SortField]func(*models.TableRow) *float64{
	SortMonthlyPrice:     func(r *models.TableRow) *float64 { return r.MonthlyPrice },
	SortRenewalPrice:     func(r *models.TableRow) *float64 { return r.RenewalPrice },
	SortOverallRating:    func(r *models.TableRow) *float64 { return r.OverallRating },
	SortUptimeGuarantee:  func(r *models.TableRow) *float64 { return r.UptimeGuarantee },
	SortTrustpilotRating: func(r *models.TableRow) *float64 { return r.TrustpilotRating },
}

// ParseSortField returns the named field, or DefaultSort.Field when s is
// not a sortable column.
func ParseSortField(s string) SortField {
	f := SortField(s)
	if f == SortName {
		return f
	}
	if _, ok := numericFields[f]; ok {
		return f
	}
	return DefaultSort.Field
}

// ParseSortDirection returns asc or desc, defaulting to DefaultSort.Direction.
func ParseSortDirection(s string) SortDirection {
	switch SortDirection(strings.ToLower(s)) {
	case Asc:
		return Asc
	case Desc:
		return Desc
	default:
		return DefaultSort.Direction
	}
}

// Sort returns a sorted copy of rows. Rows missing the sort value go last in
// either direction and equal rows keep their input order.
func Sort(rows []models.TableRow, state SortState) []models.TableRow {
	out := make([]models.TableRow, len(rows))
	copy(out, rows)

	field := ParseSortField(string(state.Field))
	desc := ParseSortDirection(string(state.Direction)) == Desc

	if field == SortName {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
			if desc {
				return a > b
			}
			return a < b
		})
		return out
	}

	value := numericFields[field]
	sort.SliceStable(out, func(i, j int) bool {
		a, b := value(&out[i]), value(&out[j])
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case desc:
			return *a > *b
		default:
			return *a < *b
		}
	})
	return out
}
