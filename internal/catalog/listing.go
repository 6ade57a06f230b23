// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package catalog

import (
	"sort"

	"github.com/tomtom215/hostduel/internal/models"
)

// DefaultAlternatives is the number of alternatives shown on a host page.
const DefaultAlternatives = 4

// TypeCount is the number of listed providers of one hosting type.
type TypeCount struct {
	Type  models.HostingType `json:"type"`
	Label string             `json:"label"`
	Count int                `json:"count"`
}

// HostingTypeCounts counts rows per hosting type. Rows without a type are
// not counted.
func HostingTypeCounts(rows []models.TableRow) map[models.HostingType]int {
	counts := make(map[models.HostingType]int)
	for i := range rows {
		if t := rows[i].HostingType; t != nil {
			counts[*t]++
		}
	}
	return counts
}

// TypeCounts returns the counts as a list in display order. Types with no
// rows are omitted; unknown types follow the known ones, sorted by value.
func TypeCounts(rows []models.TableRow) []TypeCount {
	counts := HostingTypeCounts(rows)
	out := make([]TypeCount, 0, len(counts))

	for _, t := range models.HostingTypes {
		if n, ok := counts[t]; ok {
			out = append(out, TypeCount{Type: t, Label: t.Label(), Count: n})
			delete(counts, t)
		}
	}

	extra := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		extra = append(extra, TypeCount{Type: t, Label: t.Label(), Count: n})
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Type < extra[j].Type })

	return append(out, extra...)
}

// ByType returns the rows of one hosting type, highest rated first.
// Missing ratings sort as 0.
func ByType(rows []models.TableRow, t models.HostingType) []models.TableRow {
	out := make([]models.TableRow, 0)
	for i := range rows {
		if rows[i].HostingType != nil && *rows[i].HostingType == t {
			out = append(out, rows[i])
		}
	}
	sortByRatingDesc(out)
	return out
}

// Alternatives returns up to limit other rows with the same hosting type as
// row, highest rated first. A row without a type has no alternatives.
func Alternatives(rows []models.TableRow, row models.TableRow, limit int) []models.TableRow {
	if row.HostingType == nil {
		return []models.TableRow{}
	}
	if limit <= 0 {
		limit = DefaultAlternatives
	}

	out := make([]models.TableRow, 0)
	for i := range rows {
		if rows[i].ID == row.ID || rows[i].HostingType == nil || *rows[i].HostingType != *row.HostingType {
			continue
		}
		out = append(out, rows[i])
	}
	sortByRatingDesc(out)

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PriceBand returns the lowest and highest monthly price among rows. Both are
// nil when no row has a price.
func PriceBand(rows []models.TableRow) (lo, hi *float64) {
	for i := range rows {
		p := rows[i].MonthlyPrice
		if p == nil {
			continue
		}
		if lo == nil || *p < *lo {
			lo = p
		}
		if hi == nil || *p > *hi {
			hi = p
		}
	}
	return lo, hi
}

func sortByRatingDesc(rows []models.TableRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return models.ValueOr(rows[i].OverallRating, 0) > models.ValueOr(rows[j].OverallRating, 0)
	})
}
