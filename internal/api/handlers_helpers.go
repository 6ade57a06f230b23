// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/hostduel/internal/validation"
)

// sanitizeLogValue escapes control characters so request data cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// validateRequest runs the struct's validator tags. It returns nil when the
// request is valid.
func validateRequest(v any) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	out := &APIError{Code: apiErr.Code, Message: apiErr.Message}
	if apiErr.Details != nil {
		out.Details = apiErr.Details
	}
	return out
}

// queryReader reads typed query parameters and remembers the first one that
// does not parse.
type queryReader struct {
	values url.Values
	bad    string
	badRaw string
}

func newQueryReader(values url.Values) *queryReader {
	return &queryReader{values: values}
}

func (q *queryReader) String(key string) string {
	return strings.TrimSpace(q.values.Get(key))
}

// Strings returns every value of key, splitting comma-separated values and
// dropping empty items.
func (q *queryReader) Strings(key string) []string {
	var out []string
	for _, v := range q.values[key] {
		out = append(out, parseCommaSeparated(v)...)
	}
	return out
}

func (q *queryReader) Int(key string, defaultValue int) int {
	raw := q.String(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.fail(key, raw)
		return defaultValue
	}
	return v
}

func (q *queryReader) Float(key string, defaultValue float64) float64 {
	raw := q.String(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.fail(key, raw)
		return defaultValue
	}
	return v
}

func (q *queryReader) fail(key, raw string) {
	if q.bad == "" {
		q.bad, q.badRaw = key, raw
	}
}

// Err reports the first malformed parameter as a validation error.
func (q *queryReader) Err() *APIError {
	if q.bad == "" {
		return nil
	}
	return &APIError{
		Code:    ErrCodeValidation,
		Message: q.bad + " must be a number",
		Details: map[string]any{"field": q.bad, "value": q.badRaw},
	}
}

// parseCommaSeparated splits value on commas, trimming items and dropping
// empty ones.
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// paginate returns the page of n items starting at offset. A limit of 0
// returns everything after offset.
func paginate(n, offset, limit int) (start, end int, meta *PaginationMeta) {
	start = min(offset, n)
	end = n
	if limit > 0 {
		end = min(start+limit, n)
	}
	return start, end, &PaginationMeta{
		Total:   n,
		Count:   end - start,
		Offset:  offset,
		Limit:   limit,
		HasMore: end < n,
	}
}
