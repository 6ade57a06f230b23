// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package models

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Coalesce returns the first non-nil pointer, or nil.
func Coalesce[T any](vals ...*T) *T {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

// ValueOr dereferences p, or returns def when p is nil.
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// IsTrue reports whether p is present and true.
func IsTrue(p *bool) bool {
	return p != nil && *p
}
