// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

// Package filter implements the comparison table's search, filters and
// column sorting over projected TableRows.
//
// Search matches a host by name or hosting type, or when a dictionary
// keyword appears in the query and the host has the matching attribute:
// "cheap ssh" finds every host with SSH access. Keywords are scanned with
// the Aho-Corasick matcher from the cache package.
package filter
