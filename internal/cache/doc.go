// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package cache provides the in-memory data structures shared by the HostDuel
engines.

# LRUCache

LRUCache[V] is a generic least recently used cache with a per-entry TTL. The
comparison engine memoises computed head-to-head results in it, keyed by
comparison slug:

	memo := cache.NewLRUCache[*compare.Comparison](2000, time.Hour)
	if c, ok := memo.Get(slug); ok {
	    return c, nil
	}

Expired entries are dropped on access; CleanupExpired drops them in bulk.

# AhoCorasick

AhoCorasick matches many patterns against a text in a single pass. It backs
the keyword dictionary of the host search filter and the User-Agent lists of
the bot filter. Matching is ASCII case-insensitive and the automaton is
immutable once built.

All types in this package are safe for concurrent use.
*/
package cache
