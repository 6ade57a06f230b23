// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package compare builds head-to-head comparisons between hosting providers.

Providers are only compared within a cluster of related hosting types (for
example cloud-iaas and vps form the "cloud-vps" cluster). GeneratePairs
enumerates every same-cluster pair and Slug gives each pair a canonical URL
key, "{a}-vs-{b}" with a < b.

CategoryWinners scores two hosts in seven fixed categories (price, value,
performance, support, WordPress, developers, beginners) and OverallWinner
counts the wins. Missing data degrades a category towards a tie.

Engine ties it together for the HTTP API and memoises results in an LRU
keyed by slug:

	engine := compare.NewEngine(snapshot.Rows(), compare.WithCache(2000, time.Hour))
	c, err := engine.Compare("bluehost-vs-hostinger")
	if errors.Is(err, compare.ErrHostNotFound) {
	    // 404
	}
*/
package compare
