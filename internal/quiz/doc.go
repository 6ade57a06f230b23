// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package quiz recommends hosts from the answers to a seven-question quiz.

Each host earns up to 100 points in four components:

	suitability  40  building type x4, technical level x2, traffic, CMS fit
	budget       25  monthly price against the chosen bracket
	features     20  share of must-have features the host includes
	priority     15  the rating matching the visitor's priority x3

Components are capped individually and the rounded total is clamped to
0-100. Multipliers and caps come from Weights; DefaultWeights is the
production model.

Answers travel in shareable URLs as query parameters (build, level, traffic,
budget, features, cms, priority). DecodeParams drops anything that is not a
known option, so a hand-edited URL never fails; it just scores fewer
components.
*/
package quiz
