// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package models defines the data structures shared across HostDuel.

Key Components:

  - Company: a provider record as stored in data/companies/{id}.json, split
    into 25 sections. Every field is optional and modelled as a pointer or a
    nil slice so that "not collected" stays distinct from zero or false.
  - Quota: a numeric limit that may be "Unlimited".
  - TableRow: the flattened projection of a Company used by listings,
    filters, comparisons and the quiz.
  - Index: the manifest in data/index.json.
  - AffiliateEntry: one entry of data/affiliates.json.

Usage Example:

	var c models.Company
	if err := json.Unmarshal(raw, &c); err != nil {
	    return err
	}
	if c.TechnicalSpecs.StorageGB.IsUnlimited() {
	    // ...
	}

Thread Safety:

Model types carry no internal synchronization. Values loaded into a store
snapshot are treated as read-only after load.
*/
package models
