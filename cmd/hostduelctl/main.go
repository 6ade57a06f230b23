// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

// Command hostduelctl runs offline maintenance tasks against a HostDuel
// dataset: validation, sitemap generation, comparison pair listing, click
// counter dumps and IndexNow submission.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
