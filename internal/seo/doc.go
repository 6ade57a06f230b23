// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package seo builds the search engine facing artifacts of the site.

It covers three concerns:

  - the XML sitemap listing static pages, host pages and comparison pages
  - schema.org JSON-LD documents (Product, FAQPage, BreadcrumbList, ItemList)
  - IndexNow submission of sitemap URLs

The IndexNow client wraps every request in a sony/gobreaker circuit breaker
and paces batches with a golang.org/x/time/rate limiter. Breaker state and
batch outcomes are exported through the metrics package.

Usage:

	urls := seo.BuildSitemap(cfg.Site.BaseURL, snap.IDs(), engine.Pairs(), time.Now())
	client := seo.NewIndexNowClient(cfg.IndexNow, cfg.KeyLocation(), logger)
	res, err := client.Submit(ctx, seo.Locations(urls))
*/
package seo
