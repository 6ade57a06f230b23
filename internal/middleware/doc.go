// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package middleware provides the HTTP middleware shared by every route.

Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge keyed by
    chi route pattern
  - Compression: gzip for clients that accept it
  - BotFilter: user agent screening against known scraper tokens

All middleware uses the func(http.HandlerFunc) http.HandlerFunc shape. The
api package adapts them to chi with a small wrapper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.DefaultBotFilter().Middleware))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Bot filtering checks the good-bot list first, so search engine crawlers are
never blocked. Blocked requests get 403 with the body "Access Denied" and
are counted in hostduel_bot_requests_blocked_total by matched token.
*/
package middleware
