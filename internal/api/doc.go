// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package api serves the HostDuel HTTP API over a loaded provider snapshot.

# Routes

	GET /api/v1/hosts                 filtered, sorted, paged rows
	GET /api/v1/hosts/types           provider counts per hosting type
	GET /api/v1/hosts/{id}            one provider with JSON-LD
	GET /api/v1/categories/{type}     providers of one hosting type
	GET /api/v1/best-for/{useCase}    top providers for a use case
	GET /api/v1/compare/pairs         valid comparisons (?cluster=)
	GET /api/v1/compare/clusters      comparison clusters
	GET /api/v1/compare/{slug}        head-to-head comparison
	GET /api/v1/quiz/questions        quiz definition
	GET /api/v1/quiz/results          quiz recommendations
	GET /api/v1/clicks                click counters (?prefix=)
	GET /go/{id}                      302 to the affiliate link or website
	GET /sitemap.xml                  sitemap
	GET /{key}.txt                    IndexNow key file
	GET /health                       liveness and snapshot size
	GET /metrics                      Prometheus metrics

# Response Envelope

Every JSON response is wrapped in APIResponse:

	{
	  "success": true,
	  "data": {...},
	  "metadata": {"request_id": "...", "timestamp": "...", "query_time_ms": 0}
	}

Errors carry a code and message instead of data. Unknown resources answer
404 NOT_FOUND, malformed query parameters 400 VALIDATION_ERROR and anything
else 500 INTERNAL_ERROR. A path parameter that fails validation names no
resource and is answered with 404.

# Middleware

Request IDs, trusted-proxy RealIP, panic recovery, CORS, optional bot
blocking and Prometheus metrics apply to every route. The API and redirect
groups add per-IP rate limiting; API responses and the sitemap are gzip
compressed when the client accepts it.
*/
package api
