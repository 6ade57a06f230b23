// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Command server runs the HostDuel API.

Startup order:

 1. Optional .env file, then configuration (defaults, config.yaml, environment)
 2. Logging
 3. Provider snapshot from DATA_DIR
 4. Affiliate links from AFFILIATES_PATH
 5. Click store (BadgerDB) when CLICKS_ENABLED
 6. Supervisor tree with the HTTP server, click store GC and the optional
    IndexNow submission job

SIGINT and SIGTERM cancel the tree; the HTTP server drains for up to 10s.

Common environment variables:

	HTTP_PORT=8080
	DATA_DIR=data
	AFFILIATES_PATH=data/affiliates.json
	SITE_BASE_URL=https://hostduel.com
	CLICKS_ENABLED=true
	CLICKS_PATH=/data/clicks
	INDEXNOW_ENABLED=false
	INDEXNOW_SUBMIT_ON_START=false
	LOG_LEVEL=info
	LOG_FORMAT=json
*/
package main
