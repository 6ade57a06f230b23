// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package config loads HostDuel configuration with koanf.

# Configuration Sources

Load layers three sources, later ones winning:

 1. Struct defaults (defaultConfig)
 2. A YAML file at CONFIG_PATH, or the first of DefaultConfigPaths that exists
 3. Environment variables listed in envMappings

Unmapped environment variables are ignored. CORS_ORIGINS and TRUSTED_PROXIES
accept comma-separated lists.

# Sections

  - server: listen address, timeout and environment
  - security: rate limiting, CORS, trusted proxies and bot blocking
  - logging: level, format and caller info
  - data: dataset directory and affiliates.json path
  - site: public base URL and site name
  - indexnow: search engine URL submission
  - clicks: outbound click counters
  - cache: comparison result cache sizing

# Example

	# config.yaml
	data:
	  dir: /srv/hostduel/data
	site:
	  base_url: https://hostduel.com
	indexnow:
	  enabled: true
	  submit_on_start: true

Validate runs after loading and returns the first problem found, naming the
environment variable to fix.
*/
package config
