// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

/*
Package metrics defines the Prometheus collectors exported by HostDuel.

Collectors are registered on the default registry through promauto and are
served by the /metrics endpoint.

# Metric Families

HTTP API:
  - hostduel_api_requests_total{method, endpoint, status_code}
  - hostduel_api_request_duration_seconds{method, endpoint}
  - hostduel_api_active_requests

Traffic and conversions:
  - hostduel_bot_requests_blocked_total{bot}
  - hostduel_redirects_total{source}: affiliate, website or fallback
  - hostduel_host_clicks_total{action}: visit or details
  - hostduel_click_tracking_errors_total

Engines:
  - hostduel_comparison_cache_hits_total / _misses_total
  - hostduel_quiz_submissions_total{building_type}
  - hostduel_snapshot_records, hostduel_snapshot_skipped_records

IndexNow:
  - hostduel_indexnow_submissions_total{result}
  - hostduel_indexnow_urls_submitted_total
  - hostduel_circuit_breaker_state{name}
  - hostduel_circuit_breaker_state_transitions_total{name, from_state, to_state}

# Usage

Callers use the Record* helpers rather than the collectors directly:

	metrics.RecordRedirect("affiliate")
	metrics.RecordClick("visit")

Example PromQL:

	# Share of outbound clicks that carry an affiliate link
	sum(rate(hostduel_redirects_total{source="affiliate"}[1h]))
	  / sum(rate(hostduel_redirects_total[1h]))

	# p95 API latency
	histogram_quantile(0.95, rate(hostduel_api_request_duration_seconds_bucket[5m]))
*/
package metrics
