// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostduel_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hostduel_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hostduel_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Bot filter
	BotRequestsBlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostduel_bot_requests_blocked_total",
			Help: "Requests rejected by the User-Agent bot filter",
		},
		[]string{"bot"},
	)

	// Affiliate redirects and click tracking
	RedirectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostduel_redirects_total",
			Help: "Outbound /go redirects by destination source",
		},
		[]string{"source"}, // "affiliate", "website", "fallback"
	)

	HostClicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostduel_host_clicks_total",
			Help: "Tracked host interactions by action",
		},
		[]string{"action"}, // "visit", "details"
	)

	ClickTrackingErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hostduel_click_tracking_errors_total",
			Help: "Click events that could not be persisted",
		},
	)

	// Comparison memo
	ComparisonCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hostduel_comparison_cache_hits_total",
			Help: "Comparisons served from the memo cache",
		},
	)

	ComparisonCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hostduel_comparison_cache_misses_total",
			Help: "Comparisons computed because they were not cached",
		},
	)

	// Quiz
	QuizSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostduel_quiz_submissions_total",
			Help: "Quiz result requests by primary building type",
		},
		[]string{"building_type"},
	)

	// Dataset
	SnapshotRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hostduel_snapshot_records",
			Help: "Provider records loaded into the in-memory snapshot",
		},
	)

	SnapshotSkipped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hostduel_snapshot_skipped_records",
			Help: "Index entries skipped because their record was missing or malformed",
		},
	)

	// IndexNow
	IndexNowSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostduel_indexnow_submissions_total",
			Help: "IndexNow batch submissions by result",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	IndexNowURLsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hostduel_indexnow_urls_submitted_total",
			Help: "URLs accepted by the IndexNow endpoint",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hostduel_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostduel_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordBotBlocked counts a request rejected for the matched bot token.
func RecordBotBlocked(bot string) {
	BotRequestsBlocked.WithLabelValues(bot).Inc()
}

// RecordRedirect counts an outbound redirect by where its URL came from.
func RecordRedirect(source string) {
	RedirectsTotal.WithLabelValues(source).Inc()
}

// RecordClick counts a tracked host interaction.
func RecordClick(action string) {
	HostClicksTotal.WithLabelValues(action).Inc()
}

// RecordComparisonCache counts a memo lookup.
func RecordComparisonCache(hit bool) {
	if hit {
		ComparisonCacheHits.Inc()
	} else {
		ComparisonCacheMisses.Inc()
	}
}

// RecordQuizSubmission counts a quiz evaluation. An empty building type is
// recorded as "any".
func RecordQuizSubmission(buildingType string) {
	if buildingType == "" {
		buildingType = "any"
	}
	QuizSubmissions.WithLabelValues(buildingType).Inc()
}

// SetSnapshotSize publishes the loaded and skipped record counts.
func SetSnapshotSize(records, skipped int) {
	SnapshotRecords.Set(float64(records))
	SnapshotSkipped.Set(float64(skipped))
}

// RecordIndexNowBatch counts one IndexNow batch. urls is added to the
// submitted total only on success.
func RecordIndexNowBatch(result string, urls int) {
	IndexNowSubmissions.WithLabelValues(result).Inc()
	if result == "success" {
		IndexNowURLsSubmitted.Add(float64(urls))
	}
}

// SetCircuitBreakerState publishes a breaker state transition. state uses
// the gauge encoding 0=closed, 1=half-open, 2=open.
func SetCircuitBreakerState(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}
