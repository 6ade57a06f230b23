// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package seo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/hostduel/internal/config"
	"github.com/tomtom215/hostduel/internal/logging"
	"github.com/tomtom215/hostduel/internal/metrics"
)

const (
	// MaxIndexNowBatch is the largest urlList IndexNow accepts in one request.
	MaxIndexNowBatch = 10000

	// DefaultIndexNowEndpoint is the shared endpoint relayed to all engines.
	DefaultIndexNowEndpoint = "https://api.indexnow.org/indexnow"

	defaultIndexNowTimeout = 10 * time.Second
	indexNowBreakerName    = "indexnow"
)

// Batch results reported to metrics.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
)

var (
	// ErrIndexNowKeyMissing is returned when Submit runs without a key.
	ErrIndexNowKeyMissing = errors.New("indexnow key not configured")

	// ErrUnexpectedStatus wraps non-2xx responses other than 200 and 202.
	ErrUnexpectedStatus = errors.New("indexnow unexpected status")
)

// indexNowPayload is the JSON body of a submission.
type indexNowPayload struct {
	Host        string   `json:"host"`
	Key         string   `json:"key"`
	KeyLocation string   `json:"keyLocation"`
	URLList     []string `json:"urlList"`
}

// SubmitResult summarizes a Submit call.
type SubmitResult struct {
	Batches   int `json:"batches"`
	Submitted int `json:"submitted"`
}

// IndexNowClient submits URL lists to an IndexNow endpoint. Requests run
// through a circuit breaker and batches are paced by a token bucket.
type IndexNowClient struct {
	endpoint    string
	host        string
	key         string
	keyLocation string
	batchSize   int

	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[int]
	logger     zerolog.Logger
}

// IndexNowOption customizes an IndexNowClient.
type IndexNowOption func(*IndexNowClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) IndexNowOption {
	return func(ic *IndexNowClient) { ic.httpClient = c }
}

// NewIndexNowClient builds a client from cfg. keyLocation is the public URL
// of the key file, normally config.Config.KeyLocation.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewIndexNowClient(cfg config.IndexNowConfig, keyLocation string, logger zerolog.Logger, opts ...IndexNowOption) *IndexNowClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultIndexNowEndpoint
	}
	batch := cfg.BatchSize
	if batch <= 0 || batch > MaxIndexNowBatch {
		batch = MaxIndexNowBatch
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultIndexNowTimeout
	}
	limit := rate.Inf
	if cfg.Interval > 0 {
		limit = rate.Every(cfg.Interval)
	}

	c := &IndexNowClient{
		endpoint:    endpoint,
		host:        cfg.Host,
		key:         cfg.Key,
		keyLocation: keyLocation,
		batchSize:   batch,
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(limit, 1),
		logger:      logger.With().Str("component", "indexnow").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cb = c.newBreaker()
	return c
}

// newBreaker opens after 60% failures over at least 10 requests and probes
// again after two minutes.
func (c *IndexNowClient) newBreaker() *gobreaker.CircuitBreaker[int] {
	metrics.CircuitBreakerState.WithLabelValues(indexNowBreakerName).Set(0)

	return gobreaker.NewCircuitBreaker[int](gobreaker.Settings{
		Name:        indexNowBreakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= 0.6 {
				c.logger.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("Opening IndexNow circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Info().Str("from", from.String()).Str("to", to.String()).Msg("IndexNow circuit state transition")
			metrics.SetCircuitBreakerState(name, from.String(), to.String(), stateToFloat(to))
		},
	})
}

// Submit posts urls in batches. It stops at the first failed batch and
// returns what was accepted so far.
func (c *IndexNowClient) Submit(ctx context.Context, urls []string) (SubmitResult, error) {
	var res SubmitResult
	if c.key == "" {
		return res, ErrIndexNowKeyMissing
	}
	if len(urls) == 0 {
		return res, nil
	}

	for start := 0; start < len(urls); start += c.batchSize {
		end := min(start+c.batchSize, len(urls))
		batch := urls[start:end]

		if err := c.limiter.Wait(ctx); err != nil {
			return res, fmt.Errorf("indexnow pacing: %w", err)
		}

		status, err := c.cb.Execute(func() (int, error) {
			return c.post(ctx, batch)
		})
		if err != nil {
			result := ResultFailure
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				result = ResultRejected
			}
			metrics.RecordIndexNowBatch(result, len(batch))
			return res, fmt.Errorf("indexnow batch %d: %w", res.Batches+1, err)
		}

		metrics.RecordIndexNowBatch(ResultSuccess, len(batch))
		res.Batches++
		res.Submitted += len(batch)
		c.logger.Info().
			Str("correlation_id", logging.CorrelationIDFromContext(ctx)).
			Int("status", status).
			Int("urls", len(batch)).
			Msg("IndexNow batch accepted")
	}
	return res, nil
}

func (c *IndexNowClient) post(ctx context.Context, batch []string) (int, error) {
	body, err := json.Marshal(indexNowPayload{
		Host:        c.host,
		Key:         c.key,
		KeyLocation: c.keyLocation,
		URLList:     batch,
	})
	if err != nil {
		return 0, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return resp.StatusCode, nil
	default:
		return resp.StatusCode, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
}

// BreakerState returns the current circuit breaker state.
func (c *IndexNowClient) BreakerState() gobreaker.State {
	return c.cb.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
