// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package seo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/hostduel/internal/config"
)

type recordingServer struct {
	mu       sync.Mutex
	payloads []indexNowPayload
	status   int
}

func (s *recordingServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var p indexNowPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if ct := r.Header.Get("Content-Type"); ct != "application/json; charset=utf-8" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}
	s.mu.Lock()
	s.payloads = append(s.payloads, p)
	s.mu.Unlock()
	w.WriteHeader(s.status)
}

func testURLs(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://example.com/hosting/h%d", i)
	}
	return urls
}

func TestIndexNowClient_Submit(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusOK, http.StatusAccepted} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			rec := &recordingServer{status: status}
			srv := httptest.NewServer(rec)
			defer srv.Close()

			client := NewIndexNowClient(config.IndexNowConfig{
				Key:       "abcdef123456",
				Endpoint:  srv.URL,
				Host:      "example.com",
				BatchSize: 2,
			}, "https://example.com/abcdef123456.txt", zerolog.Nop())

			res, err := client.Submit(context.Background(), testURLs(5))
			if err != nil {
				t.Fatalf("Submit() error = %v", err)
			}
			if res.Batches != 3 || res.Submitted != 5 {
				t.Errorf("result = %+v, want 3 batches / 5 urls", res)
			}

			rec.mu.Lock()
			defer rec.mu.Unlock()
			if len(rec.payloads) != 3 {
				t.Fatalf("server saw %d requests, want 3", len(rec.payloads))
			}
			first := rec.payloads[0]
			if first.Host != "example.com" || first.Key != "abcdef123456" || first.KeyLocation != "https://example.com/abcdef123456.txt" {
				t.Errorf("payload = %+v", first)
			}
			if len(first.URLList) != 2 || len(rec.payloads[2].URLList) != 1 {
				t.Errorf("batch sizes = %d, %d", len(first.URLList), len(rec.payloads[2].URLList))
			}
		})
	}
}

func TestIndexNowClient_SubmitFailure(t *testing.T) {
	t.Parallel()

	rec := &recordingServer{status: http.StatusForbidden}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	client := NewIndexNowClient(config.IndexNowConfig{Key: "abcdef123456", Endpoint: srv.URL, BatchSize: 1},
		"https://example.com/abcdef123456.txt", zerolog.Nop())

	res, err := client.Submit(context.Background(), testURLs(3))
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("Submit() error = %v, want ErrUnexpectedStatus", err)
	}
	if res.Batches != 0 {
		t.Errorf("Batches = %d, want 0", res.Batches)
	}
	if len(rec.payloads) != 1 {
		t.Errorf("server saw %d requests, want 1", len(rec.payloads))
	}
}

func TestIndexNowClient_NoKey(t *testing.T) {
	t.Parallel()

	client := NewIndexNowClient(config.IndexNowConfig{}, "", zerolog.Nop())
	if _, err := client.Submit(context.Background(), testURLs(1)); !errors.Is(err, ErrIndexNowKeyMissing) {
		t.Errorf("Submit() error = %v, want ErrIndexNowKeyMissing", err)
	}
}

func TestIndexNowClient_EmptyList(t *testing.T) {
	t.Parallel()

	client := NewIndexNowClient(config.IndexNowConfig{Key: "abcdef123456"}, "", zerolog.Nop())
	res, err := client.Submit(context.Background(), nil)
	if err != nil || res.Batches != 0 {
		t.Errorf("Submit(nil) = %+v, %v", res, err)
	}
}

func TestIndexNowClient_CanceledWhilePacing(t *testing.T) {
	t.Parallel()

	rec := &recordingServer{status: http.StatusOK}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	client := NewIndexNowClient(config.IndexNowConfig{
		Key:       "abcdef123456",
		Endpoint:  srv.URL,
		BatchSize: 1,
		Interval:  time.Hour,
	}, "", zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := client.Submit(ctx, testURLs(2))
	if err == nil {
		t.Fatal("Submit() should fail when the pacing wait outlives the context")
	}
	if res.Batches != 1 {
		t.Errorf("Batches = %d, want 1 before pacing blocked", res.Batches)
	}
}

func TestIndexNowClient_BreakerOpens(t *testing.T) {
	t.Parallel()

	rec := &recordingServer{status: http.StatusInternalServerError}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	client := NewIndexNowClient(config.IndexNowConfig{Key: "abcdef123456", Endpoint: srv.URL},
		"", zerolog.Nop())

	for i := 0; i < 10; i++ {
		_, _ = client.Submit(context.Background(), testURLs(1))
	}
	if got := client.BreakerState().String(); got != "open" {
		t.Fatalf("breaker state = %s, want open", got)
	}

	_, err := client.Submit(context.Background(), testURLs(1))
	if err == nil {
		t.Fatal("Submit() should be rejected while the breaker is open")
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.payloads) != 10 {
		t.Errorf("server saw %d requests, want 10", len(rec.payloads))
	}
}
