// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "HTTP_PORT"},
		{name: "unknown environment", mutate: func(c *Config) { c.Server.Environment = "qa" }, wantErr: "ENVIRONMENT"},
		{name: "rate limit zero", mutate: func(c *Config) { c.Security.RateLimitReqs = 0 }, wantErr: "RATE_LIMIT_REQUESTS"},
		{name: "rate limit disabled", mutate: func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "empty data dir", mutate: func(c *Config) { c.Data.Dir = "" }, wantErr: "DATA_DIR"},
		{name: "base url with path", mutate: func(c *Config) { c.Site.BaseURL = "https://hostduel.com/blog" }, wantErr: "SITE_BASE_URL"},
		{name: "base url ftp", mutate: func(c *Config) { c.Site.BaseURL = "ftp://hostduel.com" }, wantErr: "SITE_BASE_URL"},
		{name: "bad indexnow key", mutate: func(c *Config) { c.IndexNow.Key = "short" }, wantErr: "INDEXNOW_KEY"},
		{name: "indexnow batch too big", mutate: func(c *Config) {
			c.IndexNow.Enabled = true
			c.IndexNow.BatchSize = 20000
		}, wantErr: "INDEXNOW_BATCH_SIZE"},
		{name: "indexnow without host", mutate: func(c *Config) {
			c.IndexNow.Enabled = true
			c.IndexNow.Host = ""
		}, wantErr: "INDEXNOW_HOST"},
		{name: "clicks without path", mutate: func(c *Config) { c.Clicks.Path = "" }, wantErr: "CLICKS_PATH"},
		{name: "clicks in memory", mutate: func(c *Config) {
			c.Clicks.Path = ""
			c.Clicks.InMemory = true
		}},
		{name: "negative gc interval", mutate: func(c *Config) { c.Clicks.GCInterval = -time.Second }, wantErr: "CLICKS_GC_INTERVAL"},
		{name: "cache capacity", mutate: func(c *Config) { c.Cache.ComparisonCapacity = 0 }, wantErr: "COMPARISON_CACHE_CAPACITY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", got)
	}
	if s.IsProduction() {
		t.Error("IsProduction() = true for empty environment")
	}
}
