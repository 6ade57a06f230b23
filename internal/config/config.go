// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Data     DataConfig     `koanf:"data"`
	Site     SiteConfig     `koanf:"site"`
	IndexNow IndexNowConfig `koanf:"indexnow"`
	Clicks   ClicksConfig   `koanf:"clicks"`
	Cache    CacheConfig    `koanf:"cache"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging or production
}

// SecurityConfig configures rate limiting, CORS and proxy trust.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`

	// BotBlocking rejects known scraper user agents with 403.
	BotBlocking bool `koanf:"bot_blocking"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// DataConfig locates the provider dataset on disk.
type DataConfig struct {
	// Dir contains index.json and a companies/ directory of records.
	Dir string `koanf:"dir"`

	// AffiliatesPath is the affiliate link table. A missing file means no
	// affiliate links.
	AffiliatesPath string `koanf:"affiliates_path"`
}

// SiteConfig describes the public site used when building absolute URLs.
type SiteConfig struct {
	BaseURL string `koanf:"base_url"`
	Name    string `koanf:"name"`
}

// IndexNowConfig configures search engine URL submission.
type IndexNowConfig struct {
	Enabled       bool          `koanf:"enabled"`
	Key           string        `koanf:"key"`
	Endpoint      string        `koanf:"endpoint"`
	Host          string        `koanf:"host"`
	SubmitOnStart bool          `koanf:"submit_on_start"`
	BatchSize     int           `koanf:"batch_size"`
	Timeout       time.Duration `koanf:"timeout"`

	// Interval is the minimum spacing between batch submissions.
	Interval time.Duration `koanf:"interval"`
}

// ClicksConfig configures outbound click tracking.
type ClicksConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`

	// GCInterval is the spacing of value log garbage collection runs.
	// Zero disables collection.
	GCInterval time.Duration `koanf:"gc_interval"`
}

// CacheConfig sizes the comparison result cache.
type CacheConfig struct {
	ComparisonCapacity int           `koanf:"comparison_capacity"`
	ComparisonTTL      time.Duration `koanf:"comparison_ttl"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// KeyLocation is the public URL of the IndexNow key file.
func (c *Config) KeyLocation() string {
	return strings.TrimRight(c.Site.BaseURL, "/") + "/" + c.IndexNow.Key + ".txt"
}
