// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package config

import (
	"fmt"
	"regexp"
	"strings"
)

// indexNowKeyPattern is the key format accepted by IndexNow: 8 to 128
// characters of letters, digits and dashes.
var indexNowKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9-]{8,128}$`)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	if err := validateBaseURL(c.Site.BaseURL, "SITE_BASE_URL"); err != nil {
		return err
	}
	if err := c.validateIndexNow(); err != nil {
		return err
	}
	if err := c.validateClicks(); err != nil {
		return err
	}
	return c.validateCache()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got: %s", c.Server.Environment)
	}
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got: %s", c.Logging.Format)
	}
}

func (c *Config) validateData() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

// validateIndexNow only applies when submission is enabled. The key file
// route is served regardless, so a key is still checked when present.
func (c *Config) validateIndexNow() error {
	if c.IndexNow.Key != "" && !indexNowKeyPattern.MatchString(c.IndexNow.Key) {
		return fmt.Errorf("INDEXNOW_KEY must be 8-128 characters of letters, digits or dashes")
	}
	if !c.IndexNow.Enabled {
		return nil
	}

	if c.IndexNow.Key == "" {
		return fmt.Errorf("INDEXNOW_KEY is required when INDEXNOW_ENABLED=true")
	}
	if _, err := validateHTTPURL(c.IndexNow.Endpoint, "INDEXNOW_ENDPOINT"); err != nil {
		return err
	}
	if c.IndexNow.Host == "" {
		return fmt.Errorf("INDEXNOW_HOST is required when INDEXNOW_ENABLED=true")
	}
	if c.IndexNow.BatchSize < 1 || c.IndexNow.BatchSize > 10000 {
		return fmt.Errorf("INDEXNOW_BATCH_SIZE must be between 1 and 10000")
	}
	if c.IndexNow.Timeout <= 0 {
		return fmt.Errorf("INDEXNOW_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateClicks() error {
	if c.Clicks.Enabled && !c.Clicks.InMemory && c.Clicks.Path == "" {
		return fmt.Errorf("CLICKS_PATH is required unless CLICKS_IN_MEMORY=true")
	}
	if c.Clicks.GCInterval < 0 {
		return fmt.Errorf("CLICKS_GC_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.ComparisonCapacity < 1 {
		return fmt.Errorf("COMPARISON_CACHE_CAPACITY must be at least 1")
	}
	if c.Cache.ComparisonTTL <= 0 {
		return fmt.Errorf("COMPARISON_CACHE_TTL must be positive")
	}
	return nil
}
