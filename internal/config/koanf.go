// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
// The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/hostduel/config.yaml",
	"/etc/hostduel/config.yml",
}

// ConfigPathEnvVar overrides the config file search.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultIndexNowKey is the key published at /{key}.txt on hostduel.com.
const DefaultIndexNowKey = "86edee65f9264974890803baeb8ace80"

// defaultConfig returns the defaults applied before the config file and
// environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
			BotBlocking:       true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Data: DataConfig{
			Dir:            "data",
			AffiliatesPath: "data/affiliates.json",
		},
		Site: SiteConfig{
			BaseURL: "https://hostduel.com",
			Name:    "HostDuel",
		},
		IndexNow: IndexNowConfig{
			Enabled:       false,
			Key:           DefaultIndexNowKey,
			Endpoint:      "https://api.indexnow.org/indexnow",
			Host:          "hostduel.com",
			SubmitOnStart: false,
			BatchSize:     10000,
			Timeout:       30 * time.Second,
			Interval:      time.Second,
		},
		Clicks: ClicksConfig{
			Enabled:    true,
			Path:       "/data/clicks",
			InMemory:   false,
			GCInterval: 10 * time.Minute,
		},
		Cache: CacheConfig{
			ComparisonCapacity: 2000,
			ComparisonTTL:      time.Hour,
		},
	}
}

// sliceConfigPaths are koanf paths that accept comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",
	"bot_blocking":        "security.bot_blocking",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Data
	"data_dir":        "data.dir",
	"affiliates_path": "data.affiliates_path",

	// Site
	"site_base_url": "site.base_url",
	"site_name":     "site.name",

	// IndexNow
	"indexnow_enabled":         "indexnow.enabled",
	"indexnow_key":             "indexnow.key",
	"indexnow_endpoint":        "indexnow.endpoint",
	"indexnow_host":            "indexnow.host",
	"indexnow_submit_on_start": "indexnow.submit_on_start",
	"indexnow_batch_size":      "indexnow.batch_size",
	"indexnow_timeout":         "indexnow.timeout",
	"indexnow_interval":        "indexnow.interval",

	// Click tracking
	"clicks_enabled":     "clicks.enabled",
	"clicks_path":        "clicks.path",
	"clicks_in_memory":   "clicks.in_memory",
	"clicks_gc_interval": "clicks.gc_interval",

	// Comparison cache
	"comparison_cache_capacity": "cache.comparison_capacity",
	"comparison_cache_ttl":      "cache.comparison_ttl",
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing order of priority, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// HTTP_PORT -> server.port, INDEXNOW_KEY -> indexnow.key
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH when it exists, otherwise the first
// existing entry of DefaultConfigPaths, otherwise "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// processSliceFields splits comma-separated string values for the paths in
// sliceConfigPaths. Values already loaded as lists from YAML are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
