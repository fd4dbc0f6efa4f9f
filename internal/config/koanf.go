// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

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

// DefaultConfigPaths are searched in order when CONFIG_PATH is not set.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelscope/config.yaml",
}

// ConfigPathEnvVar names the environment variable holding an explicit config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config populated with built-in defaults.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        3857,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "production",
		},
		Logging: LoggingConfig{
			Level:          "info",
			Format:         "json",
			FileMaxSizeMB:  100,
			FileMaxBackups: 3,
			FileMaxAgeDays: 28,
		},
		Dataset: DatasetConfig{
			TitlesPath:       "data/netflix_titles.csv",
			CountryCodesPath: "data/wikipedia-iso-country-codes.csv",
			Loader:           LoaderCSV,
			LoadWorkers:      2,
		},
		DuckDB: DuckDBConfig{
			Threads:   0,
			MaxMemory: "1GB",
		},
		Dashboard: DashboardConfig{
			GeoStartYear:              1925,
			GeoEndYear:                2021,
			CategoricalStartYear:      2001,
			CategoricalEndYear:        2021,
			CategoricalDefaultFeature: "cinematic_type",
			PeopleDefaultColumn:       "director",
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 10000,
		},
		Security: SecurityConfig{
			RateLimitReqs:   300,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		WebSocket: WebSocketConfig{
			MaxSessions: 256,
			ChangeRate:  10,
			ChangeBurst: 20,
		},
	}
}

// LoadWithKoanf loads configuration with layered precedence:
//
//  1. Defaults from defaultConfig()
//  2. Config file (if one is found)
//  3. Environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// HTTP_PORT -> server.port, DATASET_LOADER -> dataset.loader
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

// findConfigFile returns the first existing config file, or "".
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

// sliceConfigPaths are parsed as comma-separated lists when set from env.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"websocket.allowed_origins",
}

// processSliceFields splits comma-separated env values into string slices.
// Values already decoded as lists from YAML are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercase environment variable names to koanf paths.
var envMappings = map[string]string{
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"log_level":             "logging.level",
	"log_format":            "logging.format",
	"log_caller":            "logging.caller",
	"log_file":              "logging.file",
	"log_file_max_size_mb":  "logging.file_max_size_mb",
	"log_file_max_backups":  "logging.file_max_backups",
	"log_file_max_age_days": "logging.file_max_age_days",

	"dataset_titles_path":        "dataset.titles_path",
	"dataset_country_codes_path": "dataset.country_codes_path",
	"dataset_loader":             "dataset.loader",
	"dataset_load_workers":       "dataset.load_workers",

	"duckdb_threads":    "duckdb.threads",
	"duckdb_max_memory": "duckdb.max_memory",

	"geo_start_year":              "dashboard.geo_start_year",
	"geo_end_year":                "dashboard.geo_end_year",
	"categorical_start_year":      "dashboard.categorical_start_year",
	"categorical_end_year":        "dashboard.categorical_end_year",
	"categorical_default_feature": "dashboard.categorical_default_feature",
	"people_default_column":       "dashboard.people_default_column",

	"cache_enabled":     "cache.enabled",
	"cache_ttl":         "cache.ttl",
	"cache_max_entries": "cache.max_entries",

	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	"ws_max_sessions":    "websocket.max_sessions",
	"ws_allowed_origins": "websocket.allowed_origins",
	"ws_change_rate":     "websocket.change_rate",
	"ws_change_burst":    "websocket.change_burst",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" so that unrelated environment does not leak
// into the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

