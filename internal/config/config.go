// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	DuckDB    DuckDBConfig    `koanf:"duckdb"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
	WebSocket WebSocketConfig `koanf:"websocket"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging" or "production"
}

// LoggingConfig holds logging settings passed to logging.Init.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`

	// File enables a rotating JSON log file in addition to stderr.
	File           string `koanf:"file"`
	FileMaxSizeMB  int    `koanf:"file_max_size_mb"`
	FileMaxBackups int    `koanf:"file_max_backups"`
	FileMaxAgeDays int    `koanf:"file_max_age_days"`
}

// Loader names accepted by DATASET_LOADER.
const (
	LoaderCSV    = "csv"
	LoaderDuckDB = "duckdb"
)

// DatasetConfig locates the two startup CSV files.
type DatasetConfig struct {
	TitlesPath       string `koanf:"titles_path"`
	CountryCodesPath string `koanf:"country_codes_path"`
	Loader           string `koanf:"loader"`
	LoadWorkers      int    `koanf:"load_workers"`
}

// DuckDBConfig tunes the in-memory DuckDB instance used by the duckdb loader.
type DuckDBConfig struct {
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()
	MaxMemory string `koanf:"max_memory"`
}

// DashboardConfig holds the initial selections of each page.
type DashboardConfig struct {
	GeoStartYear              int    `koanf:"geo_start_year"`
	GeoEndYear                int    `koanf:"geo_end_year"`
	CategoricalStartYear      int    `koanf:"categorical_start_year"`
	CategoricalEndYear        int    `koanf:"categorical_end_year"`
	CategoricalDefaultFeature string `koanf:"categorical_default_feature"`
	PeopleDefaultColumn       string `koanf:"people_default_column"`
}

// CacheConfig controls the response cache for options and charts.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

// SecurityConfig holds request limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// WebSocketConfig bounds live dashboard sessions.
type WebSocketConfig struct {
	MaxSessions    int      `koanf:"max_sessions"`
	AllowedOrigins []string `koanf:"allowed_origins"`

	// ChangeRate and ChangeBurst configure the per-session token bucket
	// applied to "change" messages.
	ChangeRate  float64 `koanf:"change_rate"`
	ChangeBurst int     `koanf:"change_burst"`
}

// Load reads configuration using Koanf: defaults, then an optional config
// file, then environment variables.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
