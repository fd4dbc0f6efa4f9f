// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// ========================================
// Defaults
// ========================================

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 3857 {
		t.Errorf("Server.Port = %d, want 3857", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Dataset.TitlesPath != "data/netflix_titles.csv" {
		t.Errorf("Dataset.TitlesPath = %q", cfg.Dataset.TitlesPath)
	}
	if cfg.Dataset.Loader != LoaderCSV {
		t.Errorf("Dataset.Loader = %q, want csv", cfg.Dataset.Loader)
	}
	if cfg.Dashboard.GeoStartYear != 1925 || cfg.Dashboard.GeoEndYear != 2021 {
		t.Errorf("geo years = %d-%d, want 1925-2021", cfg.Dashboard.GeoStartYear, cfg.Dashboard.GeoEndYear)
	}
	if cfg.Dashboard.CategoricalStartYear != 2001 || cfg.Dashboard.CategoricalEndYear != 2021 {
		t.Errorf("categorical years = %d-%d, want 2001-2021",
			cfg.Dashboard.CategoricalStartYear, cfg.Dashboard.CategoricalEndYear)
	}
	if cfg.Dashboard.CategoricalDefaultFeature != "cinematic_type" {
		t.Errorf("CategoricalDefaultFeature = %q", cfg.Dashboard.CategoricalDefaultFeature)
	}
	if cfg.Dashboard.PeopleDefaultColumn != "director" {
		t.Errorf("PeopleDefaultColumn = %q", cfg.Dashboard.PeopleDefaultColumn)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
	}
	if cfg.Cache.MaxEntries != 10000 {
		t.Errorf("Cache.MaxEntries = %d, want 10000", cfg.Cache.MaxEntries)
	}
	if cfg.WebSocket.MaxSessions != 256 {
		t.Errorf("WebSocket.MaxSessions = %d, want 256", cfg.WebSocket.MaxSessions)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// ========================================
// Layering
// ========================================

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 3857 {
		t.Errorf("Server.Port = %d, want 3857", cfg.Server.Port)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("HTTP_TIMEOUT", "45s")
	t.Setenv("DATASET_LOADER", "duckdb")
	t.Setenv("DATASET_TITLES_PATH", "/srv/titles.csv")
	t.Setenv("GEO_START_YEAR", "1990")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_MAX_ENTRIES", "250")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("WS_ALLOWED_ORIGINS", "https://a.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 45*time.Second {
		t.Errorf("Server.Timeout = %v, want 45s", cfg.Server.Timeout)
	}
	if cfg.Dataset.Loader != LoaderDuckDB {
		t.Errorf("Dataset.Loader = %q, want duckdb", cfg.Dataset.Loader)
	}
	if cfg.Dataset.TitlesPath != "/srv/titles.csv" {
		t.Errorf("Dataset.TitlesPath = %q", cfg.Dataset.TitlesPath)
	}
	if cfg.Dashboard.GeoStartYear != 1990 {
		t.Errorf("GeoStartYear = %d, want 1990", cfg.Dashboard.GeoStartYear)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be false")
	}
	if cfg.Cache.MaxEntries != 250 {
		t.Errorf("Cache.MaxEntries = %d, want 250", cfg.Cache.MaxEntries)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}
	if !reflect.DeepEqual(cfg.WebSocket.AllowedOrigins, []string{"https://a.example"}) {
		t.Errorf("AllowedOrigins = %v", cfg.WebSocket.AllowedOrigins)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlDoc := `
server:
  port: 9000
  environment: development
dashboard:
  categorical_default_feature: rating
  people_default_column: cast
`
	if err := os.WriteFile(path, []byte(yamlDoc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("env should override file: Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Dashboard.CategoricalDefaultFeature != "rating" {
		t.Errorf("CategoricalDefaultFeature = %q, want rating", cfg.Dashboard.CategoricalDefaultFeature)
	}
	if cfg.Dashboard.PeopleDefaultColumn != "cast" {
		t.Errorf("PeopleDefaultColumn = %q, want cast", cfg.Dashboard.PeopleDefaultColumn)
	}
	// untouched values keep their defaults
	if cfg.Dashboard.GeoEndYear != 2021 {
		t.Errorf("GeoEndYear = %d, want 2021", cfg.Dashboard.GeoEndYear)
	}
}

func TestLoadWithKoanf_ValidationFailure(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "70000")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "HTTP_PORT") {
		t.Errorf("error should name HTTP_PORT, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_FILE_MAX_SIZE_MB", "logging.file_max_size_mb"},
		{"DATASET_COUNTRY_CODES_PATH", "dataset.country_codes_path"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"WS_MAX_SESSIONS", "websocket.max_sessions"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// ========================================
// Validation
// ========================================

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad environment", func(c *Config) { c.Server.Environment = "prod" }, "ENVIRONMENT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"log file without size", func(c *Config) {
			c.Logging.File = "/tmp/x.log"
			c.Logging.FileMaxSizeMB = 0
		}, "LOG_FILE_MAX_SIZE_MB"},
		{"empty titles path", func(c *Config) { c.Dataset.TitlesPath = " " }, "DATASET_TITLES_PATH"},
		{"empty codes path", func(c *Config) { c.Dataset.CountryCodesPath = "" }, "DATASET_COUNTRY_CODES_PATH"},
		{"unknown loader", func(c *Config) { c.Dataset.Loader = "parquet" }, "DATASET_LOADER"},
		{"zero workers", func(c *Config) { c.Dataset.LoadWorkers = 0 }, "DATASET_LOAD_WORKERS"},
		{"negative threads", func(c *Config) { c.DuckDB.Threads = -1 }, "DUCKDB_THREADS"},
		{"duckdb without memory", func(c *Config) {
			c.Dataset.Loader = LoaderDuckDB
			c.DuckDB.MaxMemory = ""
		}, "DUCKDB_MAX_MEMORY"},
		{"empty default feature", func(c *Config) { c.Dashboard.CategoricalDefaultFeature = "" }, "CATEGORICAL_DEFAULT_FEATURE"},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }, "CACHE_TTL"},
		{"zero cache entries", func(c *Config) { c.Cache.MaxEntries = 0 }, "CACHE_MAX_ENTRIES"},
		{"cache disabled ignores ttl", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.TTL = 0
			c.Cache.MaxEntries = 0
		}, ""},
		{"rate limit too high", func(c *Config) { c.Security.RateLimitReqs = 100001 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"short window", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"zero sessions", func(c *Config) { c.WebSocket.MaxSessions = 0 }, "WS_MAX_SESSIONS"},
		{"zero change rate", func(c *Config) { c.WebSocket.ChangeRate = 0 }, "WS_CHANGE_RATE"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.IsProduction() {
		t.Error("default environment should be production")
	}
	cfg.Server.Environment = "development"
	if cfg.IsProduction() {
		t.Error("development should not be production")
	}
}
