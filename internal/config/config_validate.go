// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that configuration values are present and in range.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateDataset,
		c.validateDuckDB,
		c.validateDashboard,
		c.validateCache,
		c.validateSecurity,
		c.validateWebSocket,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
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
	default:
		return fmt.Errorf("ENVIRONMENT must be one of development, staging, production (got %q)", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateLogging() error {
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true,
		"error": true, "fatal": true, "panic": true, "disabled": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled (got %q)", c.Logging.Level)
	}
	format := strings.ToLower(c.Logging.Format)
	if format != "json" && format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console (got %q)", c.Logging.Format)
	}
	if c.Logging.File != "" && c.Logging.FileMaxSizeMB < 1 {
		return fmt.Errorf("LOG_FILE_MAX_SIZE_MB must be at least 1")
	}
	if c.Logging.FileMaxBackups < 0 || c.Logging.FileMaxAgeDays < 0 {
		return fmt.Errorf("LOG_FILE_MAX_BACKUPS and LOG_FILE_MAX_AGE_DAYS must be non-negative")
	}
	return nil
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.TitlesPath) == "" {
		return fmt.Errorf("DATASET_TITLES_PATH is required")
	}
	if strings.TrimSpace(c.Dataset.CountryCodesPath) == "" {
		return fmt.Errorf("DATASET_COUNTRY_CODES_PATH is required")
	}
	if c.Dataset.Loader != LoaderCSV && c.Dataset.Loader != LoaderDuckDB {
		return fmt.Errorf("DATASET_LOADER must be %q or %q (got %q)", LoaderCSV, LoaderDuckDB, c.Dataset.Loader)
	}
	if c.Dataset.LoadWorkers < 1 || c.Dataset.LoadWorkers > 16 {
		return fmt.Errorf("DATASET_LOAD_WORKERS must be between 1 and 16")
	}
	return nil
}

func (c *Config) validateDuckDB() error {
	if c.DuckDB.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative")
	}
	if c.Dataset.Loader == LoaderDuckDB && strings.TrimSpace(c.DuckDB.MaxMemory) == "" {
		return fmt.Errorf("DUCKDB_MAX_MEMORY is required when DATASET_LOADER=duckdb")
	}
	return nil
}

func (c *Config) validateDashboard() error {
	d := c.Dashboard
	if d.GeoStartYear < 1 || d.GeoEndYear < 1 {
		return fmt.Errorf("GEO_START_YEAR and GEO_END_YEAR must be positive")
	}
	if d.CategoricalStartYear < 1 || d.CategoricalEndYear < 1 {
		return fmt.Errorf("CATEGORICAL_START_YEAR and CATEGORICAL_END_YEAR must be positive")
	}
	if strings.TrimSpace(d.CategoricalDefaultFeature) == "" {
		return fmt.Errorf("CATEGORICAL_DEFAULT_FEATURE is required")
	}
	if strings.TrimSpace(d.PeopleDefaultColumn) == "" {
		return fmt.Errorf("PEOPLE_DEFAULT_COLUMN is required")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when CACHE_ENABLED=true")
	}
	if c.Cache.Enabled && (c.Cache.MaxEntries < 1 || c.Cache.MaxEntries > 1000000) {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be between 1 and 1000000")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000")
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h")
	}
	return nil
}

func (c *Config) validateWebSocket() error {
	if c.WebSocket.MaxSessions < 1 {
		return fmt.Errorf("WS_MAX_SESSIONS must be at least 1")
	}
	if c.WebSocket.ChangeRate <= 0 || c.WebSocket.ChangeBurst < 1 {
		return fmt.Errorf("WS_CHANGE_RATE must be positive and WS_CHANGE_BURST at least 1")
	}
	return nil
}
