// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"

	_ "github.com/tomtom215/reelscope/docs" // generated swagger docs
	"github.com/tomtom215/reelscope/internal/api"
	"github.com/tomtom215/reelscope/internal/binding"
	"github.com/tomtom215/reelscope/internal/cache"
	"github.com/tomtom215/reelscope/internal/catalog"
	"github.com/tomtom215/reelscope/internal/config"
	"github.com/tomtom215/reelscope/internal/dashboard"
	"github.com/tomtom215/reelscope/internal/database"
	"github.com/tomtom215/reelscope/internal/logging"
	"github.com/tomtom215/reelscope/internal/metrics"
	"github.com/tomtom215/reelscope/internal/supervisor"
	"github.com/tomtom215/reelscope/internal/supervisor/services"
	ws "github.com/tomtom215/reelscope/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger: config not yet available.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
		File: logging.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.FileMaxSizeMB,
			MaxBackups: cfg.Logging.FileMaxBackups,
			MaxAgeDays: cfg.Logging.FileMaxAgeDays,
		},
	})
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
		}
	}()

	logging.Info().
		Str("titles_path", cfg.Dataset.TitlesPath).
		Str("country_codes_path", cfg.Dataset.CountryCodesPath).
		Str("loader", cfg.Dataset.Loader).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Reelscope")

	ds, err := loadDataset(cfg)
	if err != nil {
		// The server never starts on missing or malformed input files.
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	svc := dashboard.NewService(ds)
	binder, err := binding.NewBinder(svc, binding.Defaults{
		GeoStartYear:         cfg.Dashboard.GeoStartYear,
		GeoEndYear:           cfg.Dashboard.GeoEndYear,
		CategoricalStartYear: cfg.Dashboard.CategoricalStartYear,
		CategoricalEndYear:   cfg.Dashboard.CategoricalEndYear,
		CategoricalFeature:   mustColumn(cfg.Dashboard.CategoricalDefaultFeature),
		PeopleColumn:         mustColumn(cfg.Dashboard.PeopleDefaultColumn),
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build dashboard pages")
	}

	hub := ws.NewHub(binder, ws.Config{
		MaxSessions: cfg.WebSocket.MaxSessions,
		ChangeRate:  cfg.WebSocket.ChangeRate,
		ChangeBurst: cfg.WebSocket.ChangeBurst,
	})

	var responseCache *cache.Cache
	if cfg.Cache.Enabled {
		responseCache = cache.NewWithCapacity("api", cfg.Cache.TTL, cfg.Cache.MaxEntries)
	}

	handler := api.NewHandler(svc, binder, hub, responseCache, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	if responseCache != nil {
		tree.AddMaintenanceService(services.NewCacheCleanupService(responseCache, cache.DefaultCleanupInterval))
	}
	tree.AddSessionService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Bool("cache", responseCache != nil).Msg("Services added to supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, s := range unstopped {
			logging.Warn().Str("service", s.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Reelscope stopped")
}

// loadDataset reads both CSV files from the OS filesystem. With the duckdb
// loader the titles file is parsed by DuckDB's read_csv and the database is
// closed once the table is materialized.
func loadDataset(cfg *config.Config) (*catalog.Dataset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	loader := catalog.NewLoader(afero.NewOsFs()).WithWorkers(cfg.Dataset.LoadWorkers)

	if cfg.Dataset.Loader == config.LoaderDuckDB {
		db, err := database.New(cfg.DuckDB)
		if err != nil {
			return nil, fmt.Errorf("open duckdb: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logging.Warn().Err(err).Msg("Error closing database")
			}
		}()
		loader = loader.WithTitleReader(database.NewTitleReader(db))
	}

	ds, err := loader.Load(ctx, cfg.Dataset.TitlesPath, cfg.Dataset.CountryCodesPath)
	if err != nil {
		return nil, err
	}

	metrics.RecordDatasetLoad(cfg.Dataset.Loader, ds.Titles.Len(), ds.Codes.Len(), time.Since(start))
	return ds, nil
}

// mustColumn resolves a configured column name. config.Validate has
// already checked it, so failure is a programming error.
func mustColumn(name string) catalog.Column {
	c, err := catalog.ParseColumn(name)
	if err != nil {
		logging.Fatal().Err(err).Str("column", name).Msg("Invalid column in configuration")
	}
	return c
}
