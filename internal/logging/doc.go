// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package logging provides centralized zerolog-based logging for Reelscope.

A single process-global zerolog.Logger backs package-level event
constructors, so any package can log without carrying a logger around:

	logging.Info().Str("path", cfg.Dataset.TitlesPath).Msg("Loading dataset")
	logging.Error().Err(err).Msg("Chart build failed")

# Configuration

Init is called once from main with values from internal/config:

	logging.Init(logging.Config{
	    Level:  cfg.Logging.Level,   // LOG_LEVEL: trace..panic, disabled
	    Format: cfg.Logging.Format,  // LOG_FORMAT: json | console
	    Caller: cfg.Logging.Caller,  // LOG_CALLER
	    File: logging.FileConfig{    // LOG_FILE and friends
	        Path:      cfg.Logging.File,
	        MaxSizeMB: cfg.Logging.FileMaxSizeMB,
	    },
	})
	defer logging.Close()

When a file path is configured, events are also written as JSON to a
size-rotated file managed by lumberjack.

# Request Context

HTTP middleware stores a request ID and a correlation ID on the request
context; WebSocket sessions add a session ID. Ctx returns a logger carrying
whichever of them are present:

	logging.Ctx(r.Context()).Warn().Str("control", c).Msg("Rejected change")

# slog Interop

NewSlogLogger adapts the global logger to *slog.Logger for the suture
supervisor (via sutureslog).

# Field Names

time, level, message, error and caller are fixed so that log pipelines can
rely on them.
*/
package logging
