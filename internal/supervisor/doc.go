// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package supervisor runs the long-lived parts of the dashboard server under a
suture v4 supervision tree.

	reelscope
	├── maintenance
	│   └── CacheCleanupService (when CACHE_ENABLED)
	├── sessions
	│   └── WebSocketHubService
	└── api
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Each layer counts its
own failures, so a hub that keeps crashing backs off without touching the
HTTP server. Supervisor events are logged through sutureslog into the slog
adapter of the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddSessionService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(srv, srv.Addr, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

Service wrappers live in the services subpackage.
*/
package supervisor
