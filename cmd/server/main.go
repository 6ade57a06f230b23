// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/hostduel/internal/affiliate"
	"github.com/tomtom215/hostduel/internal/api"
	"github.com/tomtom215/hostduel/internal/clicks"
	"github.com/tomtom215/hostduel/internal/config"
	"github.com/tomtom215/hostduel/internal/logging"
	"github.com/tomtom215/hostduel/internal/metrics"
	"github.com/tomtom215/hostduel/internal/seo"
	"github.com/tomtom215/hostduel/internal/store"
	"github.com/tomtom215/hostduel/internal/supervisor"
	"github.com/tomtom215/hostduel/internal/supervisor/services"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Version: api.Version,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("data_dir", cfg.Data.Dir).
		Msg("Starting HostDuel")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("HostDuel stopped with error")
		stop()
		os.Exit(1)
	}
	logging.Info().Msg("HostDuel stopped gracefully")
}

//nolint:gocyclo // sequential startup steps
func run(ctx context.Context, cfg *config.Config) error {
	snapshot, err := store.Load(ctx, cfg.Data.Dir, logging.WithComponent("store"))
	if err != nil {
		return err
	}
	metrics.SetSnapshotSize(snapshot.Len(), len(snapshot.Skipped()))
	logging.Info().
		Int("records", snapshot.Len()).
		Int("skipped", len(snapshot.Skipped())).
		Msg("Provider snapshot loaded")

	entries, err := affiliate.LoadEntries(cfg.Data.AffiliatesPath, logging.WithComponent("affiliate"))
	if err != nil {
		return err
	}
	resolver := affiliate.NewResolver(entries, snapshot)

	// tracker stays a nil interface when tracking is off.
	var tracker api.ClickTracker
	var clickStore *clicks.Store
	if cfg.Clicks.Enabled {
		clickStore, err = clicks.Open(cfg.Clicks, logging.WithComponent("clicks"))
		if err != nil {
			return err
		}
		defer func() {
			if err := clickStore.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing click store")
			}
		}()
		tracker = clickStore
	} else {
		logging.Info().Msg("Click tracking disabled (CLICKS_ENABLED=false)")
	}

	handler := api.NewHandler(snapshot, resolver, tracker, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout,
	})
	if err != nil {
		return err
	}

	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout, logging.Logger()))

	if clickStore != nil && !cfg.Clicks.InMemory && cfg.Clicks.GCInterval > 0 {
		tree.AddDataService(services.NewClicksGCService(clickStore, cfg.Clicks.GCInterval, logging.Logger()))
	}

	if cfg.IndexNow.Enabled && cfg.IndexNow.SubmitOnStart {
		client := seo.NewIndexNowClient(cfg.IndexNow, cfg.KeyLocation(), logging.WithComponent("indexnow"))
		urls := func() []string { return seo.Locations(handler.SitemapURLs()) }
		tree.AddJobService(services.NewIndexNowService(client, urls, logging.Logger()))
	}

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	err = tree.Serve(ctx)

	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
