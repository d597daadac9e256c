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

	"github.com/osse101/LootContainers_Go/internal/catalog"
	"github.com/osse101/LootContainers_Go/internal/config"
	"github.com/osse101/LootContainers_Go/internal/container"
	"github.com/osse101/LootContainers_Go/internal/feed"
	"github.com/osse101/LootContainers_Go/internal/logger"
	"github.com/osse101/LootContainers_Go/internal/looting"
	"github.com/osse101/LootContainers_Go/internal/report"
	"github.com/osse101/LootContainers_Go/internal/scenario"
	"github.com/osse101/LootContainers_Go/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	initLogger(cfg)
	for _, w := range cfg.Warnings() {
		logger.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runID := logger.GenerateRunID()
	ctx = logger.WithRunID(ctx, runID)

	if err := run(ctx, cfg); err != nil {
		logger.FromContext(ctx).Error("Run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.FromContext(ctx)
	log.Info("Starting loot run", "items", cfg.ItemsPath, "containers", cfg.ContainersPath, "scenario", cfg.ScenarioPath)

	loader := feed.NewLoader()
	itemRecords, err := loader.LoadItems(cfg.ItemsPath)
	if err != nil {
		return err
	}
	containerRecords, err := loader.LoadContainers(cfg.ContainersPath)
	if err != nil {
		return err
	}

	cat := catalog.New()
	if err := feed.PopulateCatalog(ctx, cat, itemRecords); err != nil {
		return err
	}
	reg := container.NewRegistry()
	feed.PopulateRegistry(ctx, reg, cat, containerRecords)

	if err := report.WriteInventory(os.Stdout, cat, reg); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}

	if cfg.ScenarioPath != "" {
		if err := runScenario(ctx, cfg.ScenarioPath, cat, reg); err != nil {
			return err
		}
	}

	if !cfg.ServeEnabled() {
		return nil
	}
	return serve(ctx, cfg, cat, reg)
}

func runScenario(ctx context.Context, path string, cat *catalog.Catalog, reg *container.Registry) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	if _, err := sc.Build(ctx, reg); err != nil {
		return err
	}

	outcomes := looting.NewService(reg, cat).Run(ctx, sc.Loot)
	if err := report.WriteOutcomes(os.Stdout, outcomes); err != nil {
		return fmt.Errorf("failed to write outcomes: %w", err)
	}

	if targets := report.Targets(outcomes, reg); len(targets) > 0 {
		fmt.Fprintln(os.Stdout)
		if err := report.WriteListings(os.Stdout, targets); err != nil {
			return fmt.Errorf("failed to write listings: %w", err)
		}
	}
	return nil
}

// serve exposes the final state until ctx is cancelled
func serve(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, reg *container.Registry) error {
	srv := server.NewServer(ctx, cfg.Addr(), cfg.Version, cat, reg)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.FromContext(ctx).Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
