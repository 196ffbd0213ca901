// Package app implements the application layer for pinsync.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
	"go.trai.ch/pinsync/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg      *domain.Config
	hooks    ports.HookConfigStore
	engine   *reconcile.Engine
	registry ports.Registry
	reporter ports.Reporter
	metrics  ports.MetricsSink
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	hooks ports.HookConfigStore,
	engine *reconcile.Engine,
	registry ports.Registry,
	reporter ports.Reporter,
	metrics ports.MetricsSink,
	log ports.Logger,
) *App {
	return &App{
		cfg:      cfg,
		hooks:    hooks,
		engine:   engine,
		registry: registry,
		reporter: reporter,
		metrics:  metrics,
		logger:   log,
	}
}

// SyncOptions configuration for the Sync method.
type SyncOptions struct {
	// Force regenerates the registry mapping even when the cache is fresh.
	Force bool
	// Patch writes locked versions back into the pre-commit configuration.
	Patch bool
}

// Sync reconciles the pre-commit configuration of the project root with the
// pip-compile output and reports the outcome.
// It returns domain.ErrDriftDetected when at least one hook drifted.
func (a *App) Sync(ctx context.Context, opts SyncOptions) error {
	// 1. Locate the hook configuration
	configPath, err := a.hooks.Find(a.cfg.RootDir)
	if err != nil {
		return err
	}

	// 2. Reconcile
	result, err := a.engine.Reconcile(ctx, configPath, reconcile.Options{
		Patch: opts.Patch,
		Force: opts.Force,
	})
	if err != nil {
		return zerr.Wrap(err, "reconciliation failed")
	}

	// 3. Report
	for _, rec := range result.Mismatches {
		a.reporter.Mismatch(rec)
	}
	a.reporter.Summary(result)

	if err := a.metrics.Record(result); err != nil {
		a.logger.Warn(err.Error())
	}

	if !result.InSync() {
		return domain.ErrDriftDetected
	}
	return nil
}

// RefreshMapping rebuilds the registry mapping and stores it in the cache.
func (a *App) RefreshMapping(ctx context.Context) error {
	mapping, err := a.engine.RefreshMapping(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to refresh mapping")
	}

	a.logger.Info(fmt.Sprintf("mapping refreshed: %d repositories, %d with a registry project",
		len(mapping), mapping.Mapped()))
	return nil
}

// ShowMapping lists the registry mapping, regenerating it when the cache is stale.
// With latest set, the newest registry release of each mapped project is shown too.
func (a *App) ShowMapping(ctx context.Context, latest bool) error {
	mapping, err := a.engine.Mapping(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to load mapping")
	}

	entries := mapping.Entries()
	if latest {
		for i := range entries {
			if entries[i].Project == "" {
				continue
			}
			version, found, err := a.registry.LatestVersion(ctx, entries[i].Project)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to look up latest version"), "project", entries[i].Project)
			}
			if found {
				entries[i].Latest = version
			}
		}
	}

	a.reporter.Mapping(entries)
	return nil
}
