// Package reconcile compares pre-commit hook pins with the versions locked by
// pip-compile and optionally rewrites drifted pins.
package reconcile

import (
	"context"
	"fmt"

	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls a single reconciliation run.
type Options struct {
	// Patch rewrites drifted pins to the locked version.
	Patch bool
	// Force regenerates the registry mapping even when the cache is fresh.
	Force bool
}

// Engine runs reconciliations. It holds no state between runs.
type Engine struct {
	cfg       *domain.Config
	hooks     ports.HookConfigStore
	cache     ports.MappingCache
	fetcher   ports.CatalogFetcher
	resolver  ports.ChainResolver
	extractor ports.VersionExtractor
	logger    ports.Logger
}

// NewEngine creates a new Engine.
func NewEngine(
	cfg *domain.Config,
	hooks ports.HookConfigStore,
	cache ports.MappingCache,
	fetcher ports.CatalogFetcher,
	resolver ports.ChainResolver,
	extractor ports.VersionExtractor,
	logger ports.Logger,
) *Engine {
	return &Engine{
		cfg:       cfg,
		hooks:     hooks,
		cache:     cache,
		fetcher:   fetcher,
		resolver:  resolver,
		extractor: extractor,
		logger:    logger,
	}
}

// Reconcile compares every pinned hook in configPath with the locked version
// of its registry project. Structural failures abort the run; failures to
// patch a single hook are collected in Result.Errors.
func (e *Engine) Reconcile(ctx context.Context, configPath string, opts Options) (*domain.Result, error) {
	entries, err := e.hooks.ReadAll(configPath)
	if err != nil {
		return nil, err
	}

	terminal, err := e.resolver.Resolve(e.cfg.RootRequirements)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("locked versions come from " + terminal)

	mapping, regenerated, err := e.loadMapping(ctx, opts.Force)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{})
	for _, entry := range entries {
		if project := mapping.Project(entry.Repo); project != "" {
			wanted[project] = struct{}{}
		}
	}

	locked, err := e.extractor.Extract(terminal, wanted)
	if err != nil {
		return nil, err
	}

	result := &domain.Result{
		ConfigPath:         configPath,
		RequirementsFile:   terminal,
		Hooks:              len(entries),
		MappingRegenerated: regenerated,
		MappingSize:        len(mapping),
	}
	unlocked := make(map[string]struct{})

	for _, entry := range entries {
		project := mapping.Project(entry.Repo)
		if project == "" {
			e.logger.Debug("no registry project for " + entry.Repo)
			continue
		}
		result.Mapped++

		lockedVersion, ok := locked[project]
		if !ok {
			if _, seen := unlocked[project]; !seen {
				unlocked[project] = struct{}{}
				result.Unlocked = append(result.Unlocked, project)
			}
			continue
		}

		declared, err := domain.NormalizeVersion(entry.Rev)
		if err != nil {
			result.Errors = append(result.Errors, zerr.With(zerr.Wrap(err, "invalid declared rev"), "repo", entry.Repo))
			continue
		}
		if declared == lockedVersion {
			continue
		}

		rec := domain.MismatchRecord{
			Repo:     entry.Repo,
			Project:  project,
			Locked:   lockedVersion,
			Declared: declared,
		}
		if opts.Patch {
			if err := e.patch(configPath, entry, lockedVersion); err != nil {
				result.Errors = append(result.Errors, err)
			} else {
				rec.Patched = true
			}
		}
		result.Mismatches = append(result.Mismatches, rec)
	}

	e.logger.Debug(fmt.Sprintf("compared %d hooks, %d mapped, %d drifted", result.Hooks, result.Mapped, len(result.Mismatches)))
	return result, nil
}

func (e *Engine) patch(configPath string, entry domain.HookEntry, version string) error {
	rev := version
	if e.cfg.KeepRevPrefix {
		rev = domain.VersionPrefix(entry.Rev) + version
	}
	if err := e.hooks.WriteVersion(configPath, entry.Repo, rev); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to patch hook"), "repo", entry.Repo)
	}
	e.logger.Debug(fmt.Sprintf("rewrote %s to %s", entry.Repo, rev))
	return nil
}
