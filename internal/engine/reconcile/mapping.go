package reconcile

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/pinsync/internal/core/domain"
)

// Mapping returns the registry mapping, regenerating it when the cache is stale.
func (e *Engine) Mapping(ctx context.Context) (domain.RegistryMapping, error) {
	mapping, _, err := e.loadMapping(ctx, false)
	return mapping, err
}

// RefreshMapping regenerates and stores the registry mapping unconditionally.
func (e *Engine) RefreshMapping(ctx context.Context) (domain.RegistryMapping, error) {
	mapping, _, err := e.loadMapping(ctx, true)
	return mapping, err
}

// loadMapping returns the mapping and whether it was rebuilt. A fresh cache
// is reused as is; a cache that exists but cannot be decoded is an error.
func (e *Engine) loadMapping(ctx context.Context, force bool) (domain.RegistryMapping, bool, error) {
	path := e.cfg.MappingFile

	if !force {
		fresh, err := e.cache.IsFresh(path, e.cfg.CacheTTL, e.cfg.CacheMinSize)
		if err != nil {
			e.logger.Warn("cannot check mapping cache, regenerating: " + err.Error())
		}
		if fresh {
			mapping, err := e.cache.Load(path)
			if err != nil {
				return nil, false, err
			}
			if mapping != nil {
				e.logger.Debug(fmt.Sprintf("reusing mapping of %d repositories from %s", len(mapping), path))
				return mapping, false, nil
			}
		}
	}

	e.logger.Info("generating registry mapping from the pre-commit catalog")
	mapping, err := e.fetcher.BuildMapping(ctx)
	if err != nil {
		if stale, ok := e.staleMapping(err); ok {
			return stale, false, nil
		}
		return nil, false, err
	}

	if err := e.cache.Store(path, mapping); err != nil {
		e.logger.Warn("mapping not cached: " + err.Error())
	}
	return mapping, true, nil
}

// staleMapping returns the stored mapping when fallback is enabled and the
// build failed because the registry could not be reached.
func (e *Engine) staleMapping(buildErr error) (domain.RegistryMapping, bool) {
	if !e.cfg.StaleCacheFallback {
		return nil, false
	}
	if !errors.Is(buildErr, domain.ErrRegistryUnavailable) && !errors.Is(buildErr, domain.ErrRegistryResponseInvalid) {
		return nil, false
	}

	stale, err := e.cache.Load(e.cfg.MappingFile)
	if err != nil || len(stale) == 0 {
		return nil, false
	}
	e.logger.Warn(fmt.Sprintf("registry unavailable, using stale mapping from %s", e.cfg.MappingFile))
	return stale, true
}
