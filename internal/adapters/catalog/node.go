package catalog

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinsync/internal/adapters/config"
	"go.trai.ch/pinsync/internal/adapters/logger"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
)

const (
	// RegistryNodeID is the unique identifier for the package registry Graft node.
	RegistryNodeID graft.ID = "adapter.registry"
	// NodeID is the unique identifier for the catalog fetcher Graft node.
	NodeID graft.ID = "adapter.catalog"
)

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewPyPI(cfg.RegistryURL, &http.Client{Timeout: cfg.HTTPTimeout})
		},
	})

	graft.Register(graft.Node[ports.CatalogFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, RegistryNodeID},
		Run: func(ctx context.Context) (ports.CatalogFetcher, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, registry, log, Options{
				CatalogURL:    cfg.CatalogURL,
				Languages:     cfg.Languages,
				ManualMapping: cfg.ManualMapping,
				Concurrency:   cfg.LookupConcurrency,
			}), nil
		},
	})
}
