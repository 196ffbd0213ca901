package reconcile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinsync/internal/adapters/cache"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinsync/internal/adapters/catalog"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinsync/internal/adapters/config"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinsync/internal/adapters/logger"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinsync/internal/adapters/precommit"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinsync/internal/adapters/requirements" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
)

// NodeID is the unique identifier for the reconciliation engine Graft node.
const NodeID graft.ID = "engine.reconcile"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			precommit.NodeID,
			cache.NodeID,
			catalog.NodeID,
			requirements.ResolverNodeID,
			requirements.ExtractorNodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			hooks, err := graft.Dep[ports.HookConfigStore](ctx)
			if err != nil {
				return nil, err
			}

			mappingCache, err := graft.Dep[ports.MappingCache](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.CatalogFetcher](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ChainResolver](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.VersionExtractor](ctx)
			if err != nil {
				return nil, err
			}

			return NewEngine(cfg, hooks, mappingCache, fetcher, resolver, extractor, log), nil
		},
	})
}
