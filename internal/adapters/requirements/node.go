package requirements

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinsync/internal/adapters/config"
	"go.trai.ch/pinsync/internal/adapters/logger"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the chain resolver Graft node.
	ResolverNodeID graft.ID = "adapter.requirements_resolver"
	// ExtractorNodeID is the unique identifier for the version extractor Graft node.
	ExtractorNodeID graft.ID = "adapter.requirements_extractor"
)

func init() {
	graft.Register(graft.Node[ports.ChainResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ChainResolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			finder := NewFinder(cfg.RootDir, NewWalker(defaultIgnores...))
			return NewResolver(finder, log, ResolverOptions{
				Marker:       cfg.Marker,
				IncludeToken: cfg.IncludeToken,
				MaxHops:      cfg.MaxChainHops,
			}), nil
		},
	})

	graft.Register(graft.Node[ports.VersionExtractor]{
		ID:        ExtractorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionExtractor, error) {
			return NewExtractor(), nil
		},
	})
}
