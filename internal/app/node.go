package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinsync/internal/adapters/catalog"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pinsync/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pinsync/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pinsync/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pinsync/internal/adapters/precommit" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinsync/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
	"go.trai.ch/pinsync/internal/engine/reconcile"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			precommit.NodeID,
			reconcile.NodeID,
			catalog.RegistryNodeID,
			report.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	hooks, err := graft.Dep[ports.HookConfigStore](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*reconcile.Engine](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[ports.Registry](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[ports.MetricsSink](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, hooks, engine, registry, reporter, sink, log), nil
}
