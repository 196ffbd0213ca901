package precommit

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinsync/internal/adapters/config"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
)

// NodeID is the unique identifier for the hook configuration store Graft node.
const NodeID graft.ID = "adapter.hook_config"

func init() {
	graft.Register(graft.Node[ports.HookConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.HookConfigStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.HookConfigName), nil
		},
	})
}
