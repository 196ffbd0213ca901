package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinsync/internal/adapters/config"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
)

// NodeID is the unique identifier for the metrics sink Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.MetricsSink]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.MetricsSink, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewTextfile(cfg.MetricsFile), nil
		},
	})
}
