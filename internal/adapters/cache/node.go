package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinsync/internal/core/ports"
)

// NodeID is the unique identifier for the mapping cache Graft node.
const NodeID graft.ID = "adapter.mapping_cache"

func init() {
	graft.Register(graft.Node[ports.MappingCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MappingCache, error) {
			return NewFileCache(), nil
		},
	})
}
