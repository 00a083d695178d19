package configstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskprep/internal/core/ports"
)

const NodeID graft.ID = "adapter.config_store"

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigStore, error) {
			return New(), nil
		},
	})
}
