package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskprep/internal/core/ports"
)

const NodeID graft.ID = "adapter.fs"

func init() {
	graft.Register(graft.Node[ports.FileReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileReader, error) {
			return NewReader(), nil
		},
	})
}
