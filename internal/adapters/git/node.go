package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskprep/internal/adapters/fs"
	"go.trai.ch/taskprep/internal/adapters/shell"
	"go.trai.ch/taskprep/internal/core/ports"
)

const NodeID graft.ID = "adapter.git_state"

func init() {
	graft.Register(graft.Node[ports.GitState]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.GitState, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			files, err := graft.Dep[ports.FileReader](ctx)
			if err != nil {
				return nil, err
			}
			return NewStateCache(runner, files), nil
		},
	})
}
