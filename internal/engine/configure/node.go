package configure

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskprep/internal/adapters/configstore"
	"go.trai.ch/taskprep/internal/adapters/git"
	"go.trai.ch/taskprep/internal/adapters/logger"
	"go.trai.ch/taskprep/internal/core/ports"
)

const NodeID graft.ID = "engine.configure"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{configstore.NodeID, git.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			store, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}
			gitState, err := graft.Dep[ports.GitState](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(store, gitState, log), nil
		},
	})
}
