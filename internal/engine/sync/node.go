package sync

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskprep/internal/adapters/fs"
	"go.trai.ch/taskprep/internal/adapters/logger"
	"go.trai.ch/taskprep/internal/adapters/repo"
	"go.trai.ch/taskprep/internal/adapters/shell"
	"go.trai.ch/taskprep/internal/core/ports"
)

const NodeID graft.ID = "engine.sync"

func init() {
	graft.Register(graft.Node[*Syncer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.NodeID,
			repo.ResolverNodeID,
			repo.LinkerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Syncer, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			files, err := graft.Dep[ports.FileReader](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.RepoResolver](ctx)
			if err != nil {
				return nil, err
			}
			linker, err := graft.Dep[ports.PackageLinker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSyncer(runner, files, resolver, linker, log), nil
		},
	})
}
