package repo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskprep/internal/adapters/shell"
	"go.trai.ch/taskprep/internal/core/ports"
)

const (
	ResolverNodeID graft.ID = "adapter.repo_resolver"
	LinkerNodeID   graft.ID = "adapter.package_linker"
)

func init() {
	graft.Register(graft.Node[ports.RepoResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RepoResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.PackageLinker]{
		ID:        LinkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageLinker, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewLinker(runner), nil
		},
	})
}
