package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskprep/internal/adapters/configstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/taskprep/internal/adapters/git"         //nolint:depguard // Wired in app layer
	"go.trai.ch/taskprep/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/taskprep/internal/adapters/manifest"    //nolint:depguard // Wired in app layer
	"go.trai.ch/taskprep/internal/core/ports"
	"go.trai.ch/taskprep/internal/engine/configure"
	enginesync "go.trai.ch/taskprep/internal/engine/sync"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the App with the adapters the CLI needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
	Store  ports.ConfigStore
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			configstore.NodeID,
			git.NodeID,
			configure.NodeID,
			enginesync.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}
			gitState, err := graft.Dep[ports.GitState](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[*configure.Builder](ctx)
			if err != nil {
				return nil, err
			}
			syncer, err := graft.Dep[*enginesync.Syncer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(manifests, store, gitState, builder, syncer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			configstore.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    a,
				Logger: log,
				Store:  store,
			}, nil
		},
	})
}
