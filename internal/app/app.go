// Package app implements the application layer for taskprep.
package app

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/tidwall/pretty"
	"go.trai.ch/taskprep/internal/adapters/queue"
	"go.trai.ch/taskprep/internal/core/domain"
	"go.trai.ch/taskprep/internal/core/ports"
	"go.trai.ch/taskprep/internal/engine/configure"
	enginesync "go.trai.ch/taskprep/internal/engine/sync"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests ports.ManifestLoader
	store     ports.ConfigStore
	git       ports.GitState
	builder   *configure.Builder
	syncer    *enginesync.Syncer
	logger    ports.Logger
	out       io.Writer
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	store ports.ConfigStore,
	git ports.GitState,
	builder *configure.Builder,
	syncer *enginesync.Syncer,
	logger ports.Logger,
) *App {
	return &App{
		manifests: manifests,
		store:     store,
		git:       git,
		builder:   builder,
		syncer:    syncer,
		logger:    logger,
		out:       os.Stdout,
	}
}

// SetOutput redirects the emitted config document. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Configure runs the configure pass: every manifest task gets its queued
// targets resolved and its configuration merged into the global store, then
// the merged document is emitted.
func (a *App) Configure(cliTasks []string) error {
	m, err := a.manifests.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	q := queue.New(cliTasks, m)
	for _, name := range slices.Sorted(maps.Keys(m.Tasks)) {
		if err := a.builder.Configure(q, name, taskOptions(m.Tasks[name])); err != nil {
			return zerr.Wrap(err, "configure pass failed")
		}
	}

	if _, err := a.out.Write(pretty.Pretty(a.store.Doc())); err != nil {
		return zerr.Wrap(err, "failed to emit config document")
	}
	return nil
}

// taskOptions wraps a task's per-target config blocks in thunks so unused
// targets never pay the cost of building their configuration.
func taskOptions(task domain.TaskManifest) configure.Options {
	targets := make(map[string]configure.Thunk, len(task.Targets))
	for name, block := range task.Targets {
		targets[name] = func() (map[string]any, error) {
			return block, nil
		}
	}
	return configure.Options{
		DefaultOptions: task.Options,
		Targets:        targets,
		AddGitIgnore:   task.AddGitIgnore,
	}
}

// SyncDeps clones and links the sibling repositories referenced by the
// package manifest. The workspace defaults to the parent directory.
func (a *App) SyncDeps(ctx context.Context) error {
	m, err := a.manifests.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	workspace := m.Workspace
	if workspace == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return zerr.Wrap(err, "failed to resolve working directory")
		}
		workspace = filepath.Dir(cwd)
	}

	return a.syncer.Sync(ctx, ".", workspace)
}

// Status reports the repository state the configure pass depends on.
func (a *App) Status() error {
	dirty, err := a.git.DirtyFiles()
	if err != nil {
		return zerr.Wrap(err, "failed to read dirty files")
	}
	ignore, err := a.git.IgnoreList()
	if err != nil {
		return zerr.Wrap(err, "failed to read ignore list")
	}

	fmt.Fprintf(a.out, "dirty files (%d):\n", len(dirty))
	for _, file := range dirty {
		fmt.Fprintln(a.out, "  "+file)
	}
	fmt.Fprintf(a.out, "ignore entries (%d):\n", len(ignore))
	for _, entry := range ignore {
		fmt.Fprintln(a.out, "  "+entry)
	}
	return nil
}
