// Package sync clones and links the sibling repositories referenced by the
// package manifest.
package sync

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/taskprep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// packageManifest is the package manager's manifest file.
const packageManifest = "package.json"

// cloneParallelism bounds concurrent clones; network-bound, so a small
// fixed limit beats NumCPU.
const cloneParallelism = 4

// Syncer brings the workspace's sibling checkouts in line with the package
// manifest: every sibling dependency is cloned when missing and linked into
// the package.
type Syncer struct {
	runner   ports.Runner
	files    ports.FileReader
	resolver ports.RepoResolver
	linker   ports.PackageLinker
	logger   ports.Logger
}

// NewSyncer creates a new Syncer.
func NewSyncer(
	runner ports.Runner,
	files ports.FileReader,
	resolver ports.RepoResolver,
	linker ports.PackageLinker,
	logger ports.Logger,
) *Syncer {
	return &Syncer{
		runner:   runner,
		files:    files,
		resolver: resolver,
		linker:   linker,
		logger:   logger,
	}
}

// Sync reads dir's package manifest, filters its dependencies down to
// shorthand sibling references, clones the ones missing from workspace and
// links each into dir.
func (s *Syncer) Sync(ctx context.Context, dir, workspace string) error {
	deps, err := s.dependencies(dir)
	if err != nil {
		return err
	}

	siblings := s.resolver.FilterDependencies(deps)
	if siblings == nil {
		s.logger.Info("no sibling dependencies to sync")
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cloneParallelism)
	for name, reference := range siblings {
		g.Go(func() error {
			if err := s.ensureCloned(gctx, name, reference, workspace); err != nil {
				return err
			}
			return s.linker.Link(gctx, filepath.Join(workspace, name), dir, name)
		})
	}
	return g.Wait()
}

// dependencies extracts the dependencies object from dir's package manifest.
func (s *Syncer) dependencies(dir string) (map[string]string, error) {
	raw, err := s.files.ReadFile(filepath.Join(dir, packageManifest))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read package manifest")
	}

	result := gjson.Get(raw, "dependencies")
	if !result.Exists() {
		return nil, nil
	}

	deps := make(map[string]string)
	result.ForEach(func(key, value gjson.Result) bool {
		deps[key.String()] = value.String()
		return true
	})
	return deps, nil
}

func (s *Syncer) ensureCloned(ctx context.Context, name, reference, workspace string) error {
	if _, err := os.Stat(filepath.Join(workspace, name)); err == nil {
		s.logger.Info(name + ": already cloned")
		return nil
	}

	commands := s.resolver.CloneCommands(name, reference, workspace)
	if len(commands) == 0 {
		return nil
	}

	if _, err := s.runner.Run(ctx, strings.Join(commands, " && ")); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clone sibling"), "package", name)
	}
	return nil
}
