// Package manifest provides the taskprep.yaml loader.
package manifest

import (
	"os"
	"path/filepath"

	"go.trai.ch/taskprep/internal/core/domain"
	"go.trai.ch/taskprep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the manifest file looked up in the working directory.
const Filename = "taskprep.yaml"

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the manifest from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	return Load(filepath.Join(cwd, Filename))
}

type manifestDTO struct {
	Version   string             `yaml:"version"`
	Default   []string           `yaml:"default"`
	Workspace string             `yaml:"workspace"`
	Tasks     map[string]taskDTO `yaml:"tasks"`
}

type taskDTO struct {
	Options      map[string]any            `yaml:"options"`
	AddGitIgnore string                    `yaml:"addGitIgnore"`
	Targets      map[string]map[string]any `yaml:"targets"`
}

// Load reads a manifest file from the given path.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest file")
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest file")
	}

	m := &domain.Manifest{
		Version:   dto.Version,
		Default:   dto.Default,
		Workspace: dto.Workspace,
		Tasks:     make(map[string]domain.TaskManifest, len(dto.Tasks)),
	}

	for name, task := range dto.Tasks {
		// "default" names the aggregate selection, never a concrete task.
		if name == "default" {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestInvalid, ""), "task_name", name)
		}

		// Every multi-target task needs the aggregate fallback.
		if _, ok := task.Targets["all"]; !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingAllTarget, ""), "task_name", name)
		}

		m.Tasks[name] = domain.TaskManifest{
			Options:      task.Options,
			AddGitIgnore: task.AddGitIgnore,
			Targets:      task.Targets,
		}
	}

	return m, nil
}
