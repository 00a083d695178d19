// Package domain contains the core domain models for the configure pass.
package domain

// Manifest is the declarative description of the runner's multi-target tasks,
// loaded from the taskprep.yaml file at the workspace root.
type Manifest struct {
	Version string

	// Default lists the task ids (e.g. "compile:scripts") that run when the
	// CLI queue is empty or names "default".
	Default []string

	// Workspace is the directory sibling repositories are cloned into.
	// Defaults to the parent of the current working directory.
	Workspace string

	Tasks map[string]TaskManifest
}

// TaskManifest declares one multi-target task.
type TaskManifest struct {
	// Options is the task-level options object, stored under <task>.options.
	Options map[string]any

	// AddGitIgnore, when set, names a dotted path inside the task's options
	// that receives the parsed .gitignore entries.
	AddGitIgnore string

	// Targets maps target names to their configuration blocks. The "all"
	// entry is required; it is the aggregate fallback, not an ordinary target.
	Targets map[string]map[string]any
}

// Task returns the named task manifest.
func (m *Manifest) Task(name string) (TaskManifest, bool) {
	t, ok := m.Tasks[name]
	return t, ok
}
