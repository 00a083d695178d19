package configure

import (
	"maps"
	"slices"

	"github.com/tidwall/sjson"
	"go.trai.ch/taskprep/internal/core/domain"
	"go.trai.ch/taskprep/internal/core/ports"
	"go.trai.ch/zerr"
)

// AllTarget is the reserved aggregate target, used as a fallback when no
// individual target was queued. It is never treated as an ordinary target.
const AllTarget = "all"

// Thunk lazily produces a target's configuration. Building a configuration
// may have side effects (scanning the tree for files to lint, say), so the
// builder invokes a thunk at most once and only when its target is selected.
type Thunk func() (map[string]any, error)

// Options parameterizes one Configure call.
type Options struct {
	// DefaultOptions is the task-level options object, stored under
	// <task>.options before any target runs.
	DefaultOptions map[string]any

	// Targets maps target names to their thunks. The AllTarget entry is
	// required.
	Targets map[string]Thunk

	// AddGitIgnore, when non-empty, names a dotted path inside the task's
	// options that receives the memoized .gitignore entries, appended to
	// whatever the global store already holds at that path.
	AddGitIgnore string
}

// Builder implements the multi-target configuration pass.
type Builder struct {
	store  ports.ConfigStore
	git    ports.GitState
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(store ports.ConfigStore, git ports.GitState, logger ports.Logger) *Builder {
	return &Builder{
		store:  store,
		git:    git,
		logger: logger,
	}
}

// Configure builds the configuration for taskName and merges it into the
// global store. Queued targets get their thunk invoked; when none is
// queued the aggregate AllTarget thunk runs instead.
func (b *Builder) Configure(queue ports.TaskQueue, taskName string, opts Options) error {
	allThunk, ok := opts.Targets[AllTarget]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrMissingAllTarget, ""), "task", taskName)
	}

	options := opts.DefaultOptions
	if options == nil {
		options = map[string]any{}
	}

	doc, err := sjson.SetBytes([]byte("{}"), taskName+".options", options)
	if err != nil {
		return zerr.Wrap(err, "failed to seed task options")
	}

	cliTasks := queue.CLITasks()
	members := queue.DefaultTaskMembers()

	// Sorted iteration keeps configure passes deterministic.
	targets := slices.Sorted(maps.Keys(opts.Targets))
	usedAll := true
	for _, target := range targets {
		if target == AllTarget {
			continue
		}
		if !IsQueued(taskName+":"+target, cliTasks, members) {
			continue
		}

		if doc, err = b.buildTarget(doc, taskName, target, opts.Targets[target]); err != nil {
			return err
		}
		usedAll = false
	}

	if usedAll {
		if doc, err = b.buildTarget(doc, taskName, AllTarget, allThunk); err != nil {
			return err
		}
	}

	if opts.AddGitIgnore != "" {
		if doc, err = b.appendIgnoreList(doc, taskName, opts.AddGitIgnore); err != nil {
			return err
		}
	}

	if err := b.store.Merge(doc); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to merge task configuration"), "task", taskName)
	}
	return nil
}

func (b *Builder) buildTarget(doc []byte, taskName, target string, thunk Thunk) ([]byte, error) {
	b.logger.Info("configuring " + taskName + ":" + target)

	cfg, err := thunk()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build target configuration"), "target", taskName+":"+target)
	}

	doc, err = sjson.SetBytes(doc, taskName+"."+target, cfg)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to store target configuration"), "target", taskName+":"+target)
	}
	return doc, nil
}

// appendIgnoreList appends the memoized .gitignore entries to the option
// value at <task>.options.<optionPath>, seeding from the global store.
func (b *Builder) appendIgnoreList(doc []byte, taskName, optionPath string) ([]byte, error) {
	path := taskName + ".options." + optionPath

	entries := stringSlice(b.store.Get(path))

	ignore, err := b.git.IgnoreList()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load ignore list")
	}
	entries = append(entries, ignore...)

	doc, err = sjson.SetBytes(doc, path, entries)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to store ignore list"), "path", path)
	}
	return doc, nil
}

// stringSlice coerces a decoded store value into a string list, treating
// anything else as absent.
func stringSlice(value any, ok bool) []string {
	if !ok {
		return []string{}
	}
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
