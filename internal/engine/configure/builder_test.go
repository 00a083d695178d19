package configure_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.trai.ch/taskprep/internal/adapters/configstore"
	"go.trai.ch/taskprep/internal/core/domain"
	"go.trai.ch/taskprep/internal/core/ports/mocks"
	"go.trai.ch/taskprep/internal/engine/configure"
	"go.uber.org/mock/gomock"
)

// countingThunk returns a thunk that records how often it was invoked.
func countingThunk(cfg map[string]any, calls *int) configure.Thunk {
	return func() (map[string]any, error) {
		*calls++
		return cfg, nil
	}
}

func newTestQueue(ctrl *gomock.Controller, tasks, members []string) *mocks.MockTaskQueue {
	q := mocks.NewMockTaskQueue(ctrl)
	q.EXPECT().CLITasks().Return(tasks).AnyTimes()
	q.EXPECT().DefaultTaskMembers().Return(members).AnyTimes()
	return q
}

func newTestLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func TestConfigure_FallsBackToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := configstore.New()
	git := mocks.NewMockGitState(ctrl)
	builder := configure.NewBuilder(store, git, newTestLogger(ctrl))

	var allCalls, scriptsCalls int
	opts := configure.Options{
		DefaultOptions: map[string]any{"debug": true},
		Targets: map[string]configure.Thunk{
			"all":     countingThunk(map[string]any{"files": "**/*"}, &allCalls),
			"scripts": countingThunk(map[string]any{"files": "**/*.js"}, &scriptsCalls),
		},
	}

	// "compile" is queued without any target suffix, so no individual
	// target matches and the aggregate runs.
	queue := newTestQueue(ctrl, []string{"compile"}, nil)
	require.NoError(t, builder.Configure(queue, "compile", opts))

	require.Equal(t, 1, allCalls)
	require.Equal(t, 0, scriptsCalls)

	doc := string(store.Doc())
	require.Equal(t, "**/*", gjson.Get(doc, "compile.all.files").String())
	require.False(t, gjson.Get(doc, "compile.scripts").Exists())
	require.True(t, gjson.Get(doc, "compile.options.debug").Bool())
}

func TestConfigure_QueuedTargetSuppressesAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := configstore.New()
	git := mocks.NewMockGitState(ctrl)
	builder := configure.NewBuilder(store, git, newTestLogger(ctrl))

	var allCalls, scriptsCalls, stylesCalls int
	opts := configure.Options{
		Targets: map[string]configure.Thunk{
			"all":     countingThunk(map[string]any{"files": "**/*"}, &allCalls),
			"scripts": countingThunk(map[string]any{"files": "**/*.js"}, &scriptsCalls),
			"styles":  countingThunk(map[string]any{"files": "**/*.css"}, &stylesCalls),
		},
	}

	queue := newTestQueue(ctrl, []string{"compile:scripts"}, nil)
	require.NoError(t, builder.Configure(queue, "compile", opts))

	require.Equal(t, 0, allCalls, "the aggregate thunk must not run when a target was queued")
	require.Equal(t, 1, scriptsCalls)
	require.Equal(t, 0, stylesCalls)

	doc := string(store.Doc())
	require.Equal(t, "**/*.js", gjson.Get(doc, "compile.scripts.files").String())
	require.False(t, gjson.Get(doc, "compile.all").Exists())
}

func TestConfigure_DefaultSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := configstore.New()
	git := mocks.NewMockGitState(ctrl)
	builder := configure.NewBuilder(store, git, newTestLogger(ctrl))

	var scriptsCalls int
	opts := configure.Options{
		Targets: map[string]configure.Thunk{
			"all":     countingThunk(nil, new(int)),
			"scripts": countingThunk(map[string]any{"files": "**/*.js"}, &scriptsCalls),
		},
	}

	// Empty queue plus default membership selects the target.
	queue := newTestQueue(ctrl, nil, []string{"compile:scripts"})
	require.NoError(t, builder.Configure(queue, "compile", opts))
	require.Equal(t, 1, scriptsCalls)
}

func TestConfigure_ThunksRunAtMostOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := configstore.New()
	git := mocks.NewMockGitState(ctrl)
	builder := configure.NewBuilder(store, git, newTestLogger(ctrl))

	var scriptsCalls int
	opts := configure.Options{
		Targets: map[string]configure.Thunk{
			"all":     countingThunk(nil, new(int)),
			"scripts": countingThunk(map[string]any{}, &scriptsCalls),
		},
	}

	// The id matches both verbatim (twice) and through the default
	// selection; the thunk still runs once.
	queue := newTestQueue(ctrl,
		[]string{"compile:scripts", "compile:scripts", "default"},
		[]string{"compile:scripts"})
	require.NoError(t, builder.Configure(queue, "compile", opts))
	require.Equal(t, 1, scriptsCalls)
}

func TestConfigure_MissingAllTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := configstore.New()
	git := mocks.NewMockGitState(ctrl)
	builder := configure.NewBuilder(store, git, newTestLogger(ctrl))

	opts := configure.Options{
		Targets: map[string]configure.Thunk{
			"scripts": countingThunk(nil, new(int)),
		},
	}

	err := builder.Configure(newTestQueue(ctrl, nil, nil), "compile", opts)
	require.ErrorIs(t, err, domain.ErrMissingAllTarget)
}

func TestConfigure_AppendsIgnoreList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := configstore.New()
	require.NoError(t, store.Set("lint.options.ignoredFiles", []string{"coverage/"}))

	git := mocks.NewMockGitState(ctrl)
	git.EXPECT().IgnoreList().Return([]string{"node_modules", "build"}, nil)

	builder := configure.NewBuilder(store, git, newTestLogger(ctrl))

	opts := configure.Options{
		Targets: map[string]configure.Thunk{
			"all": countingThunk(map[string]any{}, new(int)),
		},
		AddGitIgnore: "ignoredFiles",
	}

	require.NoError(t, builder.Configure(newTestQueue(ctrl, []string{"lint:all"}, nil), "lint", opts))

	var got []string
	for _, entry := range gjson.GetBytes(store.Doc(), "lint.options.ignoredFiles").Array() {
		got = append(got, entry.String())
	}
	require.Equal(t, []string{"coverage/", "node_modules", "build"}, got)
}

func TestConfigure_MergeKeepsUnrelatedKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := configstore.New()
	require.NoError(t, store.Set("other.options.verbose", true))

	git := mocks.NewMockGitState(ctrl)
	builder := configure.NewBuilder(store, git, newTestLogger(ctrl))

	opts := configure.Options{
		Targets: map[string]configure.Thunk{
			"all": countingThunk(map[string]any{"files": "**/*"}, new(int)),
		},
	}

	require.NoError(t, builder.Configure(newTestQueue(ctrl, nil, nil), "compile", opts))

	doc := string(store.Doc())
	require.True(t, gjson.Get(doc, "other.options.verbose").Bool())
	require.Equal(t, "**/*", gjson.Get(doc, "compile.all.files").String())
}

func TestConfigure_ThunkErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := configstore.New()
	git := mocks.NewMockGitState(ctrl)
	builder := configure.NewBuilder(store, git, newTestLogger(ctrl))

	opts := configure.Options{
		Targets: map[string]configure.Thunk{
			"all": func() (map[string]any, error) {
				return nil, domain.ErrTaskNotFound
			},
		},
	}

	err := builder.Configure(newTestQueue(ctrl, nil, nil), "compile", opts)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	// Nothing was merged.
	require.Equal(t, "{}", string(store.Doc()))
}
