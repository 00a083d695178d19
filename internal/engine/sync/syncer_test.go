package sync_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskprep/internal/adapters/repo"
	"go.trai.ch/taskprep/internal/core/ports/mocks"
	enginesync "go.trai.ch/taskprep/internal/engine/sync"
	"go.uber.org/mock/gomock"
)

const packageJSON = `{
	"name": "ckeditor5",
	"dependencies": {
		"ckeditor5-core": "ckeditor/ckeditor5-core#v1.0.0",
		"lodash": "^4.0.0"
	}
}`

func TestSyncer_Sync_ClonesAndLinksMissingSibling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspace := t.TempDir()

	files := mocks.NewMockFileReader(ctrl)
	files.EXPECT().ReadFile(filepath.Join(".", "package.json")).Return(packageJSON, nil)

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), strings.Join([]string{
			"cd " + workspace,
			"git clone git@github.com:ckeditor/ckeditor5-core.git",
			"cd ckeditor5-core",
			"git checkout v1.0.0",
		}, " && ")).
		Return("", nil)

	linker := mocks.NewMockPackageLinker(ctrl)
	linker.EXPECT().
		Link(gomock.Any(), filepath.Join(workspace, "ckeditor5-core"), ".", "ckeditor5-core").
		Return(nil)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	syncer := enginesync.NewSyncer(runner, files, repo.NewResolver(), linker, log)
	require.NoError(t, syncer.Sync(context.Background(), ".", workspace))
}

func TestSyncer_Sync_SkipsExistingCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspace := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workspace, "ckeditor5-core"), 0o750))

	files := mocks.NewMockFileReader(ctrl)
	files.EXPECT().ReadFile(gomock.Any()).Return(packageJSON, nil)

	// No clone expected, only the link.
	runner := mocks.NewMockRunner(ctrl)

	linker := mocks.NewMockPackageLinker(ctrl)
	linker.EXPECT().
		Link(gomock.Any(), filepath.Join(workspace, "ckeditor5-core"), ".", "ckeditor5-core").
		Return(nil)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	syncer := enginesync.NewSyncer(runner, files, repo.NewResolver(), linker, log)
	require.NoError(t, syncer.Sync(context.Background(), ".", workspace))
}

func TestSyncer_Sync_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	files := mocks.NewMockFileReader(ctrl)
	files.EXPECT().ReadFile(gomock.Any()).Return(`{"dependencies":{"lodash":"^4.0.0"}}`, nil)

	runner := mocks.NewMockRunner(ctrl)
	linker := mocks.NewMockPackageLinker(ctrl)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("no sibling dependencies to sync")

	syncer := enginesync.NewSyncer(runner, files, repo.NewResolver(), linker, log)
	require.NoError(t, syncer.Sync(context.Background(), ".", t.TempDir()))
}

func TestSyncer_Sync_NoDependenciesObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	files := mocks.NewMockFileReader(ctrl)
	files.EXPECT().ReadFile(gomock.Any()).Return(`{"name":"ckeditor5"}`, nil)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	syncer := enginesync.NewSyncer(
		mocks.NewMockRunner(ctrl), files, repo.NewResolver(),
		mocks.NewMockPackageLinker(ctrl), log)
	require.NoError(t, syncer.Sync(context.Background(), ".", t.TempDir()))
}

func TestSyncer_Sync_CloneFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	files := mocks.NewMockFileReader(ctrl)
	files.EXPECT().ReadFile(gomock.Any()).Return(packageJSON, nil)

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return("", assert.AnError)

	linker := mocks.NewMockPackageLinker(ctrl)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	syncer := enginesync.NewSyncer(runner, files, repo.NewResolver(), linker, log)
	require.Error(t, syncer.Sync(context.Background(), ".", t.TempDir()))
}
