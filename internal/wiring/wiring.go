// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/taskprep/internal/adapters/configstore"
	_ "go.trai.ch/taskprep/internal/adapters/fs"
	_ "go.trai.ch/taskprep/internal/adapters/git"
	_ "go.trai.ch/taskprep/internal/adapters/logger"
	_ "go.trai.ch/taskprep/internal/adapters/manifest"
	_ "go.trai.ch/taskprep/internal/adapters/repo"
	_ "go.trai.ch/taskprep/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/taskprep/internal/app"
	_ "go.trai.ch/taskprep/internal/engine/configure"
	_ "go.trai.ch/taskprep/internal/engine/sync"
)
