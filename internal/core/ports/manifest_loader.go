package ports

import "go.trai.ch/taskprep/internal/core/domain"

// ManifestLoader defines the interface for loading the task manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given working directory.
	Load(cwd string) (*domain.Manifest, error)
}
