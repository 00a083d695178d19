package ports

import (
	"context"

	"go.trai.ch/taskprep/internal/core/domain"
)

// RepoResolver resolves shorthand sibling-repository references.
//
//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=mocks/mock_repo.go -package=mocks
type RepoResolver interface {
	// Parse matches a shorthand reference of the form ckeditor/<repo>[#<ref>].
	// A non-matching string reports ok=false; that is a normal "does not
	// apply" outcome, not an error.
	Parse(reference string) (domain.RepositoryReference, bool)

	// CloneCommands returns the command sequence that clones the referenced
	// repository into location and checks out the ref when one is present.
	// A parse miss yields nil. The caller joins the sequence with "&&".
	CloneCommands(name, reference, location string) []string

	// FilterDependencies keeps the entries whose key carries the sibling
	// package prefix and whose value parses as a shorthand reference. It
	// returns nil, never an empty map, when nothing matches.
	FilterDependencies(deps map[string]string) map[string]string
}

// PackageLinker links a local package into another local package's
// dependency tree via the package manager's link mechanism.
type PackageLinker interface {
	Link(ctx context.Context, sourcePath, destinationPath, packageName string) error
}
