// Package repo resolves shorthand sibling-repository references and links
// local packages together.
package repo

import (
	"regexp"
	"strings"

	"go.trai.ch/taskprep/internal/core/domain"
)

const (
	// Organization prefix required on shorthand references. Strings without
	// it are not ours to clone.
	referencePrefix = "ckeditor/"

	// DependencyPrefix is the package-name prefix of sibling dependencies.
	DependencyPrefix = "ckeditor5-"
)

var referencePattern = regexp.MustCompile(`^` + referencePrefix + `[^#]+(?:#.*)?$`)

// Resolver implements ports.RepoResolver.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Parse matches reference against the shorthand pattern owner/repo[#ref].
func (r *Resolver) Parse(reference string) (domain.RepositoryReference, bool) {
	if !referencePattern.MatchString(reference) {
		return domain.RepositoryReference{}, false
	}

	repoPath, ref, _ := strings.Cut(reference, "#")
	return domain.RepositoryReference{
		RepoPath: repoPath,
		Ref:      ref,
	}, true
}

// CloneCommands builds the command sequence cloning the referenced
// repository under name into location. With a ref the sequence is four
// steps (cd, clone, cd name, checkout), without it two.
func (r *Resolver) CloneCommands(name, reference, location string) []string {
	parsed, ok := r.Parse(reference)
	if !ok {
		return nil
	}

	commands := []string{
		"cd " + location,
		"git clone git@github.com:" + parsed.RepoPath + ".git",
	}
	if parsed.Ref != "" {
		commands = append(commands,
			"cd "+name,
			"git checkout "+parsed.Ref,
		)
	}
	return commands
}

// FilterDependencies narrows a package manifest's dependency map down to
// the sibling entries.
func (r *Resolver) FilterDependencies(deps map[string]string) map[string]string {
	var filtered map[string]string
	for name, reference := range deps {
		if !strings.HasPrefix(name, DependencyPrefix) {
			continue
		}
		if _, ok := r.Parse(reference); !ok {
			continue
		}
		if filtered == nil {
			filtered = make(map[string]string)
		}
		filtered[name] = reference
	}
	return filtered
}
