package ports

// GitState exposes memoized views of the repository state. Both lists are
// computed at most once per process and never invalidated.
//
//go:generate go run go.uber.org/mock/mockgen -source=gitstate.go -destination=mocks/mock_gitstate.go -package=mocks
type GitState interface {
	// IgnoreList returns the parsed .gitignore entries.
	IgnoreList() ([]string, error)

	// DirtyFiles returns the files differing between the index and HEAD.
	DirtyFiles() ([]string, error)
}
