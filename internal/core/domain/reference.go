package domain

// RepositoryReference is a parsed shorthand GitHub reference of the form
// owner/repo[#ref]. Ref is empty when the shorthand carries no commit-ish.
type RepositoryReference struct {
	RepoPath string
	Ref      string
}
