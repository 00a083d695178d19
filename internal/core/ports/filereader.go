package ports

// FileReader is the file-read primitive handed to adapters that parse
// working-tree files, kept narrow so tests can substitute fixture content.
//
//go:generate go run go.uber.org/mock/mockgen -source=filereader.go -destination=mocks/mock_filereader.go -package=mocks
type FileReader interface {
	ReadFile(path string) (string, error)
}
