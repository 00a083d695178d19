package ports

// ConfigStore is the task runner's global configuration store. Paths are
// dotted (e.g. "compile.options.ignoredFiles").
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ConfigStore interface {
	// Get returns the decoded value at path, or ok=false when absent.
	Get(path string) (any, bool)

	// Set writes a value at path, creating intermediate objects as needed.
	Set(path string, value any) error

	// Merge merges a JSON document into the store: scalars and arrays
	// overwrite, objects merge key-wise recursively. Keys absent from the
	// document survive untouched.
	Merge(doc []byte) error

	// Doc returns the store contents as a JSON document.
	Doc() []byte
}
