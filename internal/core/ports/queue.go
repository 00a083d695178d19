package ports

// TaskQueue is the task runner's view of what the user asked for on the
// command line.
//
//go:generate go run go.uber.org/mock/mockgen -source=queue.go -destination=mocks/mock_queue.go -package=mocks
type TaskQueue interface {
	// CLITasks returns the requested task ids in CLI order. An empty slice
	// means "run the default selection".
	CLITasks() []string

	// DefaultTaskMembers returns the task ids that make up the default
	// aggregate task. An undeclared default task yields an empty slice.
	DefaultTaskMembers() []string
}
