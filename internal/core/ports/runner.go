// Package ports defines the core interfaces for the application.
package ports

import "context"

// Runner defines the interface for executing shell commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the command synchronously and returns its combined
	// stdout/stderr output. A non-zero exit status yields an error wrapping
	// domain.ErrCommandFailed with the command and its output attached.
	Run(ctx context.Context, command string) (string, error)
}
