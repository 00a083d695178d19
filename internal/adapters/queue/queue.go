// Package queue adapts a CLI invocation to the TaskQueue port.
package queue

import (
	"go.trai.ch/taskprep/internal/core/domain"
)

// CLIQueue implements ports.TaskQueue over the argument list of one
// invocation plus the manifest's default-task member list. It is read-only
// for the process lifetime.
type CLIQueue struct {
	tasks   []string
	members []string
}

// New creates a CLIQueue from the requested task ids and the manifest.
func New(cliTasks []string, m *domain.Manifest) *CLIQueue {
	return &CLIQueue{
		tasks:   cliTasks,
		members: m.Default,
	}
}

// CLITasks returns the requested task ids in CLI order.
func (q *CLIQueue) CLITasks() []string {
	return q.tasks
}

// DefaultTaskMembers returns the default aggregate task's member ids.
func (q *CLIQueue) DefaultTaskMembers() []string {
	return q.members
}
