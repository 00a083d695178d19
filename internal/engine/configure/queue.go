// Package configure decides which targets of a multi-target task run and
// merges their configuration into the global store.
package configure

import "slices"

// DefaultTaskName is the queue entry selecting the default aggregate task.
const DefaultTaskName = "default"

// IsQueued reports whether taskID was requested on the CLI. A task id is
// queued when it appears verbatim in the queue, or when the default
// selection is active (empty queue, or "default" queued) and the id is an
// exact member of the default aggregate task.
func IsQueued(taskID string, queue, defaultMembers []string) bool {
	if slices.Contains(queue, taskID) {
		return true
	}
	if len(queue) == 0 || slices.Contains(queue, DefaultTaskName) {
		return slices.Contains(defaultMembers, taskID)
	}
	return false
}
