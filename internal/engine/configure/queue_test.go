package configure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/taskprep/internal/engine/configure"
)

func TestIsQueued(t *testing.T) {
	members := []string{"compile:scripts", "lint:all"}

	tests := []struct {
		name   string
		taskID string
		queue  []string
		want   bool
	}{
		{
			name:   "verbatim match",
			taskID: "compile:styles",
			queue:  []string{"compile:styles"},
			want:   true,
		},
		{
			name:   "verbatim match among others",
			taskID: "compile:styles",
			queue:  []string{"lint", "compile:styles", "test"},
			want:   true,
		},
		{
			name:   "empty queue selects default members",
			taskID: "compile:scripts",
			queue:  []string{},
			want:   true,
		},
		{
			name:   "nil queue selects default members",
			taskID: "compile:scripts",
			queue:  nil,
			want:   true,
		},
		{
			name:   "explicit default selects default members",
			taskID: "lint:all",
			queue:  []string{"default"},
			want:   true,
		},
		{
			name:   "empty queue and non-member",
			taskID: "compile:styles",
			queue:  []string{},
			want:   false,
		},
		{
			name:   "explicit default and non-member",
			taskID: "compile:styles",
			queue:  []string{"default"},
			want:   false,
		},
		{
			name:   "non-empty queue without default ignores members",
			taskID: "compile:scripts",
			queue:  []string{"test"},
			want:   false,
		},
		{
			name:   "membership is exact, not a prefix match",
			taskID: "compile",
			queue:  []string{},
			want:   false,
		},
		{
			name:   "default alongside other tasks still selects members",
			taskID: "lint:all",
			queue:  []string{"test", "default"},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := configure.IsQueued(tt.taskID, tt.queue, members)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsQueued_NoDefaultTaskDeclared(t *testing.T) {
	// An undeclared default task means an empty member list, never an error.
	assert.False(t, configure.IsQueued("compile:scripts", nil, nil))
	assert.True(t, configure.IsQueued("compile:scripts", []string{"compile:scripts"}, nil))
}
