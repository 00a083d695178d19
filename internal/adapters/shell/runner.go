// Package shell provides the shell command runner adapter.
package shell

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/taskprep/internal/core/domain"
	"go.trai.ch/taskprep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec with a POSIX shell.
//
// Output is captured rather than streamed: callers parse it (git diff
// output, npm output) and a failure must carry the full combined output.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new shell Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command via `sh -c` and returns its combined
// stdout/stderr output. Compound commands joined with && short-circuit on
// the first failing step, so a single Run call covers a whole sequence.
func (r *Runner) Run(ctx context.Context, command string) (string, error) {
	r.logger.Info("$ " + command)

	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // command assembled by callers from manifest data
	out, err := cmd.CombinedOutput()
	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		ferr := zerr.With(zerr.Wrap(domain.ErrCommandFailed, ""), "command", command)
		ferr = zerr.With(ferr, "output", strings.TrimSpace(string(out)))
		ferr = zerr.With(ferr, "exit_code", exitCode)
		return "", ferr
	}

	return string(out), nil
}
