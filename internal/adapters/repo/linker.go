package repo

import (
	"context"
	"runtime"
	"strings"

	"go.trai.ch/taskprep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Linker implements ports.PackageLinker using npm link.
type Linker struct {
	runner ports.Runner
}

// NewLinker creates a new Linker.
func NewLinker(runner ports.Runner) *Linker {
	return &Linker{
		runner: runner,
	}
}

// Link registers sourcePath as a global npm link and links packageName
// into destinationPath, as one compound command.
func (l *Linker) Link(ctx context.Context, sourcePath, destinationPath, packageName string) error {
	command := strings.Join(linkCommands(sourcePath, destinationPath, packageName, runtime.GOOS), " && ")
	if _, err := l.runner.Run(ctx, command); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to link package"), "package", packageName)
	}
	return nil
}

// linkCommands builds the npm link sequence. Registering a global link
// needs elevation everywhere except Windows, where sudo does not exist.
func linkCommands(sourcePath, destinationPath, packageName, goos string) []string {
	register := "npm link"
	if goos != "windows" {
		register = "sudo npm link"
	}
	return []string{
		"cd " + sourcePath,
		register,
		"cd " + destinationPath,
		"npm link " + packageName,
	}
}
