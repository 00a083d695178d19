// Package git provides memoized views of the repository state.
package git

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/taskprep/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	ignoreFile = ".gitignore"
	// Index vs HEAD. The working tree is deliberately excluded.
	diffCommand = "git diff --name-only --cached"
)

// StateCache implements ports.GitState. Both views are computed on first
// use and memoized for the process lifetime; a build invocation is one
// short-lived process, so the cache is never invalidated.
type StateCache struct {
	runner ports.Runner
	files  ports.FileReader

	mu       sync.Mutex
	ignore   []string
	ignoreOK bool
	dirty    []string
	dirtyOK  bool
}

// NewStateCache creates a new StateCache.
func NewStateCache(runner ports.Runner, files ports.FileReader) *StateCache {
	return &StateCache{
		runner: runner,
		files:  files,
	}
}

// IgnoreList returns the parsed .gitignore entries: comment lines stripped,
// blank lines dropped. The first successful read is memoized, even if the
// file changes afterwards.
func (c *StateCache) IgnoreList() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ignoreOK {
		return c.ignore, nil
	}

	raw, err := c.files.ReadFile(ignoreFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read ignore file")
	}

	entries := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}

	c.ignore = entries
	c.ignoreOK = true
	return c.ignore, nil
}

// DirtyFiles returns the files differing between the index and HEAD. The
// empty list is a memoized result too, distinguished from "not yet computed".
func (c *StateCache) DirtyFiles() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dirtyOK {
		return c.dirty, nil
	}

	out, err := c.runner.Run(context.Background(), diffCommand)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to diff index against HEAD")
	}

	files := strings.Split(strings.TrimRight(out, " \t\r\n"), "\n")
	// No output splits into a single empty element, which is not a filename.
	if len(files) == 1 && files[0] == "" {
		files = []string{}
	}

	c.dirty = files
	c.dirtyOK = true
	return c.dirty, nil
}

// Reset drops the memoized state. Exposed for test isolation only.
func (c *StateCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ignore = nil
	c.ignoreOK = false
	c.dirty = nil
	c.dirtyOK = false
}
