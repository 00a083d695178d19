// Package fs provides filesystem primitives behind narrow ports.
package fs

import (
	"os"

	"go.trai.ch/zerr"
)

// Reader implements ports.FileReader on the real filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile reads the named file and returns its contents as a string.
func (r *Reader) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return "", zerr.Wrap(err, "failed to read file")
	}
	return string(data), nil
}
