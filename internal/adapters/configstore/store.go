// Package configstore implements the runner's global configuration store
// as a JSON document with dotted-path access.
package configstore

import (
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.trai.ch/zerr"
)

// Store implements ports.ConfigStore. Keys containing dots are not
// supported; task, target and option names never carry them.
type Store struct {
	mu  sync.RWMutex
	doc []byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		doc: []byte("{}"),
	}
}

// Get returns the decoded value at path, or ok=false when absent.
func (s *Store) Get(path string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := gjson.GetBytes(s.doc, path)
	if !res.Exists() {
		return nil, false
	}
	return res.Value(), true
}

// Set writes value at path, creating intermediate objects as needed.
func (s *Store) Set(path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := sjson.SetBytes(s.doc, path, value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set config value"), "path", path)
	}
	s.doc = doc
	return nil
}

// Merge merges a JSON document into the store. Object values merge
// key-wise recursively; scalars and arrays overwrite wholesale. Keys
// absent from the document survive untouched.
func (s *Store) Merge(doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !gjson.ValidBytes(doc) {
		return zerr.New("merge document is not valid JSON")
	}

	merged, err := merge(s.doc, "", gjson.ParseBytes(doc))
	if err != nil {
		return err
	}
	s.doc = merged
	return nil
}

func merge(doc []byte, prefix string, partial gjson.Result) ([]byte, error) {
	var err error
	partial.ForEach(func(key, value gjson.Result) bool {
		path := key.String()
		if prefix != "" {
			path = prefix + "." + path
		}

		if value.IsObject() && gjson.GetBytes(doc, path).IsObject() {
			doc, err = merge(doc, path, value)
			return err == nil
		}

		doc, err = sjson.SetRawBytes(doc, path, []byte(value.Raw))
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to merge config value"), "path", path)
		}
		return err == nil
	})
	return doc, err
}

// Doc returns a copy of the store contents as a JSON document.
func (s *Store) Doc() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]byte, len(s.doc))
	copy(out, s.doc)
	return out
}
