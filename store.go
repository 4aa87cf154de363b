package finbrief

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists one JSON document per logical collection (cache entries,
// limiter state, holdings, alert rules). It exists so tests can substitute
// an in-memory implementation.
type Store interface {
	// Load decodes the named document into v. Returns fs.ErrNotExist
	// (wrapped) when the document has never been saved.
	Load(name string, v any) error
	// Save encodes v as the named document, replacing any previous content.
	Save(name string, v any) error
}

// DirStore keeps each document as <dir>/<name>.json.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) *DirStore { return &DirStore{dir: dir} }

func (s *DirStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *DirStore) Load(name string, v any) error {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("corrupt document %q: %w", name, err)
	}
	return nil
}

// Save writes through a temp file and renames it into place, so a reader
// never observes a half-written document. Concurrent invocations race as
// last-writer-wins; at this invocation frequency that is acceptable.
func (s *DirStore) Save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(name))
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	docs map[string][]byte
}

func NewMemStore() *MemStore { return &MemStore{docs: make(map[string][]byte)} }

func (s *MemStore) Load(name string, v any) error {
	b, ok := s.docs[name]
	if !ok {
		return fmt.Errorf("document %q: %w", name, os.ErrNotExist)
	}
	return json.Unmarshal(b, v)
}

func (s *MemStore) Save(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.docs[name] = b
	return nil
}
