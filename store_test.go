package finbrief

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirStore_RoundTrip(t *testing.T) {
	s := NewDirStore(t.TempDir())

	in := map[string]int{"a": 1, "b": 2}
	if err := s.Save("doc", in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out map[string]int
	if err := s.Load("doc", &out); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Errorf("Load() = %v, want %v", out, in)
	}
}

func TestDirStore_MissingIsNotExist(t *testing.T) {
	s := NewDirStore(t.TempDir())

	var v struct{}
	err := s.Load("nope", &v)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestDirStore_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "doc.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewDirStore(dir)
	var v map[string]int
	if err := s.Load("doc", &v); err == nil {
		t.Error("Load() on corrupt document succeeded, want error")
	}
}

func TestDirStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s := NewDirStore(dir)

	if err := s.Save("doc", 42); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "doc.json")); err != nil {
		t.Errorf("document not created: %v", err)
	}
}
