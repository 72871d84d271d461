// Package store implements the content dictionary: a flat key→string map
// persisted as a single JSON file, read in full and merged-and-rewritten in
// full on each update. Last-write-wins on the whole file is the only
// guarantee.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/starford/fxda/internal/apperr"
)

// Provider is the content dictionary abstraction. The core treats the
// dictionary as opaque key→string data owned by an external collaborator.
type Provider interface {
	// GetAll returns the full dictionary.
	GetAll() (map[string]string, error)
	// Merge applies updates over the current dictionary, persists the
	// result and returns the sorted list of updated keys.
	Merge(updates map[string]string) ([]string, error)
}

// File implements Provider backed by a JSON file on disk. Writes are
// atomic: tmp file, fsync, rename.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed provider. The file itself may not exist
// yet; a missing file reads as an empty dictionary.
func NewFile(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve path: %w", err)
	}
	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		return nil, fmt.Errorf("store: path is a directory: %s", abs)
	}
	return &File{path: abs}, nil
}

// Path returns the absolute path of the backing file.
func (f *File) Path() string { return f.path }

// GetAll reads and decodes the whole dictionary.
func (f *File) GetAll() (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readAll()
}

// Merge overlays updates on the current dictionary and rewrites the file.
func (f *File) Merge(updates map[string]string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.readAll()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(updates))
	for k, v := range updates {
		current[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := f.writeAll(current); err != nil {
		return nil, err
	}
	return keys, nil
}

func (f *File) readAll() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreRead, err)
	}
	dict := map[string]string{}
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreRead, err)
	}
	return dict, nil
}

func (f *File) writeAll(dict map[string]string) error {
	data, err := json.MarshalIndent(dict, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStoreWrite, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStoreWrite, err)
	}

	tmp, err := os.CreateTemp(dir, ".fxda-tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStoreWrite, err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStoreWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStoreWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStoreWrite, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStoreWrite, err)
	}
	success = true
	return nil
}

// Memory implements Provider with an in-process map. Used by tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an in-memory provider seeded with initial (may be nil).
func NewMemory(initial map[string]string) *Memory {
	data := make(map[string]string, len(initial))
	for k, v := range initial {
		data[k] = v
	}
	return &Memory{data: data}
}

// GetAll returns a copy of the dictionary.
func (m *Memory) GetAll() (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}

// Merge overlays updates and returns the sorted updated keys.
func (m *Memory) Merge(updates map[string]string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(updates))
	for k, v := range updates {
		m.data[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
