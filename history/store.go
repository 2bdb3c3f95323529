package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store loads and saves history lists by name. Lists are oldest first.
type Store interface {
	Load(name string) ([]string, error)
	Save(name string, entries []string) error
}

// MemoryStore keeps lists in memory.
type MemoryStore struct {
	mu    sync.Mutex
	lists map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]string)}
}

func (s *MemoryStore) Load(name string) ([]string, error) {
	if name == "" {
		return nil, ErrNoName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lists[name]), nil
}

func (s *MemoryStore) Save(name string, entries []string) error {
	if name == "" {
		return ErrNoName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[name] = slices.Clone(entries)
	return nil
}

const fileSnapshotVersion = 1

type fileSnapshot struct {
	Version   int                 `yaml:"version"`
	Histories map[string][]string `yaml:"histories"`
}

// FileStore keeps every named list in one YAML file.
//
// Writes replace the file atomically through a temp file and rename.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

// Load returns the named list. A missing file or name yields no entries.
func (s *FileStore) Load(name string) ([]string, error) {
	if name == "" {
		return nil, ErrNoName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read()
	if err != nil {
		return nil, err
	}
	return slices.Clone(snap.Histories[name]), nil
}

// Save replaces the named list and rewrites the file.
func (s *FileStore) Save(name string, entries []string) error {
	if name == "" {
		return ErrNoName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read()
	if err != nil {
		return err
	}
	snap.Histories[name] = slices.Clone(entries)
	return s.write(snap)
}

func (s *FileStore) read() (fileSnapshot, error) {
	snap := fileSnapshot{
		Version:   fileSnapshotVersion,
		Histories: make(map[string][]string),
	}
	if s.path == "" {
		return snap, errors.New("history file path is empty")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snap, nil
		}
		return snap, err
	}
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if snap.Version != 0 && snap.Version != fileSnapshotVersion {
		return snap, fmt.Errorf("unsupported history file version %d", snap.Version)
	}
	if snap.Histories == nil {
		snap.Histories = make(map[string][]string)
	}
	snap.Version = fileSnapshotVersion
	return snap, nil
}

func (s *FileStore) write(snap fileSnapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.path)
}
