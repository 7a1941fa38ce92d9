package adapter

import (
	"errors"
	"fmt"
	"io/fs"

	m "ztar.dev/pkg/ztar/internal/model"
)

// OutputExtension is the file extension of decompiled sources.
const OutputExtension = ".ztar"

// OutputStore persists decompiled sources as <root>/<area>/<map>.ztar.
type OutputStore interface {
	// Save writes the source of a map and returns the file it was written to.
	Save(root m.Path, info m.MapInfo, source string) (m.Path, error)

	// Load reads the stored source of a map. It reports false when nothing
	// has been stored yet.
	Load(root m.Path, info m.MapInfo) (string, bool, error)
}

// LocalOutputStore implements OutputStore on top of an FSAdapter.
type LocalOutputStore struct {
	fs FSAdapter
}

// NewLocalOutputStore constructs a LocalOutputStore.
func NewLocalOutputStore(fs FSAdapter) *LocalOutputStore {
	return &LocalOutputStore{fs: fs}
}

func (s *LocalOutputStore) path(root m.Path, info m.MapInfo) m.Path {
	return s.fs.JoinPath(string(root), info.Area, info.Name+OutputExtension)
}

// Save writes source to the map's output file.
func (s *LocalOutputStore) Save(root m.Path, info m.MapInfo, source string) (m.Path, error) {
	path := s.path(root, info)

	if err := s.fs.WriteFile(path, []byte(source), 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", info.Name, err)
	}

	return path, nil
}

// Load reads the map's output file.
func (s *LocalOutputStore) Load(root m.Path, info m.MapInfo) (string, bool, error) {
	data, err := s.fs.ReadFile(s.path(root, info))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", info.Name, err)
	}

	return string(data), true, nil
}
