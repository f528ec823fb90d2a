package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// FileStore keeps one JSON file per player under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("persistence: create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) pathFor(name string) string {
	return filepath.Join(s.dir, SanitizeName(name)+".json")
}

// SavePlayer writes the full snapshot, replacing any prior file.
func (s *FileStore) SavePlayer(name string, snapshot *state.PlayerSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("persistence: marshal %q: %w", name, err)
	}
	if err := os.WriteFile(s.pathFor(name), data, 0o644); err != nil {
		return fmt.Errorf("persistence: write %q: %w", name, err)
	}
	return nil
}

// LoadPlayer returns the last snapshot, or ErrNotFound for brand-new
// players.
func (s *FileStore) LoadPlayer(name string) (*state.PlayerSnapshot, error) {
	data, err := os.ReadFile(s.pathFor(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("persistence: read %q: %w", name, err)
	}

	var snapshot state.PlayerSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("persistence: decode %q: %w", name, err)
	}
	snapshot.Equipment.Normalize()
	return &snapshot, nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}
