package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"stardefender/game"
)

// FileStore keeps scores in a small YAML document keyed by name
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path; the file is created on first save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) read() (map[string]int, error) {
	scores := make(map[string]int)
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return scores, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	if err := yaml.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w", f.path, err)
	}
	return scores, nil
}

func (f *FileStore) Load(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		return 0, err
	}
	return scores[game.HighScoreKey], nil
}

func (f *FileStore) Save(ctx context.Context, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		return err
	}
	scores[game.HighScoreKey] = score

	data, err := yaml.Marshal(scores)
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create %s: %w", dir, err)
		}
	}

	// Write then rename so a crash never leaves a truncated file
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("storage: replace %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
