package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stardefender/config"
	"stardefender/game"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStoreMissingFileLoadsZero(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "none.yaml"))
	score, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.yaml")
	store := NewFileStore(path)
	ctx := context.Background()

	if err := store.Save(ctx, 420); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), game.HighScoreKey+": 420") {
		t.Errorf("file contents = %q", data)
	}

	score, err := NewFileStore(path).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if score != 420 {
		t.Errorf("score = %d, want 420", score)
	}
}

func TestFileStoreKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	if err := os.WriteFile(path, []byte("otherGame: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)
	if err := store.Save(context.Background(), 9); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "otherGame: 7") {
		t.Errorf("other key lost: %q", data)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("[not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(context.Background()); err == nil {
		t.Error("expected parse error")
	}
}

type closingStore struct {
	*game.MemoryStore
	closed bool
}

func (c *closingStore) Close() error {
	c.closed = true
	return nil
}

func TestWriteBehindFlushesLatestOnClose(t *testing.T) {
	inner := &closingStore{MemoryStore: game.NewMemoryStore(0)}
	w := NewWriteBehind(inner, discardLogger())
	ctx := context.Background()

	if err := w.Save(ctx, 10); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := w.Save(ctx, 20); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	score, _ := inner.Load(ctx)
	if score != 20 {
		t.Errorf("score = %d, want 20", score)
	}
	if !inner.closed {
		t.Error("inner store not closed")
	}
	if err := w.Save(ctx, 30); !errors.Is(err, ErrClosed) {
		t.Errorf("Save after Close = %v, want ErrClosed", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Backend: "etcd"}, discardLogger())
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestOpenFileBackend(t *testing.T) {
	cfg := config.StorageConfig{
		Backend: "file",
		File:    config.FileConfig{Path: filepath.Join(t.TempDir(), "hs.yaml")},
	}
	store, err := Open(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Fatalf("store = %T, want *FileStore", store)
	}
	if err := store.Save(context.Background(), 5); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenWriteBehindWrapsBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.yaml")
	cfg := config.StorageConfig{
		Backend:     "file",
		WriteBehind: true,
		File:        config.FileConfig{Path: path},
	}
	store, err := Open(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := store.(*WriteBehind); !ok {
		t.Fatalf("store = %T, want *WriteBehind", store)
	}
	if err := store.Save(context.Background(), 77); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	score, err := NewFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if score != 77 {
		t.Errorf("score = %d, want 77", score)
	}
}

func TestSessionPersistsThroughFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.yaml")
	if err := NewFileStore(path).Save(context.Background(), 250); err != nil {
		t.Fatal(err)
	}

	s := game.NewSession(game.DefaultConfig(), game.Deps{
		Store:  NewFileStore(path),
		Logger: discardLogger(),
	})
	if got := s.Snapshot().HUD.HighScore; got != 250 {
		t.Errorf("HighScore = %d, want 250", got)
	}
}
