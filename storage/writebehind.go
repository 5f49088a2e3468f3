package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrClosed is returned when saving to a closed write-behind store
var ErrClosed = errors.New("storage: store closed")

const saveTimeout = 5 * time.Second

// WriteBehind queues saves for a background goroutine so callers never wait on I/O.
// Only the newest pending score is kept; older unsaved ones are superseded.
type WriteBehind struct {
	inner   Store
	logger  *slog.Logger
	mu      sync.Mutex
	closed  bool
	pending chan int
	done    chan struct{}
}

// NewWriteBehind starts the background writer
func NewWriteBehind(inner Store, logger *slog.Logger) *WriteBehind {
	if logger == nil {
		logger = slog.Default()
	}
	w := &WriteBehind{
		inner:   inner,
		logger:  logger,
		pending: make(chan int, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *WriteBehind) run() {
	defer close(w.done)
	for score := range w.pending {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if err := w.inner.Save(ctx, score); err != nil {
			w.logger.Warn("high score save failed", "score", score, "error", err)
		} else {
			w.logger.Debug("high score saved", "score", score)
		}
		cancel()
	}
}

// Load reads through to the wrapped store
func (w *WriteBehind) Load(ctx context.Context) (int, error) {
	return w.inner.Load(ctx)
}

// Save queues score and returns immediately
func (w *WriteBehind) Save(ctx context.Context, score int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	select {
	case <-w.pending:
	default:
	}
	w.pending <- score
	return nil
}

// Close flushes the pending save and closes the wrapped store
func (w *WriteBehind) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.pending)
	w.mu.Unlock()

	<-w.done
	return w.inner.Close()
}
