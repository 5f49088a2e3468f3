package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"stardefender/game"
)

// FrameInterval is the terminal tick period, about 60 frames per second
const FrameInterval = 16 * time.Millisecond

// Run drives session on screen until the player quits or ctx ends.
// The caller owns the screen's Init and Fini.
func Run(ctx context.Context, screen tcell.Screen, session *game.Session, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "terminal")

	renderer := NewRenderer(screen)
	session.SetRenderer(renderer)
	controls := NewControls(session, logger)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	logger.Info("terminal loop started", "session", session.ID)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if controls.HandleKey(ev.Key(), ev.Rune(), time.Now()) {
					logger.Info("quit requested")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			controls.Apply(now)
			session.Tick(now)
			if !session.Phase().Active() {
				renderer.Render(session.Snapshot())
			}
		}
	}
}
