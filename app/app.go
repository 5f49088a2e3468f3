package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"stardefender/audio"
	"stardefender/config"
	"stardefender/game"
	"stardefender/storage"
)

// App is a session with its collaborators opened from configuration
type App struct {
	Config  *config.Config
	Session *game.Session
	Logger  *slog.Logger

	store storage.Store
	sound *audio.Player
}

// NewLogger builds the process logger at the configured level
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel()}))
}

// New opens storage and audio and creates an idle session.
// A failed audio device is logged and the game runs silent.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("open high score store: %w", err)
	}

	a := &App{Config: cfg, Logger: logger, store: store}
	deps := game.Deps{Store: store, Logger: logger}

	if cfg.Audio.Enabled {
		player := audio.NewPlayer(audio.Config{
			SampleRate:   cfg.Audio.SampleRate,
			BufferSize:   audio.DefaultConfig().BufferSize,
			EffectVolume: cfg.Audio.EffectVolume,
			MusicVolume:  cfg.Audio.MusicVolume,
		}, logger)
		if err := player.Open(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			a.sound = player
			deps.Audio = player
		}
	}

	a.Session = game.NewSession(cfg.Game(), deps)
	if cfg.Audio.Muted {
		a.Session.SetMuted(true)
	}
	return a, nil
}

// Close stops audio and flushes the high score store
func (a *App) Close() error {
	if a.sound != nil {
		a.sound.Close()
	}
	return a.store.Close()
}
