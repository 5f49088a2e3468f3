package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"stardefender/game"
)

// Config holds audio output settings
type Config struct {
	SampleRate   int
	BufferSize   time.Duration
	EffectVolume float64
	MusicVolume  float64
}

// DefaultConfig returns a default audio configuration
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		BufferSize:   100 * time.Millisecond,
		EffectVolume: 1.0,
		MusicVolume:  1.0,
	}
}

// Player synthesizes game cues and background music into a beep mixer
type Player struct {
	mu     sync.Mutex
	cfg    Config
	rate   beep.SampleRate
	mixer  *beep.Mixer
	music  *beep.Ctrl
	theme  *beep.Buffer
	muted  bool
	online bool
	logger *slog.Logger
}

var _ game.Audio = (*Player)(nil)

// NewPlayer creates a player whose mixer is not yet attached to a device
func NewPlayer(cfg Config, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	return &Player{
		cfg:    cfg,
		rate:   rate,
		mixer:  &beep.Mixer{},
		theme:  renderMelody(rate),
		logger: logger.With("component", "audio"),
	}
}

// Open attaches the mixer to the system speaker
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.online {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(p.cfg.BufferSize)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.online = true
	p.logger.Info("speaker ready", "sample_rate", p.cfg.SampleRate)
	return nil
}

// Close silences everything
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.withMixer(func() {
		p.stopMusicLocked()
		p.mixer.Clear()
	})
}

// Play mixes in a one-shot cue
func (p *Player) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}
	s := cueStreamer(cue, p.rate)
	if s == nil {
		p.logger.Debug("no patch for cue", "cue", cue.String())
		return
	}
	p.withMixer(func() {
		p.mixer.Add(newVolume(s, p.cfg.EffectVolume))
	})
}

// StartMusic starts the theme from the top unless it is already playing
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.music != nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(newLoop(p.theme), p.cfg.MusicVolume)}
	p.music = ctrl
	p.withMixer(func() {
		p.mixer.Add(ctrl)
	})
}

// StopMusic cuts the theme off immediately
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.withMixer(p.stopMusicLocked)
}

// SetMuted silences cues and music
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if muted {
		p.withMixer(p.stopMusicLocked)
	}
}

// MusicPlaying reports whether the theme is active
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil && !p.music.Paused
}

// stopMusicLocked pauses the theme and detaches its stream so the mixer drops it
func (p *Player) stopMusicLocked() {
	if p.music == nil {
		return
	}
	p.music.Paused = true
	p.music.Streamer = nil
	p.music = nil
}

// withMixer runs fn while the speaker goroutine is held off, when one is running
func (p *Player) withMixer(fn func()) {
	if p.online {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
