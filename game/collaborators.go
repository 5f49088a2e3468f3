package game

import (
	"context"
	"errors"
	"sync"
)

// ErrNotReady is returned by Start when the session lacks a renderer or a usable arena
var ErrNotReady = errors.New("game: session not ready")

// HighScoreKey is the storage key the best score is kept under
const HighScoreKey = "retroGameHighScore"

// Renderer draws a frame from a snapshot
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(Snapshot)

// Render calls f(s)
func (f RendererFunc) Render(s Snapshot) { f(s) }

// Cue identifies a one-shot sound effect
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueExplosion
	CuePlayerHit
	CueGameOver
	CueBossDefeat
	CueBossShoot
	CueBossBomb
	CueShieldActivate
	CueShieldDeactivate
	CueShieldBlock
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueExplosion:
		return "explosion"
	case CuePlayerHit:
		return "playerHit"
	case CueGameOver:
		return "gameOver"
	case CueBossDefeat:
		return "bossDefeat"
	case CueBossShoot:
		return "bossShoot"
	case CueBossBomb:
		return "bossBomb"
	case CueShieldActivate:
		return "shieldActivate"
	case CueShieldDeactivate:
		return "shieldDeactivate"
	case CueShieldBlock:
		return "shieldBlock"
	default:
		return "unknown"
	}
}

// Audio plays sound cues and background music.
// Implementations must not block the caller.
type Audio interface {
	Play(Cue)
	StartMusic()
	StopMusic()
	SetMuted(bool)
}

type nopAudio struct{}

func (nopAudio) Play(Cue)      {}
func (nopAudio) StartMusic()   {}
func (nopAudio) StopMusic()    {}
func (nopAudio) SetMuted(bool) {}

// HighScoreStore loads and saves the best score
type HighScoreStore interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
}

// MemoryStore keeps the high score in memory
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryStore returns a store seeded with score
func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

func (m *MemoryStore) Load(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) Save(ctx context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
	return nil
}

// Saves returns how many times Save has been called
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
