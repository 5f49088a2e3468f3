package game

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const storeTimeout = 2 * time.Second

// Deps are the platform collaborators a session talks to.
// Audio, Store, Logger, Rand and Clock get defaults when nil.
type Deps struct {
	Renderer Renderer
	Audio    Audio
	Store    HighScoreStore
	Logger   *slog.Logger
	Rand     *rand.Rand
	Clock    func() time.Time
}

// Session owns every entity store and the progression state of one game
type Session struct {
	ID string

	config Config
	rng    *rand.Rand
	clock  func() time.Time
	logger *slog.Logger

	renderer Renderer
	audio    Audio
	store    HighScoreStore

	state State
	input InputState

	player           Player
	bullets          []*Bullet
	enemyBullets     []*EnemyBullet
	bombs            []*Bomb
	enemies          []*Enemy
	particles        []*Particle
	bodyguards       []*Bodyguard
	bodyguardBullets []*Bullet
	asteroids        []*Asteroid
	stars            []*Star

	scheduler Scheduler

	// Wall-clock time of the previous tick
	lastTime time.Time

	// High score when the current game started, used for the game over message
	startHighScore int
}

// NewSession creates a session in the idle phase
func NewSession(config Config, deps Deps) *Session {
	if deps.Audio == nil {
		deps.Audio = nopAudio{}
	}
	if deps.Store == nil {
		deps.Store = NewMemoryStore(0)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	id := uuid.NewString()
	s := &Session{
		ID:       id,
		config:   config,
		rng:      deps.Rand,
		clock:    deps.Clock,
		logger:   deps.Logger.With("component", "game", "session", id),
		renderer: deps.Renderer,
		audio:    deps.Audio,
		store:    deps.Store,
	}
	s.state.SoundEnabled = true
	s.state.HighScore = s.loadHighScore()
	s.Reset()
	return s
}

// SetRenderer attaches a renderer after construction
func (s *Session) SetRenderer(r Renderer) {
	s.renderer = r
}

// Config returns the simulation tuning the session was built with
func (s *Session) Config() Config {
	return s.config
}

// Input returns the held-action flags the front-end writes into
func (s *Session) Input() *InputState {
	return &s.input
}

// Phase returns the current lifecycle phase
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Reset returns the session to a fresh idle game. The high score is kept.
func (s *Session) Reset() {
	s.scheduler.Invalidate()

	highScore := s.state.HighScore
	soundEnabled := s.state.SoundEnabled
	s.state = State{
		Phase:         PhaseIdle,
		Score:         0,
		Wave:          1,
		Level:         1,
		HighScore:     highScore,
		SoundEnabled:  soundEnabled,
		SpawnInterval: initialSpawnInterval,
		Banner: Banner{
			Visible: true,
			Title:   "Retro Star Defender",
			Message: "Move with Arrow Keys or WASD. Shoot with Space. Press Enter to play.",
		},
	}

	s.player = Player{
		Box: Box{
			X: s.config.ArenaWidth / 2,
			Y: s.config.ArenaHeight - s.config.PlayerBottomOffset,
			W: s.config.PlayerWidth,
			H: s.config.PlayerHeight,
		},
		Speed:    s.config.PlayerSpeed,
		Lives:    s.config.MaxLives,
		FireMode: FireModeNormal,
	}
	s.input = InputState{}

	s.bullets = s.bullets[:0]
	s.enemyBullets = s.enemyBullets[:0]
	s.bombs = s.bombs[:0]
	s.enemies = s.enemies[:0]
	s.particles = s.particles[:0]
	s.bodyguards = s.bodyguards[:0]
	s.bodyguardBullets = s.bodyguardBullets[:0]
	s.asteroids = s.asteroids[:0]

	if len(s.stars) == 0 {
		s.initStars()
	}
}

// Start begins a game. It is a no-op while a game is running and resets
// the session first when the previous game ended.
func (s *Session) Start() error {
	if s.state.Running() {
		return nil
	}
	if s.renderer == nil || !s.config.Valid() {
		return ErrNotReady
	}
	if s.state.Phase == PhaseGameOver || s.state.Phase == PhaseVictory {
		s.Reset()
	}
	if len(s.stars) == 0 {
		s.initStars()
	}
	if len(s.asteroids) == 0 {
		for i := 0; i < s.config.InitialAsteroids; i++ {
			s.spawnAsteroid()
		}
	}

	s.state.Phase = PhaseRunning
	s.state.Banner = Banner{}
	s.startHighScore = s.state.HighScore
	s.lastTime = s.clock()

	if s.state.SoundEnabled {
		s.audio.StartMusic()
	}
	s.logger.Info("game started", "level", s.state.Level, "high_score", s.state.HighScore)
	return nil
}

// TogglePause flips between running and paused
func (s *Session) TogglePause() {
	switch s.state.Phase {
	case PhaseRunning:
		s.state.Phase = PhasePaused
		s.audio.StopMusic()
	case PhasePaused:
		s.state.Phase = PhaseRunning
		if s.state.SoundEnabled {
			s.audio.StartMusic()
		}
	}
}

// SetMuted turns all sound off or back on
func (s *Session) SetMuted(muted bool) {
	s.state.SoundEnabled = !muted
	s.audio.SetMuted(muted)
	if muted {
		s.audio.StopMusic()
	} else if s.state.Phase == PhaseRunning {
		s.audio.StartMusic()
	}
}

// ToggleMute flips the sound setting
func (s *Session) ToggleMute() {
	s.SetMuted(s.state.SoundEnabled)
}

// SelectFireMode switches the player's weapon. Unknown names select the normal mode.
func (s *Session) SelectFireMode(id FireModeID) {
	s.player.FireMode = GetFireMode(id).ID
}

// ToggleBodyguards summons or dismisses the escort ships
func (s *Session) ToggleBodyguards() {
	if !s.state.Running() {
		return
	}
	s.state.BodyguardsActive = !s.state.BodyguardsActive
	if s.state.BodyguardsActive {
		s.spawnBodyguards()
		s.play(CueShieldActivate)
	} else {
		s.bodyguards = s.bodyguards[:0]
		s.bodyguardBullets = s.bodyguardBullets[:0]
		s.play(CueShieldDeactivate)
	}
}

// Tick advances one display frame: clamp the wall-clock delta, update unless
// paused, then hand a snapshot to the renderer. It does nothing when no game is running.
func (s *Session) Tick(now time.Time) {
	if !s.state.Running() {
		return
	}

	dt := now.Sub(s.lastTime).Seconds()
	if dt > s.config.MaxFrameDelta {
		dt = s.config.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	s.lastTime = now

	if !s.state.Paused() {
		s.Update(dt)
	}
	if s.renderer != nil {
		s.renderer.Render(s.Snapshot())
	}
}

// Update advances the simulation by dt seconds
func (s *Session) Update(dt float64) {
	if s.state.Phase != PhaseRunning {
		return
	}
	s.state.Elapsed += dt

	s.updateStars(dt)
	s.updatePlayer(dt)
	s.updateBullets(dt)
	s.updateEnemyBullets(dt)
	s.updateBombs(dt)
	s.updateEnemies(dt)
	s.updateBodyguards(dt)
	s.updateBodyguardBullets(dt)
	s.updateParticles(dt)
	s.updateAsteroids(dt)
	s.checkCollisions()
	s.updateWave()

	s.scheduler.Drain(s.state.Elapsed)
}

func (s *Session) play(cue Cue) {
	if s.state.SoundEnabled {
		s.audio.Play(cue)
	}
}

func (s *Session) loadHighScore() int {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	score, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to load high score", "error", err)
		return 0
	}
	return score
}

func (s *Session) saveHighScore(score int) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := s.store.Save(ctx, score); err != nil {
		s.logger.Warn("failed to save high score", "score", score, "error", err)
	}
}

// randRange returns a uniform value in [lo, hi)
func (s *Session) randRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
