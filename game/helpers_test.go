package game

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"
	"time"
)

type recordingAudio struct {
	cues   []Cue
	starts int
	stops  int
	muted  bool
}

func (a *recordingAudio) Play(c Cue)      { a.cues = append(a.cues, c) }
func (a *recordingAudio) StartMusic()     { a.starts++ }
func (a *recordingAudio) StopMusic()      { a.stops++ }
func (a *recordingAudio) SetMuted(m bool) { a.muted = m }

func (a *recordingAudio) count(c Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type testRig struct {
	session *Session
	audio   *recordingAudio
	clock   *fakeClock
	store   *MemoryStore
	renders int
}

func newRig(t *testing.T, store *MemoryStore) *testRig {
	t.Helper()

	cfg := DefaultConfig()
	cfg.AsteroidSpawnChance = 0
	if store == nil {
		store = NewMemoryStore(0)
	}

	rig := &testRig{
		audio: &recordingAudio{},
		clock: &fakeClock{now: time.Unix(1_700_000_000, 0)},
		store: store,
	}
	rig.session = NewSession(cfg, Deps{
		Renderer: RendererFunc(func(Snapshot) { rig.renders++ }),
		Audio:    rig.audio,
		Store:    store,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Rand:     rand.New(rand.NewSource(1)),
		Clock:    rig.clock.Now,
	})
	return rig
}

// startClean starts a game and empties every store so tests place entities by hand
func (r *testRig) startClean(t *testing.T) *Session {
	t.Helper()
	if err := r.session.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s := r.session
	s.bullets = nil
	s.enemyBullets = nil
	s.bombs = nil
	s.enemies = nil
	s.particles = nil
	s.bodyguardBullets = nil
	s.asteroids = nil
	s.state.SpawnTimer = 100
	return s
}

func regularEnemy(x, y float64, kind EnemyKind) *Enemy {
	cfg := GetEnemyTypeConfig(kind)
	return &Enemy{
		Box:    Box{X: x, Y: y, W: cfg.Width, H: cfg.Height},
		Speed:  100,
		HP:     cfg.HP,
		Points: cfg.Points,
		Kind:   kind,
	}
}

func bossEnemy(x, y float64, hp, points int) *Enemy {
	return &Enemy{
		Box:    Box{X: x, Y: y, W: 90, H: 72},
		HP:     hp,
		Points: points,
		Kind:   EnemyBoss,
		Boss:   &BossState{MaxHP: hp},
	}
}

func bulletAt(x, y float64, damage int) *Bullet {
	return &Bullet{
		Box:    Box{X: x, Y: y, W: 6, H: 16},
		VY:     -520,
		Speed:  520,
		Damage: damage,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
