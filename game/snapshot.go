package game

import "image/color"

// HUD is the heads-up display model
type HUD struct {
	Score     int
	HighScore int
	Wave      int
	Level     int
	Lives     int
	MaxLives  int

	FireModeName  string
	FireModeColor color.RGBA
	ShieldActive  bool
	Bodyguards    bool
	SoundEnabled  bool

	// BossHP is zero when no boss is on screen
	BossHP    int
	BossMaxHP int
}

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	ArenaWidth  float64
	ArenaHeight float64

	Phase   Phase
	Elapsed float64
	Banner  Banner
	HUD     HUD

	Player           Player
	Bullets          []Bullet
	EnemyBullets     []EnemyBullet
	Bombs            []Bomb
	Enemies          []Enemy
	Particles        []Particle
	Bodyguards       []Bodyguard
	BodyguardBullets []Bullet
	Asteroids        []Asteroid
	Stars            []Star
}

// Snapshot copies the current session state
func (s *Session) Snapshot() Snapshot {
	mode := GetFireMode(s.player.FireMode)
	snap := Snapshot{
		ArenaWidth:  s.config.ArenaWidth,
		ArenaHeight: s.config.ArenaHeight,
		Phase:       s.state.Phase,
		Elapsed:     s.state.Elapsed,
		Banner:      s.state.Banner,
		HUD: HUD{
			Score:         s.state.Score,
			HighScore:     s.state.HighScore,
			Wave:          s.state.Wave,
			Level:         s.state.Level,
			Lives:         s.player.Lives,
			MaxLives:      s.config.MaxLives,
			FireModeName:  mode.Name,
			FireModeColor: mode.BulletColor,
			ShieldActive:  s.player.Shield.Active,
			Bodyguards:    s.state.BodyguardsActive,
			SoundEnabled:  s.state.SoundEnabled,
		},
		Player:           s.player,
		Bullets:          copyBullets(s.bullets),
		EnemyBullets:     copyValues(s.enemyBullets),
		Bombs:            copyValues(s.bombs),
		Particles:        copyValues(s.particles),
		Bodyguards:       copyValues(s.bodyguards),
		BodyguardBullets: copyBullets(s.bodyguardBullets),
		Stars:            copyValues(s.stars),
	}

	snap.Enemies = make([]Enemy, len(s.enemies))
	for i, e := range s.enemies {
		snap.Enemies[i] = *e
		if e.Boss != nil {
			boss := *e.Boss
			snap.Enemies[i].Boss = &boss
			snap.HUD.BossHP = e.HP
			snap.HUD.BossMaxHP = e.Boss.MaxHP
		}
	}

	snap.Asteroids = make([]Asteroid, len(s.asteroids))
	for i, a := range s.asteroids {
		snap.Asteroids[i] = *a
		snap.Asteroids[i].Shape = append([]Point(nil), a.Shape...)
	}

	return snap
}

// copyBullets drops the homing target pointer so the snapshot never aliases live enemies
func copyBullets(src []*Bullet) []Bullet {
	out := make([]Bullet, len(src))
	for i, b := range src {
		out[i] = *b
		if b.Homing != nil {
			out[i].Homing = &Homing{TurnRate: b.Homing.TurnRate}
		}
	}
	return out
}

func copyValues[T any](src []*T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = *v
	}
	return out
}
