package game

import "image/color"

// Shield tracks the player's toggleable shield
type Shield struct {
	// Whether the shield currently absorbs hits
	Active bool

	// KeyConsumed is set while the shield key is held after a toggle,
	// so one press toggles exactly once
	KeyConsumed bool
}

// Player is the ship under keyboard control
type Player struct {
	Box

	// Movement speed in units per second
	Speed float64

	// Seconds until the next volley may fire
	Cooldown float64

	// Remaining lives (0..MaxLives)
	Lives int

	// Selected weapon
	FireMode FireModeID

	Shield Shield
}

// Homing holds steering state for a guided bullet
type Homing struct {
	// Target is nil when the bullet has nothing to chase
	Target   *Enemy
	TurnRate float64
}

// Bullet is a projectile fired by the player or a bodyguard
type Bullet struct {
	Box

	// Velocity in units per second
	VX, VY float64

	Speed  float64
	Damage int
	Color  color.RGBA

	// Homing is nil for straight-flying bullets
	Homing *Homing
}

// EnemyBullet is an aimed shot fired by a boss
type EnemyBullet struct {
	Box
	VX, VY float64
	Speed  float64
	Color  color.RGBA
}

// Bomb falls straight down from a boss
type Bomb struct {
	Box
	Speed    float64
	Rotation float64 // Cosmetic spin in radians
	Color    color.RGBA
}

// BossState holds the behavior that only a boss carries
type BossState struct {
	MaxHP int

	// Movement pattern
	PhaseX, PhaseY float64
	CenterY        float64
	AmplitudeX     float64
	AmplitudeY     float64

	// Seconds until the next aimed shot and bomb drop
	ShootCooldown float64
	BombCooldown  float64
}

// Enemy is a descending hostile ship
type Enemy struct {
	Box

	Speed  float64
	HP     int
	Phase  float64 // Offset for the sideways drift
	Points int
	Kind   EnemyKind

	// Boss is nil for regular enemies
	Boss *BossState
}

// Alive reports whether the enemy still has hit points
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// IsBoss reports whether the enemy is a boss
func (e *Enemy) IsBoss() bool {
	return e.Boss != nil
}

// Particle is a short-lived spark
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Color   color.RGBA
}

// Bodyguard is an escort ship that orbits above the player and shoots enemies
type Bodyguard struct {
	Box
	ShootInterval float64
	Cooldown      float64
	PatrolPhase   float64
}

// Asteroid is a drifting rock that pushes the player around
type Asteroid struct {
	X, Y          float64
	Size          float64 // Collision radius
	VX, VY        float64
	Rotation      float64
	RotationSpeed float64

	// Shape holds the outline as offsets from the centre before rotation
	Shape []Point
}

// Star is a scrolling background point
type Star struct {
	X, Y  float64
	Speed float64
	Size  float64
}
