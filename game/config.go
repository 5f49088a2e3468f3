package game

// Config holds simulation tuning constants
type Config struct {
	// ArenaWidth is the width of the play area in world units
	ArenaWidth float64

	// ArenaHeight is the height of the play area in world units
	ArenaHeight float64

	// MaxFrameDelta caps the per-frame delta time in seconds
	MaxFrameDelta float64

	// MaxLives is the number of lives a fresh game starts with
	MaxLives int

	// PlayerSpeed is the player's movement speed in units per second
	PlayerSpeed float64

	// PlayerWidth and PlayerHeight are the player's full extents
	PlayerWidth  float64
	PlayerHeight float64

	// PlayerBottomOffset is the distance from the arena bottom at which the player spawns
	PlayerBottomOffset float64

	// StarCount is the number of background stars
	StarCount int

	// InitialAsteroids is the number of asteroids placed when a game starts
	InitialAsteroids int

	// MaxAsteroids caps the asteroid population
	MaxAsteroids int

	// AsteroidSpawnChance is the per-second probability of an asteroid spawning
	AsteroidSpawnChance float64

	// MaxLevel is the last level; defeating its boss wins the game
	MaxLevel int

	// PointsPerWave is the score needed to advance one wave
	PointsPerWave int

	// LevelAdvanceDelay is the time in seconds between a boss kill and the next level
	LevelAdvanceDelay float64

	// BannerDuration is how long the level banner stays up in seconds
	BannerDuration float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ArenaWidth:          900,
		ArenaHeight:         600,
		MaxFrameDelta:       0.033,
		MaxLives:            3,
		PlayerSpeed:         320,
		PlayerWidth:         36,
		PlayerHeight:        28,
		PlayerBottomOffset:  90,
		StarCount:           90,
		InitialAsteroids:    4,
		MaxAsteroids:        8,
		AsteroidSpawnChance: 0.01,
		MaxLevel:            10,
		PointsPerWave:       80,
		LevelAdvanceDelay:   1.0,
		BannerDuration:      2.0,
	}
}

// Valid reports whether the arena has a usable size
func (c Config) Valid() bool {
	return c.ArenaWidth > 0 && c.ArenaHeight > 0 && c.MaxFrameDelta > 0
}
