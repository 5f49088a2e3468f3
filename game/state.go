package game

import "fmt"

// Phase is the lifecycle stage of a session
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Active reports whether a game is in progress, paused or not
func (p Phase) Active() bool {
	return p == PhaseRunning || p == PhasePaused
}

// Banner is the overlay text shown over the arena
type Banner struct {
	Visible bool
	Title   string
	Message string
}

// State holds the scalar progression state of a session
type State struct {
	Phase Phase

	// Simulated seconds since the game started; drives drift and scheduling
	Elapsed float64

	Score     int
	Wave      int
	Level     int
	HighScore int

	EnemiesKilled    int
	BossSpawned      bool
	BodyguardsActive bool
	SoundEnabled     bool

	SpawnTimer    float64
	SpawnInterval float64

	Banner Banner
}

// Running reports whether a game is in progress, paused or not
func (s *State) Running() bool {
	return s.Phase.Active()
}

// Paused reports whether the simulation is frozen
func (s *State) Paused() bool {
	return s.Phase == PhasePaused
}

// WaveForScore returns the wave number for a score
func WaveForScore(score, pointsPerWave int) int {
	if pointsPerWave <= 0 {
		return 1
	}
	return 1 + score/pointsPerWave
}
