package game

// EnemyKind defines different types of enemies
type EnemyKind int

const (
	EnemyFighter     EnemyKind = iota // Baseline, one hit
	EnemyInterceptor                  // Faster, one hit
	EnemyBomber                       // Slow and sturdy
	EnemyAdvanced                     // Balanced elite
	EnemyDefender                     // Fast and tough
	EnemyBoss                         // One per level
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyFighter:
		return "fighter"
	case EnemyInterceptor:
		return "interceptor"
	case EnemyBomber:
		return "bomber"
	case EnemyAdvanced:
		return "advanced"
	case EnemyDefender:
		return "defender"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// EnemyTypeConfig holds base stats for a regular enemy type
type EnemyTypeConfig struct {
	Kind        EnemyKind
	Width       float64
	Height      float64
	HP          int
	Points      int
	SpeedFactor float64 // Multiplier on the level/wave base speed
	SpeedJitter float64 // Random extra speed in [0, SpeedJitter)
}

// GetEnemyTypeConfig returns configuration for an enemy type
func GetEnemyTypeConfig(kind EnemyKind) EnemyTypeConfig {
	switch kind {
	case EnemyFighter:
		return EnemyTypeConfig{Kind: EnemyFighter, Width: 36, Height: 26, HP: 1, Points: 10, SpeedFactor: 1.0, SpeedJitter: 60}
	case EnemyInterceptor:
		return EnemyTypeConfig{Kind: EnemyInterceptor, Width: 32, Height: 24, HP: 1, Points: 15, SpeedFactor: 1.3, SpeedJitter: 80}
	case EnemyBomber:
		return EnemyTypeConfig{Kind: EnemyBomber, Width: 48, Height: 34, HP: 3, Points: 30, SpeedFactor: 0.7, SpeedJitter: 40}
	case EnemyAdvanced:
		return EnemyTypeConfig{Kind: EnemyAdvanced, Width: 40, Height: 30, HP: 2, Points: 25, SpeedFactor: 1.1, SpeedJitter: 70}
	case EnemyDefender:
		return EnemyTypeConfig{Kind: EnemyDefender, Width: 44, Height: 32, HP: 4, Points: 50, SpeedFactor: 1.2, SpeedJitter: 90}
	default:
		return GetEnemyTypeConfig(EnemyFighter)
	}
}

type weightedKind struct {
	kind   EnemyKind
	weight float64
}

// levelComposition lists the enemy mix for levels 1-10; later levels reuse the last row
var levelComposition = [][]weightedKind{
	{{EnemyFighter, 1}},
	{{EnemyFighter, 0.6}, {EnemyInterceptor, 0.4}},
	{{EnemyFighter, 0.4}, {EnemyInterceptor, 0.3}, {EnemyBomber, 0.3}},
	{{EnemyFighter, 0.3}, {EnemyInterceptor, 0.2}, {EnemyBomber, 0.2}, {EnemyAdvanced, 0.3}},
	{{EnemyAdvanced, 0.4}, {EnemyBomber, 0.3}, {EnemyDefender, 0.3}},
	{{EnemyAdvanced, 0.3}, {EnemyDefender, 0.3}, {EnemyBomber, 0.2}, {EnemyInterceptor, 0.2}},
	{{EnemyDefender, 0.5}, {EnemyAdvanced, 0.25}, {EnemyBomber, 0.25}},
	{{EnemyDefender, 0.6}, {EnemyAdvanced, 0.25}, {EnemyBomber, 0.15}},
	{{EnemyDefender, 0.75}, {EnemyAdvanced, 0.15}, {EnemyBomber, 0.1}},
	{{EnemyDefender, 1}},
}

// PickEnemyKind selects an enemy type for a level from a roll in [0, 1)
func PickEnemyKind(level int, roll float64) EnemyKind {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(levelComposition) {
		idx = len(levelComposition) - 1
	}

	table := levelComposition[idx]
	cumulative := 0.0
	for _, entry := range table {
		cumulative += entry.weight
		if roll < cumulative {
			return entry.kind
		}
	}
	return table[len(table)-1].kind
}

var bossKillThresholds = []int{15, 20, 25, 30, 35, 40, 45, 50, 55, 60}

// BossKillThreshold returns the kills needed in a level before its boss can appear
func BossKillThreshold(level int) int {
	if level < 1 || level > len(bossKillThresholds) {
		return bossKillThresholds[len(bossKillThresholds)-1]
	}
	return bossKillThresholds[level-1]
}

// BaseEnemySpeed returns the level- and wave-scaled speed regular enemies are built from
func BaseEnemySpeed(level, wave int) float64 {
	return 80 + float64(wave)*8 + float64(level-1)*10
}
