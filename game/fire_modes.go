package game

import "image/color"

// FireModeID names an entry in the fire-mode catalog
type FireModeID string

const (
	FireModeNormal       FireModeID = "normal"
	FireModeRapid        FireModeID = "rapid"
	FireModeWide         FireModeID = "wide"
	FireModeWild         FireModeID = "wild"
	FireModePowerful     FireModeID = "powerful"
	FireModeRapidWide    FireModeID = "rapidWide"
	FireModeOverwhelming FireModeID = "overwhelming"
	FireModeHoming       FireModeID = "homing"
	FireModeWideHoming   FireModeID = "wideHoming"
)

// FireModeOrder lists the catalog in digit-key order (1-9)
var FireModeOrder = []FireModeID{
	FireModeNormal,
	FireModeRapid,
	FireModeWide,
	FireModeWild,
	FireModePowerful,
	FireModeRapidWide,
	FireModeOverwhelming,
	FireModeHoming,
	FireModeWideHoming,
}

// HomingTurnRate is how fast a homing bullet can turn in radians per second
const HomingTurnRate = 4.0

// FireMode holds configuration for a player weapon
type FireMode struct {
	ID           FireModeID
	Name         string // Display name for the HUD
	Cooldown     float64
	Damage       int
	BulletWidth  float64
	BulletHeight float64
	BulletSpeed  float64
	BulletColor  color.RGBA
	Count        int     // Bullets per volley
	Spread       float64 // Spread angle in degrees
	RandomSpread bool    // Scatter bullets randomly inside the spread instead of evenly
	Homing       bool    // Bullets steer toward live enemies
	AimAtTarget  bool    // Homing bullets launch pointed at their target instead of along the spread
}

// GetFireMode returns configuration for a fire mode, falling back to the normal mode
func GetFireMode(id FireModeID) FireMode {
	switch id {
	case FireModeNormal:
		return FireMode{
			ID:           FireModeNormal,
			Name:         "Normal",
			Cooldown:     0.22,
			Damage:       1,
			BulletWidth:  6,
			BulletHeight: 16,
			BulletSpeed:  520,
			BulletColor:  color.RGBA{0x37, 0xd6, 0xff, 0xff},
			Count:        1,
		}
	case FireModeRapid:
		return FireMode{
			ID:           FireModeRapid,
			Name:         "Rapid",
			Cooldown:     0.08,
			Damage:       1,
			BulletWidth:  5,
			BulletHeight: 14,
			BulletSpeed:  580,
			BulletColor:  color.RGBA{0x90, 0xe0, 0xff, 0xff},
			Count:        1,
		}
	case FireModeWide:
		return FireMode{
			ID:           FireModeWide,
			Name:         "Wide",
			Cooldown:     0.25,
			Damage:       1,
			BulletWidth:  5,
			BulletHeight: 15,
			BulletSpeed:  500,
			BulletColor:  color.RGBA{0x2d, 0x9e, 0xff, 0xff},
			Count:        3,
			Spread:       20,
		}
	case FireModeWild:
		return FireMode{
			ID:           FireModeWild,
			Name:         "Wild",
			Cooldown:     0.18,
			Damage:       1,
			BulletWidth:  4,
			BulletHeight: 12,
			BulletSpeed:  550,
			BulletColor:  color.RGBA{0xff, 0x5b, 0x4d, 0xff},
			Count:        5,
			Spread:       35,
			RandomSpread: true,
		}
	case FireModePowerful:
		return FireMode{
			ID:           FireModePowerful,
			Name:         "Powerful",
			Cooldown:     0.35,
			Damage:       3,
			BulletWidth:  10,
			BulletHeight: 24,
			BulletSpeed:  480,
			BulletColor:  color.RGBA{0xff, 0xaa, 0x00, 0xff},
			Count:        1,
		}
	case FireModeRapidWide:
		return FireMode{
			ID:           FireModeRapidWide,
			Name:         "Rapid Wide",
			Cooldown:     0.12,
			Damage:       1,
			BulletWidth:  5,
			BulletHeight: 14,
			BulletSpeed:  560,
			BulletColor:  color.RGBA{0x00, 0xff, 0x88, 0xff},
			Count:        4,
			Spread:       25,
		}
	case FireModeOverwhelming:
		return FireMode{
			ID:           FireModeOverwhelming,
			Name:         "Overwhelming",
			Cooldown:     0.45,
			Damage:       12,
			BulletWidth:  16,
			BulletHeight: 32,
			BulletSpeed:  540,
			BulletColor:  color.RGBA{0xff, 0x00, 0xff, 0xff},
			Count:        7,
			Spread:       40,
		}
	case FireModeHoming:
		return FireMode{
			ID:           FireModeHoming,
			Name:         "Homing",
			Cooldown:     0.06,
			Damage:       1,
			BulletWidth:  6,
			BulletHeight: 14,
			BulletSpeed:  600,
			BulletColor:  color.RGBA{0x00, 0xff, 0xff, 0xff},
			Count:        5,
			Spread:       30,
			Homing:       true,
			AimAtTarget:  true,
		}
	case FireModeWideHoming:
		return FireMode{
			ID:           FireModeWideHoming,
			Name:         "Wide Homing",
			Cooldown:     0.08,
			Damage:       1,
			BulletWidth:  5,
			BulletHeight: 12,
			BulletSpeed:  580,
			BulletColor:  color.RGBA{0x00, 0xff, 0xaa, 0xff},
			Count:        8,
			Spread:       50,
			Homing:       true,
		}
	default:
		return GetFireMode(FireModeNormal)
	}
}

// FireModeForDigit maps a digit key (1-9) to a fire mode
func FireModeForDigit(digit int) (FireModeID, bool) {
	if digit < 1 || digit > len(FireModeOrder) {
		return "", false
	}
	return FireModeOrder[digit-1], true
}
