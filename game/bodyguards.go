package game

import (
	"image/color"
	"math"
)

const (
	patrolRadius     = 120.0
	patrolFlattening = 0.6
	patrolSpeed      = 1.5
	bodyguardSpeed   = 300.0

	bodyguardVolley      = 4
	bodyguardSpread      = 20.0
	bodyguardBulletSpeed = 500.0
)

var bodyguardBulletColor = color.RGBA{0x00, 0xff, 0x88, 0xff}

// spawnBodyguards places the two escorts beside and above the player
func (s *Session) spawnBodyguards() {
	s.bodyguards = s.bodyguards[:0]
	for i, interval := range []float64{0.15, 0.3} {
		side := -1.0
		if i == 1 {
			side = 1
		}
		s.bodyguards = append(s.bodyguards, &Bodyguard{
			Box: Box{
				X: s.player.X + side*100,
				Y: s.player.Y - 80,
				W: 28,
				H: 22,
			},
			ShootInterval: interval,
			PatrolPhase:   s.rng.Float64() * math.Pi * 2,
		})
	}
}

func (s *Session) updateBodyguards(dt float64) {
	if !s.state.BodyguardsActive {
		return
	}

	centerX := s.player.X
	centerY := s.player.Y - 100

	for _, bg := range s.bodyguards {
		bg.PatrolPhase += dt * patrolSpeed

		targetX := centerX + math.Cos(bg.PatrolPhase)*patrolRadius
		targetY := centerY + math.Sin(bg.PatrolPhase)*patrolRadius*patrolFlattening

		dx := targetX - bg.X
		dy := targetY - bg.Y
		if dist := math.Hypot(dx, dy); dist > 5 {
			bg.X += dx / dist * bodyguardSpeed * dt
			bg.Y += dy / dist * bodyguardSpeed * dt
		}

		bg.X = clamp(bg.X, bg.W/2, s.config.ArenaWidth-bg.W/2)
		bg.Y = clamp(bg.Y, bg.H/2, s.config.ArenaHeight-bg.H/2)

		bg.Cooldown -= dt
		if bg.Cooldown > 0 {
			continue
		}

		// Cooldown stays expired until there is something to shoot
		target := s.nearestCandidate(bg.X, bg.Y)
		if target == nil {
			continue
		}
		s.bodyguardVolley(bg, target)
		bg.Cooldown = bg.ShootInterval
	}
}

func (s *Session) bodyguardVolley(bg *Bodyguard, target *Enemy) {
	baseAngle := math.Atan2(target.Y-bg.Y, target.X-bg.X)
	spread := bodyguardSpread * math.Pi / 180

	for i := 0; i < bodyguardVolley; i++ {
		offset := (float64(i) - float64(bodyguardVolley-1)/2) * spread / float64(bodyguardVolley-1)
		angle := baseAngle + offset
		s.bodyguardBullets = append(s.bodyguardBullets, &Bullet{
			Box:    Box{X: bg.X, Y: bg.Y - bg.H/2, W: 4, H: 10},
			VX:     math.Cos(angle) * bodyguardBulletSpeed,
			VY:     math.Sin(angle) * bodyguardBulletSpeed,
			Speed:  bodyguardBulletSpeed,
			Damage: 1,
			Color:  bodyguardBulletColor,
		})
	}
	s.play(CueShoot)
}
