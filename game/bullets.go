package game

import "math"

func (s *Session) updateBullets(dt float64) {
	for i := len(s.bullets) - 1; i >= 0; i-- {
		b := s.bullets[i]

		if b.Homing != nil {
			s.steerHoming(b, dt)
		}

		b.X += b.VX * dt
		b.Y += b.VY * dt

		if s.bulletOffscreen(b) {
			s.bullets = append(s.bullets[:i], s.bullets[i+1:]...)
		}
	}
}

func (s *Session) bulletOffscreen(b *Bullet) bool {
	return b.Y+b.H < 0 || b.X < -b.W || b.X > s.config.ArenaWidth+b.W || b.Y > s.config.ArenaHeight+b.H
}

// steerHoming turns a homing bullet toward its target, picking the nearest
// candidate when the old one is gone, or dropping to straight flight when none is left
func (s *Session) steerHoming(b *Bullet, dt float64) {
	h := b.Homing
	if h.Target == nil || !h.Target.Alive() || !s.hasEnemy(h.Target) {
		h.Target = s.nearestCandidate(b.X, b.Y)
		if h.Target == nil {
			b.Homing = nil
			return
		}
	}

	targetAngle := math.Atan2(h.Target.Y-b.Y, h.Target.X-b.X)
	currentAngle := math.Atan2(b.VY, b.VX)
	newAngle := RotateTowardsTarget(currentAngle, targetAngle, h.TurnRate, dt)

	b.VX = math.Cos(newAngle) * b.Speed
	b.VY = math.Sin(newAngle) * b.Speed
}

func (s *Session) hasEnemy(target *Enemy) bool {
	for _, e := range s.enemies {
		if e == target {
			return true
		}
	}
	return false
}

func (s *Session) nearestCandidate(x, y float64) *Enemy {
	var closest *Enemy
	closestDist := math.Inf(1)
	for _, e := range s.homingCandidates() {
		if d := distance(x, y, e.X, e.Y); d < closestDist {
			closestDist = d
			closest = e
		}
	}
	return closest
}

func (s *Session) updateEnemyBullets(dt float64) {
	for i := len(s.enemyBullets) - 1; i >= 0; i-- {
		b := s.enemyBullets[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt
		if b.Y-b.H > s.config.ArenaHeight || b.X < -b.W || b.X > s.config.ArenaWidth+b.W {
			s.enemyBullets = append(s.enemyBullets[:i], s.enemyBullets[i+1:]...)
		}
	}
}

func (s *Session) updateBombs(dt float64) {
	for i := len(s.bombs) - 1; i >= 0; i-- {
		bomb := s.bombs[i]
		bomb.Y += bomb.Speed * dt
		bomb.Rotation += dt * 3
		if bomb.Y-bomb.H > s.config.ArenaHeight {
			s.bombs = append(s.bombs[:i], s.bombs[i+1:]...)
		}
	}
}

func (s *Session) updateBodyguardBullets(dt float64) {
	for i := len(s.bodyguardBullets) - 1; i >= 0; i-- {
		b := s.bodyguardBullets[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt
		if s.bulletOffscreen(b) {
			s.bodyguardBullets = append(s.bodyguardBullets[:i], s.bodyguardBullets[i+1:]...)
		}
	}
}
