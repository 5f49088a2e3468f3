package game

import (
	"image/color"
	"math"
)

var (
	sparkColor    = color.RGBA{0xff, 0xea, 0x61, 0xff}
	explodeColor  = color.RGBA{0xff, 0x5b, 0x4d, 0xff}
	shieldColor   = color.RGBA{0x37, 0xd6, 0xff, 0xff}
	blastColor    = color.RGBA{0xff, 0xaa, 0x00, 0xff}
	rockDustColor = color.RGBA{0x88, 0x88, 0x88, 0xff}
)

// checkCollisions resolves every store pair in a fixed order.
// Each projectile is consumed by the first thing it touches.
func (s *Session) checkCollisions() {
	s.collideBulletsAsteroids()
	s.bullets = s.collideBulletsEnemies(s.bullets)
	s.bodyguardBullets = s.collideBulletsEnemies(s.bodyguardBullets)
	s.collideEnemiesPlayer()
	s.collideEnemyBulletsPlayer()
	s.collideBombsPlayer()
	s.collideAsteroidsPlayer()
}

func (s *Session) collideBulletsAsteroids() {
	for i := len(s.bullets) - 1; i >= 0; i-- {
		b := s.bullets[i]
		for _, a := range s.asteroids {
			if CircleRectIntersect(a.X, a.Y, a.Size, b.Box) {
				s.bullets = append(s.bullets[:i], s.bullets[i+1:]...)
				s.spawnParticles(b.X, b.Y, bulletColor(b), 8)
				s.play(CueHit)
				break
			}
		}
	}
}

// collideBulletsEnemies applies bullet damage to enemies and returns the surviving bullets.
// An enemy can take several bullets in one pass; it leaves the store as soon as its hp runs out.
func (s *Session) collideBulletsEnemies(bullets []*Bullet) []*Bullet {
	for i := len(bullets) - 1; i >= 0; i-- {
		b := bullets[i]
		for j := len(s.enemies) - 1; j >= 0; j-- {
			e := s.enemies[j]
			if !RectsIntersect(e.Box, b.Box) {
				continue
			}

			bullets = append(bullets[:i], bullets[i+1:]...)
			damage := b.Damage
			if damage <= 0 {
				damage = 1
			}
			e.HP -= damage
			s.spawnParticles(e.X, e.Y, bulletColor(b), 10)

			if !e.Alive() {
				s.enemies = append(s.enemies[:j], s.enemies[j+1:]...)
				s.destroyEnemy(e)
			}
			break
		}
	}
	return bullets
}

// destroyEnemy awards points for a kill and schedules the level advance after a boss
func (s *Session) destroyEnemy(e *Enemy) {
	s.state.Score += e.Points
	s.state.EnemiesKilled++
	s.recordScore()

	if e.IsBoss() {
		s.spawnParticles(e.X, e.Y, explodeColor, 30)
		s.play(CueBossDefeat)
		s.logger.Info("boss defeated", "level", s.state.Level, "score", s.state.Score)
		s.scheduler.After(s.state.Elapsed, s.config.LevelAdvanceDelay, func() {
			if s.state.Running() {
				s.advanceLevel()
			}
		})
		return
	}

	s.spawnParticles(e.X, e.Y, explodeColor, 14)
	s.play(CueExplosion)
}

func (s *Session) collideEnemiesPlayer() {
	for i := len(s.enemies) - 1; i >= 0; i-- {
		e := s.enemies[i]
		if !RectsIntersect(e.Box, s.player.Box) {
			continue
		}
		s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
		if s.player.Shield.Active {
			s.spawnParticles(s.player.X, s.player.Y, shieldColor, 12)
			s.play(CueShieldBlock)
		} else {
			s.spawnParticles(s.player.X, s.player.Y, explodeColor, 16)
			s.LoseLife()
		}
	}
}

func (s *Session) collideEnemyBulletsPlayer() {
	for i := len(s.enemyBullets) - 1; i >= 0; i-- {
		b := s.enemyBullets[i]
		if !RectsIntersect(b.Box, s.player.Box) {
			continue
		}
		s.enemyBullets = append(s.enemyBullets[:i], s.enemyBullets[i+1:]...)
		if s.player.Shield.Active {
			s.spawnParticles(b.X, b.Y, shieldColor, 8)
			s.play(CueShieldBlock)
		} else {
			s.spawnParticles(s.player.X, s.player.Y, explodeColor, 12)
			s.play(CuePlayerHit)
			s.LoseLife()
		}
	}
}

func (s *Session) collideBombsPlayer() {
	for i := len(s.bombs) - 1; i >= 0; i-- {
		bomb := s.bombs[i]
		if !RectsIntersect(bomb.Box, s.player.Box) {
			continue
		}
		s.bombs = append(s.bombs[:i], s.bombs[i+1:]...)
		if s.player.Shield.Active {
			s.spawnParticles(bomb.X, bomb.Y, shieldColor, 15)
			s.play(CueShieldBlock)
		} else {
			s.spawnParticles(s.player.X, s.player.Y, blastColor, 20)
			s.play(CueExplosion)
			s.LoseLife()
		}
	}
}

// collideAsteroidsPlayer knocks asteroids away from the player; asteroids are never destroyed
func (s *Session) collideAsteroidsPlayer() {
	for i := len(s.asteroids) - 1; i >= 0; i-- {
		a := s.asteroids[i]
		if !CircleRectIntersect(a.X, a.Y, a.Size, s.player.Box) {
			continue
		}

		impulse := 150.0
		if s.player.Shield.Active {
			impulse = 100
			s.spawnParticles(a.X, a.Y, shieldColor, 12)
			s.play(CueShieldBlock)
		} else {
			s.spawnParticles(s.player.X, s.player.Y, rockDustColor, 16)
			s.play(CuePlayerHit)
			s.LoseLife()
		}

		dx := a.X - s.player.X
		dy := a.Y - s.player.Y
		if dist := math.Hypot(dx, dy); dist > 0 {
			a.VX += dx / dist * impulse
			a.VY += dy / dist * impulse
		}
	}
}

func bulletColor(b *Bullet) color.RGBA {
	if b.Color.A == 0 {
		return sparkColor
	}
	return b.Color
}
