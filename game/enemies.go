package game

import (
	"image/color"
	"math"
)

const (
	initialSpawnInterval = 1.35
	minSpawnInterval     = 0.85
	minSpawnTimer        = 0.55

	// Regular spawns continue alongside a boss from this level on, up to escortCap enemies
	escortLevel = 4
	escortCap   = 3
)

var (
	enemyBulletColor = color.RGBA{0xff, 0x5b, 0x4d, 0xff}
	bombColor        = color.RGBA{0xff, 0xaa, 0x00, 0xff}
)

func (s *Session) updateEnemies(dt float64) {
	hasBoss, hasRegular := false, false
	for _, e := range s.enemies {
		if e.IsBoss() {
			hasBoss = true
		} else {
			hasRegular = true
		}
	}

	if !s.state.BossSpawned && s.state.EnemiesKilled >= BossKillThreshold(s.state.Level) && !hasRegular && !hasBoss {
		s.spawnBoss()
	}

	if !s.state.BossSpawned || (hasBoss && s.state.Level >= escortLevel && len(s.enemies) < escortCap) {
		s.state.SpawnTimer -= dt
		if s.state.SpawnTimer <= 0 {
			s.spawnEnemy()
			s.state.SpawnTimer = math.Max(minSpawnTimer, s.state.SpawnInterval-float64(s.state.Wave)*0.05)
		}
	}

	for i := len(s.enemies) - 1; i >= 0; i-- {
		e := s.enemies[i]
		if e.IsBoss() {
			s.updateBoss(e, dt)
			continue
		}

		e.Y += e.Speed * dt
		e.X += math.Sin(s.state.Elapsed*2+e.Phase) * 40 * dt

		if e.Y-e.H > s.config.ArenaHeight+20 {
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
		}
	}
}

// spawnEnemy adds one regular enemy above the arena, picked from the level's composition
func (s *Session) spawnEnemy() {
	kind := PickEnemyKind(s.state.Level, s.rng.Float64())
	cfg := GetEnemyTypeConfig(kind)
	base := BaseEnemySpeed(s.state.Level, s.state.Wave)

	s.enemies = append(s.enemies, &Enemy{
		Box: Box{
			X: 60 + s.rng.Float64()*(s.config.ArenaWidth-120),
			Y: -cfg.Height,
			W: cfg.Width,
			H: cfg.Height,
		},
		Speed:  base*cfg.SpeedFactor + s.rng.Float64()*cfg.SpeedJitter,
		HP:     cfg.HP,
		Phase:  s.rng.Float64() * math.Pi * 2,
		Points: cfg.Points,
		Kind:   kind,
	})
}

// spawnBoss adds the level's boss; at most one per level
func (s *Session) spawnBoss() {
	if s.state.BossSpawned {
		return
	}
	s.state.BossSpawned = true

	level := float64(s.state.Level)
	size := 80 + level*10
	hp := 10 + s.state.Level*5

	s.enemies = append(s.enemies, &Enemy{
		Box:    Box{X: s.config.ArenaWidth / 2, Y: -size, W: size, H: size * 0.8},
		Speed:  60 + level*5,
		HP:     hp,
		Points: 100 * s.state.Level,
		Kind:   EnemyBoss,
		Boss: &BossState{
			MaxHP:      hp,
			CenterY:    s.config.ArenaHeight * 0.3,
			AmplitudeX: s.config.ArenaWidth * 0.3,
			AmplitudeY: s.config.ArenaHeight * 0.15,
		},
	})
	s.logger.Info("boss spawned", "level", s.state.Level, "hp", hp)
}

func (s *Session) updateBoss(e *Enemy, dt float64) {
	b := e.Boss
	b.PhaseX += dt * 0.8
	b.PhaseY += dt * 0.5

	e.X = s.config.ArenaWidth/2 + math.Sin(b.PhaseX)*b.AmplitudeX
	e.Y = b.CenterY + math.Sin(b.PhaseY)*b.AmplitudeY
	e.X = clamp(e.X, e.W/2, s.config.ArenaWidth-e.W/2)
	e.Y = clamp(e.Y, e.H/2, s.config.ArenaHeight*0.6)

	level := float64(s.state.Level)

	b.ShootCooldown -= dt
	if b.ShootCooldown <= 0 {
		s.spawnBossBullet(e)
		b.ShootCooldown = 1.5 - level*0.1
	}

	b.BombCooldown -= dt
	if b.BombCooldown <= 0 {
		s.spawnBossBomb(e)
		b.BombCooldown = 3 - level*0.2
	}
}

// spawnBossBullet fires an aimed shot from the boss toward the player
func (s *Session) spawnBossBullet(boss *Enemy) {
	speed := 200 + float64(s.state.Level)*20
	dx := s.player.X - boss.X
	dy := s.player.Y - boss.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dx, dy, dist = 0, 1, 1
	}

	s.enemyBullets = append(s.enemyBullets, &EnemyBullet{
		Box:   Box{X: boss.X, Y: boss.Y + boss.H/2, W: 8, H: 12},
		VX:    dx / dist * speed,
		VY:    dy / dist * speed,
		Speed: speed,
		Color: enemyBulletColor,
	})
	s.play(CueBossShoot)
}

func (s *Session) spawnBossBomb(boss *Enemy) {
	s.bombs = append(s.bombs, &Bomb{
		Box:   Box{X: boss.X, Y: boss.Y + boss.H/2, W: 16, H: 16},
		Speed: 150 + float64(s.state.Level)*15,
		Color: bombColor,
	})
	s.play(CueBossBomb)
}
