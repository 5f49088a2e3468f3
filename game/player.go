package game

import "math"

func (s *Session) updatePlayer(dt float64) {
	p := &s.player

	dirX, dirY := s.input.Direction()
	p.X += dirX * p.Speed * dt
	p.Y += dirY * p.Speed * dt
	p.X = clamp(p.X, p.W/2, s.config.ArenaWidth-p.W/2)
	p.Y = clamp(p.Y, p.H/2, s.config.ArenaHeight-p.H/2)

	mode := GetFireMode(p.FireMode)
	if p.Cooldown > 0 {
		p.Cooldown -= dt
	}
	if s.input.Fire && p.Cooldown <= 0 {
		s.spawnVolley(mode)
		p.Cooldown = mode.Cooldown
	}

	// Shield toggles once per press; holding the key does nothing more
	if s.input.Shield && !p.Shield.KeyConsumed {
		p.Shield.Active = !p.Shield.Active
		p.Shield.KeyConsumed = true
		if p.Shield.Active {
			s.play(CueShieldActivate)
		} else {
			s.play(CueShieldDeactivate)
		}
	}
	if !s.input.Shield {
		p.Shield.KeyConsumed = false
	}
}

// homingCandidates returns live regular enemies that have not fallen past the arena bottom
func (s *Session) homingCandidates() []*Enemy {
	var out []*Enemy
	for _, e := range s.enemies {
		if !e.IsBoss() && e.Alive() && e.Y < s.config.ArenaHeight {
			out = append(out, e)
		}
	}
	return out
}

// spawnVolley fires one volley of the given mode from the player's nose
func (s *Session) spawnVolley(mode FireMode) {
	p := &s.player
	baseAngle := -math.Pi / 2
	muzzleX := p.X
	muzzleY := p.Y - p.H/2

	var targets []*Enemy
	if mode.Homing {
		targets = s.homingCandidates()
	}

	for i := 0; i < mode.Count; i++ {
		angle := baseAngle
		if mode.Spread > 0 {
			spread := mode.Spread * math.Pi / 180
			if mode.RandomSpread {
				angle = baseAngle + (s.rng.Float64()-0.5)*spread
			} else {
				divisor := float64(mode.Count - 1)
				if divisor == 0 {
					divisor = 1
				}
				angle = baseAngle + (float64(i)-float64(mode.Count-1)/2)*spread/divisor
			}
		}

		var homing *Homing
		if mode.Homing && len(targets) > 0 {
			target := targets[i%len(targets)]
			homing = &Homing{Target: target, TurnRate: HomingTurnRate}
			if mode.AimAtTarget {
				angle = math.Atan2(target.Y-muzzleY, target.X-muzzleX)
			}
		}

		s.bullets = append(s.bullets, &Bullet{
			Box:    Box{X: muzzleX, Y: muzzleY, W: mode.BulletWidth, H: mode.BulletHeight},
			VX:     math.Cos(angle) * mode.BulletSpeed,
			VY:     math.Sin(angle) * mode.BulletSpeed,
			Speed:  mode.BulletSpeed,
			Damage: mode.Damage,
			Color:  mode.BulletColor,
			Homing: homing,
		})
	}

	s.play(CueShoot)
}
