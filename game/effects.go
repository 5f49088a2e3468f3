package game

import (
	"image/color"
	"math"
)

const particleLife = 0.6

// spawnParticles emits a burst of count sparks in random directions
func (s *Session) spawnParticles(x, y float64, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * math.Pi * 2
		speed := s.randRange(80, 200)
		s.particles = append(s.particles, &Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    particleLife,
			MaxLife: particleLife,
			Color:   c,
		})
	}
}

func (s *Session) updateParticles(dt float64) {
	for i := len(s.particles) - 1; i >= 0; i-- {
		p := s.particles[i]
		p.Life -= dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.Life <= 0 {
			s.particles = append(s.particles[:i], s.particles[i+1:]...)
		}
	}
}

func (s *Session) initStars() {
	s.stars = s.stars[:0]
	for i := 0; i < s.config.StarCount; i++ {
		s.stars = append(s.stars, &Star{
			X:     s.rng.Float64() * s.config.ArenaWidth,
			Y:     s.rng.Float64() * s.config.ArenaHeight,
			Speed: s.randRange(40, 130),
			Size:  s.randRange(1, 3),
		})
	}
}

func (s *Session) updateStars(dt float64) {
	scale := 1 + float64(s.state.Wave)*0.04
	for _, star := range s.stars {
		star.Y += star.Speed * dt * scale
		if star.Y > s.config.ArenaHeight {
			star.Y = -2
			star.X = s.rng.Float64() * s.config.ArenaWidth
		}
	}
}

// spawnAsteroid launches an asteroid from a random edge in a random direction
func (s *Session) spawnAsteroid() {
	size := s.randRange(20, 50)
	speed := s.randRange(30, 80)
	angle := s.rng.Float64() * math.Pi * 2
	w, h := s.config.ArenaWidth, s.config.ArenaHeight

	var x, y float64
	switch s.rng.Intn(4) {
	case 0: // top
		x, y = s.rng.Float64()*w, -size
	case 1: // right
		x, y = w+size, s.rng.Float64()*h
	case 2: // bottom
		x, y = s.rng.Float64()*w, h+size
	default: // left
		x, y = -size, s.rng.Float64()*h
	}

	s.asteroids = append(s.asteroids, &Asteroid{
		X:             x,
		Y:             y,
		Size:          size,
		VX:            math.Cos(angle) * speed,
		VY:            math.Sin(angle) * speed,
		Rotation:      s.rng.Float64() * math.Pi * 2,
		RotationSpeed: (s.rng.Float64() - 0.5) * 2,
		Shape:         s.asteroidShape(size),
	})
}

// asteroidShape builds an irregular polygon of 6 to 9 points
func (s *Session) asteroidShape(size float64) []Point {
	n := 6 + s.rng.Intn(4)
	shape := make([]Point, n)
	for i := range shape {
		angle := math.Pi * 2 * float64(i) / float64(n)
		radius := size * s.randRange(0.7, 1.0)
		shape[i] = Point{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}
	}
	return shape
}

func (s *Session) updateAsteroids(dt float64) {
	if s.rng.Float64() < s.config.AsteroidSpawnChance*dt && len(s.asteroids) < s.config.MaxAsteroids {
		s.spawnAsteroid()
	}

	w, h := s.config.ArenaWidth, s.config.ArenaHeight
	for _, a := range s.asteroids {
		a.X += a.VX * dt
		a.Y += a.VY * dt
		a.Rotation += a.RotationSpeed * dt

		if a.X < -a.Size*2 {
			a.X = w + a.Size
		}
		if a.X > w+a.Size*2 {
			a.X = -a.Size
		}
		if a.Y < -a.Size*2 {
			a.Y = h + a.Size
		}
		if a.Y > h+a.Size*2 {
			a.Y = -a.Size
		}
	}
}
