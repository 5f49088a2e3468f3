package profiling

import "time"

// FPSMonitor averages frame rate over half-second windows and flags drops
type FPSMonitor struct {
	Threshold float64
	Warmup    time.Duration
	Cooldown  time.Duration

	started  time.Time
	lastDrop time.Time
	timer    float64
	frames   int
	fps      float64
}

// NewFPSMonitor flags windows below threshold once warmup has passed since start
func NewFPSMonitor(threshold float64, start time.Time) *FPSMonitor {
	return &FPSMonitor{
		Threshold: threshold,
		Warmup:    3 * time.Second,
		Cooldown:  10 * time.Second,
		started:   start,
	}
}

// FPS returns the last measured rate
func (m *FPSMonitor) FPS() float64 {
	return m.fps
}

// Observe records one frame of dt seconds and reports whether a drop should be captured
func (m *FPSMonitor) Observe(dt float64, now time.Time) bool {
	m.timer += dt
	m.frames++
	if m.timer < 0.5 {
		return false
	}

	m.fps = float64(m.frames) / m.timer
	m.frames = 0
	m.timer = 0

	if m.Threshold <= 0 || m.fps >= m.Threshold {
		return false
	}
	if now.Sub(m.started) < m.Warmup {
		return false
	}
	if !m.lastDrop.IsZero() && now.Sub(m.lastDrop) < m.Cooldown {
		return false
	}
	m.lastDrop = now
	return true
}
