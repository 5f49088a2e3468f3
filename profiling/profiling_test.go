package profiling

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// frames feeds n frames of dt and reports whether any flagged a drop
func frames(m *FPSMonitor, n int, dt float64, now time.Time) bool {
	dropped := false
	for i := 0; i < n; i++ {
		if m.Observe(dt, now) {
			dropped = true
		}
	}
	return dropped
}

func TestMonitorMeasuresFPS(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewFPSMonitor(50, start)

	frames(m, 31, 1.0/60, start.Add(5*time.Second))
	if got := m.FPS(); got < 59 || got > 61 {
		t.Errorf("FPS = %.1f, want about 60", got)
	}
}

func TestMonitorIgnoresDropsDuringWarmup(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewFPSMonitor(50, start)

	if frames(m, 11, 0.05, start.Add(time.Second)) {
		t.Error("drop flagged during warmup")
	}
	if m.FPS() > 25 {
		t.Errorf("FPS = %.1f, want 20", m.FPS())
	}
}

func TestMonitorFlagsDropOncePerCooldown(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewFPSMonitor(50, start)

	now := start.Add(4 * time.Second)
	if !frames(m, 11, 0.05, now) {
		t.Fatal("expected drop to be flagged")
	}
	if frames(m, 11, 0.05, now.Add(time.Second)) {
		t.Error("drop flagged again inside cooldown")
	}
	if !frames(m, 11, 0.05, now.Add(11*time.Second)) {
		t.Error("drop not flagged after cooldown")
	}
}

func TestMonitorDisabledWithoutThreshold(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewFPSMonitor(0, start)
	if frames(m, 10, 0.2, start.Add(time.Minute)) {
		t.Error("monitor with zero threshold flagged a drop")
	}
}

func TestProfilerWritesCaptures(t *testing.T) {
	dir := t.TempDir()
	p := NewProfiler(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.captureDuration = 10 * time.Millisecond

	if err := p.CaptureProfile("test"); err != nil {
		t.Fatalf("CaptureProfile: %v", err)
	}
	if err := p.CaptureProfile("again"); !errors.Is(err, ErrBusy) && !errors.Is(err, ErrCooldown) {
		t.Errorf("second capture = %v, want busy or cooldown", err)
	}
	p.Wait()

	if p.IsProfiling() {
		t.Error("still profiling after Wait")
	}
	if err := p.CaptureProfile("later"); !errors.Is(err, ErrCooldown) {
		t.Errorf("capture inside cooldown = %v, want ErrCooldown", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var cpu, tr bool
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".cpu.prof") {
			cpu = true
		}
		if strings.HasSuffix(name, ".trace") {
			tr = true
		}
	}
	if !cpu || !tr {
		t.Errorf("captures in %s: %v", filepath.Base(dir), entries)
	}
}
