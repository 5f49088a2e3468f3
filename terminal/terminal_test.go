package terminal

import (
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"stardefender/game"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func newSession(t *testing.T) *game.Session {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.AsteroidSpawnChance = 0
	s := game.NewSession(cfg, game.Deps{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Rand:   rand.New(rand.NewSource(1)),
	})
	s.SetRenderer(game.RendererFunc(func(game.Snapshot) {}))
	return s
}

func rowText(screen tcell.SimulationScreen, row, cols int) string {
	var b strings.Builder
	for col := 0; col < cols; col++ {
		ch, _, _, _ := screen.GetContent(col, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestRendererPlacesPlayerAndHUD(t *testing.T) {
	// 900x600 arena onto 90 columns and 30 arena rows: 10 units per column, 20 per row
	screen := newScreen(t, 90, 31)
	s := newSession(t)

	NewRenderer(screen).Render(s.Snapshot())

	// Player starts at (450, 510)
	if ch, _, _, _ := screen.GetContent(45, 1+25); ch != 'A' {
		t.Errorf("player cell = %q, want 'A'", ch)
	}
	if hud := rowText(screen, 0, 90); !strings.HasPrefix(hud, "SCORE 000000") {
		t.Errorf("HUD row = %q", hud)
	}
}

func TestRendererShowsTitleBanner(t *testing.T) {
	screen := newScreen(t, 90, 31)
	s := newSession(t)

	NewRenderer(screen).Render(s.Snapshot())

	found := false
	for row := 1; row < 31; row++ {
		if strings.Contains(rowText(screen, row, 90), "Retro Star Defender") {
			found = true
			break
		}
	}
	if !found {
		t.Error("title banner not drawn")
	}
}

func TestRendererShowsPause(t *testing.T) {
	screen := newScreen(t, 90, 31)
	s := newSession(t)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.TogglePause()

	NewRenderer(screen).Render(s.Snapshot())

	mid := 1 + 30/2
	if row := rowText(screen, mid, 90); !strings.Contains(row, "PAUSED") {
		t.Errorf("row %d = %q, want PAUSED", mid, row)
	}
}

func TestHUDLine(t *testing.T) {
	line := hudLine(game.HUD{
		Score: 120, HighScore: 300, Level: 2, Wave: 2,
		Lives: 2, MaxLives: 3, FireModeName: "Rapid",
		ShieldActive: true, BossHP: 5, BossMaxHP: 20,
	})
	for _, want := range []string{"SCORE 000120", "HI 000300", "LIVES ##.", "FIRE Rapid", "SHIELD", "BOSS 5/20", "MUTED"} {
		if !strings.Contains(line, want) {
			t.Errorf("hudLine missing %q: %q", want, line)
		}
	}
}

func TestGridClipsOutsideArena(t *testing.T) {
	g := grid{cols: 90, rows: 31, sx: 0.1, sy: 0.05}
	if _, _, ok := g.cell(-5, 10); ok {
		t.Error("negative x mapped to a cell")
	}
	if _, _, ok := g.cell(10, 700); ok {
		t.Error("y below the arena mapped to a cell")
	}
	if col, row, ok := g.cell(899, 599); !ok || col != 89 || row != 30 {
		t.Errorf("cell(899, 599) = %d, %d, %v", col, row, ok)
	}
}

func TestHeldKeyExpires(t *testing.T) {
	s := newSession(t)
	c := NewControls(s, nil)
	t0 := time.Unix(100, 0)

	c.HandleKey(tcell.KeyLeft, 0, t0)
	c.Apply(t0.Add(50 * time.Millisecond))
	if !s.Input().Left {
		t.Error("left not held inside the hold window")
	}

	c.Apply(t0.Add(holdWindow + time.Millisecond))
	if s.Input().Left {
		t.Error("left still held after the hold window")
	}
}

func TestRuneBindings(t *testing.T) {
	s := newSession(t)
	c := NewControls(s, nil)
	t0 := time.Unix(100, 0)

	c.HandleKey(tcell.KeyRune, 'd', t0)
	c.HandleKey(tcell.KeyRune, ' ', t0)
	c.HandleKey(tcell.KeyRune, 'e', t0)
	c.Apply(t0)

	in := s.Input()
	if !in.Right || !in.Fire || !in.Shield || in.Left {
		t.Errorf("input = %+v", *in)
	}
}

func TestDiscreteKeysDebounce(t *testing.T) {
	s := newSession(t)
	c := NewControls(s, nil)
	t0 := time.Unix(100, 0)

	c.HandleKey(tcell.KeyEnter, 0, t0)
	if s.Phase() != game.PhaseRunning {
		t.Fatalf("phase = %v, want running", s.Phase())
	}

	c.HandleKey(tcell.KeyRune, 'p', t0)
	c.HandleKey(tcell.KeyRune, 'p', t0.Add(50*time.Millisecond))
	if s.Phase() != game.PhasePaused {
		t.Errorf("phase = %v after repeated p, want paused", s.Phase())
	}

	c.HandleKey(tcell.KeyRune, 'p', t0.Add(time.Second))
	if s.Phase() != game.PhaseRunning {
		t.Errorf("phase = %v after a fresh p, want running", s.Phase())
	}
}

func TestDigitSelectsFireMode(t *testing.T) {
	s := newSession(t)
	c := NewControls(s, nil)

	c.HandleKey(tcell.KeyRune, '3', time.Unix(100, 0))
	want := game.GetFireMode(game.FireModeWide).Name
	if got := s.Snapshot().HUD.FireModeName; got != want {
		t.Errorf("fire mode = %q, want %q", got, want)
	}
}

func TestQuitKeys(t *testing.T) {
	s := newSession(t)
	c := NewControls(s, nil)
	now := time.Unix(100, 0)

	if !c.HandleKey(tcell.KeyEscape, 0, now) {
		t.Error("Escape did not quit")
	}
	if !c.HandleKey(tcell.KeyRune, 'q', now) {
		t.Error("q did not quit")
	}
	if c.HandleKey(tcell.KeyRune, 'x', now) {
		t.Error("unbound rune quit")
	}
}
