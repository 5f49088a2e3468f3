package frontend

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"stardefender/game"
	"stardefender/profiling"
)

// Options configure the desktop window
type Options struct {
	Title        string
	Width        int
	Height       int
	Profile      bool
	ProfileDir   string
	FPSThreshold float64
}

// Game adapts a session to ebiten's update/draw loop
type Game struct {
	session  *game.Session
	renderer *Renderer
	keyboard *Keyboard
	logger   *slog.Logger

	width, height int

	profiler *profiling.Profiler
	monitor  *profiling.FPSMonitor
	lastTick time.Time
}

// NewGame attaches a fresh renderer to session
func NewGame(session *game.Session, opts Options, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "frontend")

	renderer := NewRenderer()
	session.SetRenderer(renderer)

	cfg := session.Config()
	g := &Game{
		session:  session,
		renderer: renderer,
		keyboard: NewKeyboard(logger),
		logger:   logger,
		width:    int(cfg.ArenaWidth),
		height:   int(cfg.ArenaHeight),
	}
	if opts.Profile {
		now := time.Now()
		g.profiler = profiling.NewProfiler(opts.ProfileDir, logger)
		g.monitor = profiling.NewFPSMonitor(opts.FPSThreshold, now)
		g.lastTick = now
	}
	return g
}

// Run opens the window and blocks until it closes
func (g *Game) Run(opts Options) error {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = g.width, g.height
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(g)
}

// Update reads input and advances the session by wall-clock time
func (g *Game) Update() error {
	now := time.Now()
	g.keyboard.Apply(g.session)
	g.session.Tick(now)

	if g.monitor != nil {
		dt := now.Sub(g.lastTick).Seconds()
		g.lastTick = now
		if g.monitor.Observe(dt, now) {
			fps := g.monitor.FPS()
			g.logger.Warn("fps drop", "fps", fps)
			if err := g.profiler.CaptureProfile(fmt.Sprintf("fps%.0f", fps)); err != nil {
				g.logger.Debug("profile not captured", "error", err)
			}
		}
	}
	return nil
}

// Draw paints the latest frame; idle and finished sessions are drawn from a fresh snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	snap, ok := g.renderer.Latest()
	if !ok || !g.session.Phase().Active() {
		snap = g.session.Snapshot()
	}
	g.renderer.Draw(screen, snap)
}

// Layout keeps the arena size as the logical screen
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
