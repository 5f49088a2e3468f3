package frontend

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"stardefender/game"
)

var (
	background   = color.RGBA{5, 6, 20, 255}
	starColor    = color.NRGBA{0x94, 0xea, 0xff, 0x99}
	shieldGlow   = color.RGBA{0x37, 0xd6, 0xff, 0xff}
	engineGlow   = color.RGBA{0x37, 0xd6, 0xff, 0xff}
	wingStripe   = color.RGBA{0xff, 0x5b, 0x4d, 0xff}
	escortHull   = color.RGBA{0x88, 0xff, 0x88, 0xff}
	escortEngine = color.RGBA{0x00, 0xff, 0x88, 0xff}
	bombCore     = color.RGBA{0xff, 0x66, 0x00, 0xff}
	rockOutline  = color.RGBA{0x99, 0x99, 0x99, 0xff}
	overlayShade = color.NRGBA{0, 0, 0, 0x80}
)

// hudFace is the bitmap face for all text
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Renderer draws session snapshots with ebiten vector primitives.
// It implements game.Renderer by keeping the latest snapshot for Draw.
type Renderer struct {
	snapshot game.Snapshot
	fresh    bool
}

// NewRenderer creates a renderer with no frame yet
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render stores the snapshot for the next Draw
func (r *Renderer) Render(s game.Snapshot) {
	r.snapshot = s
	r.fresh = true
}

// Latest returns the last rendered snapshot
func (r *Renderer) Latest() (game.Snapshot, bool) {
	return r.snapshot, r.fresh
}

// Draw paints s onto screen in back-to-front order
func (r *Renderer) Draw(screen *ebiten.Image, s game.Snapshot) {
	screen.Fill(background)

	r.drawStars(screen, s.Stars)
	r.drawAsteroids(screen, s.Asteroids)
	r.drawPlayer(screen, s.Player, s.Elapsed)
	r.drawBodyguards(screen, s.Bodyguards)
	r.drawBullets(screen, s.Bullets)
	r.drawBullets(screen, s.BodyguardBullets)
	r.drawEnemyBullets(screen, s.EnemyBullets)
	r.drawBombs(screen, s.Bombs)
	r.drawEnemies(screen, s.Enemies, s.HUD.Level)
	r.drawParticles(screen, s.Particles)
	r.drawHUD(screen, s)

	if s.Phase == game.PhasePaused {
		w, h := float32(s.ArenaWidth), float32(s.ArenaHeight)
		vector.DrawFilledRect(screen, 0, 0, w, h, overlayShade, false)
		drawCentered(screen, "PAUSED", s.ArenaWidth/2, s.ArenaHeight/2, shieldGlow)
	}
	if s.Banner.Visible {
		r.drawBanner(screen, s)
	}
}

func (r *Renderer) drawStars(screen *ebiten.Image, stars []game.Star) {
	for _, st := range stars {
		vector.DrawFilledRect(screen, float32(st.X), float32(st.Y), float32(st.Size), float32(st.Size), starColor, false)
	}
}

func (r *Renderer) drawAsteroids(screen *ebiten.Image, rocks []game.Asteroid) {
	for _, a := range rocks {
		n := len(a.Shape)
		if n < 3 {
			vector.StrokeCircle(screen, float32(a.X), float32(a.Y), float32(a.Size), 2, rockOutline, true)
			continue
		}
		sin, cos := math.Sincos(a.Rotation)
		point := func(p game.Point) (float32, float32) {
			return float32(a.X + p.X*cos - p.Y*sin), float32(a.Y + p.X*sin + p.Y*cos)
		}
		for i := range a.Shape {
			x0, y0 := point(a.Shape[i])
			x1, y1 := point(a.Shape[(i+1)%n])
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, rockOutline, true)
		}
	}
}

// drawWinged draws the X-wing outline shared by the player and its escorts
func drawWinged(screen *ebiten.Image, b game.Box, hull, cockpit color.Color, wingRatio, wingWidth float64) {
	left, top := b.X-b.W/2, b.Y-b.H/2
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(b.W), float32(b.H), hull, false)
	vector.DrawFilledRect(screen, float32(left+4), float32(top+4), float32(b.W-8), float32(b.H*0.4), cockpit, false)

	wing := b.W * wingRatio
	for _, y := range []float64{top - wingWidth, top + b.H} {
		vector.DrawFilledRect(screen, float32(left-wing), float32(y), float32(wing), float32(wingWidth), hull, false)
		vector.DrawFilledRect(screen, float32(left+b.W), float32(y), float32(wing), float32(wingWidth), hull, false)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p game.Player, elapsed float64) {
	if p.Shield.Active {
		radius := math.Max(p.W, p.H) * 1.5
		alpha := 0.4 + math.Sin(elapsed*10)*0.2
		glow := color.NRGBA{shieldGlow.R, shieldGlow.G, shieldGlow.B, uint8(alpha * 255)}
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(radius), 3, glow, true)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(radius-2), 2, colornames.Lightblue, true)
	}

	drawWinged(screen, p.Box, colornames.White, engineGlow, 0.6, 4)

	wing := p.W * 0.6
	left, top := p.X-p.W/2, p.Y-p.H/2
	for _, y := range []float64{top - 4, top + p.H} {
		vector.DrawFilledRect(screen, float32(left-wing*0.7), float32(y), float32(wing*0.3), 4, wingStripe, false)
		vector.DrawFilledRect(screen, float32(left+p.W+wing*0.4), float32(y), float32(wing*0.3), 4, wingStripe, false)
	}
	vector.DrawFilledRect(screen, float32(left+2), float32(top+p.H), float32(p.W-4), 6, engineGlow, false)
}

func (r *Renderer) drawBodyguards(screen *ebiten.Image, guards []game.Bodyguard) {
	for _, g := range guards {
		drawWinged(screen, g.Box, escortHull, escortEngine, 0.5, 3)
		vector.DrawFilledRect(screen, float32(g.X-g.W/2+2), float32(g.Y+g.H/2), float32(g.W-4), 4, escortEngine, false)
	}
}

func (r *Renderer) drawBullets(screen *ebiten.Image, bullets []game.Bullet) {
	for _, b := range bullets {
		vector.DrawFilledRect(screen, float32(b.X-b.W/2), float32(b.Y-b.H/2), float32(b.W), float32(b.H), b.Color, false)
	}
}

func (r *Renderer) drawEnemyBullets(screen *ebiten.Image, bullets []game.EnemyBullet) {
	for _, b := range bullets {
		vector.DrawFilledRect(screen, float32(b.X-b.W/2), float32(b.Y-b.H/2), float32(b.W), float32(b.H), b.Color, false)
	}
}

func (r *Renderer) drawBombs(screen *ebiten.Image, bombs []game.Bomb) {
	for _, b := range bombs {
		half := b.W / 2
		sin, cos := math.Sincos(b.Rotation)
		corners := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
		for i := range corners {
			c0, c1 := corners[i], corners[(i+1)%4]
			x0 := b.X + c0[0]*cos - c0[1]*sin
			y0 := b.Y + c0[0]*sin + c0[1]*cos
			x1 := b.X + c1[0]*cos - c1[1]*sin
			y1 := b.Y + c1[0]*sin + c1[1]*cos
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, b.Color, true)
		}
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(half*0.6), bombCore, true)
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, enemies []game.Enemy, level int) {
	pal := game.LevelPalette(level)
	for _, e := range enemies {
		if e.IsBoss() {
			r.drawBoss(screen, e, pal)
			continue
		}
		r.drawFighter(screen, e, pal)
	}
}

// drawFighter draws a pod between two wing panels; kinds differ in wing shape
func (r *Renderer) drawFighter(screen *ebiten.Image, e game.Enemy, pal game.Palette) {
	x, y := float32(e.X), float32(e.Y)
	w, h := float32(e.W), float32(e.H)
	radius := float32(math.Min(e.W, e.H) * 0.4)
	panel := w * 0.12

	switch e.Kind {
	case game.EnemyInterceptor:
		// Swept wings meeting above and below the pod
		for _, dir := range []float32{-1, 1} {
			wx := x + dir*w/2
			vector.StrokeLine(screen, wx, y-h/2, x+dir*radius, y, 3, pal.Panel, true)
			vector.StrokeLine(screen, wx, y+h/2, x+dir*radius, y, 3, pal.Panel, true)
		}
	case game.EnemyBomber:
		vector.DrawFilledCircle(screen, x-radius*0.8, y, radius*0.7, pal.Accent, true)
	case game.EnemyDefender:
		for i := 0; i < 3; i++ {
			sin, cos := math.Sincos(float64(i) * 2 * math.Pi / 3)
			vector.StrokeLine(screen, x, y, x+float32(cos)*w/2, y+float32(sin)*h/2, 4, pal.Panel, true)
		}
	default:
		vector.DrawFilledRect(screen, x-w/2, y-h/2, panel, h, pal.Panel, false)
		vector.DrawFilledRect(screen, x+w/2-panel, y-h/2, panel, h, pal.Panel, false)
		vector.StrokeLine(screen, x-w/2+panel, y, x-radius, y, 2, pal.Stroke, true)
		vector.StrokeLine(screen, x+radius, y, x+w/2-panel, y, 2, pal.Stroke, true)
	}

	if e.Kind == game.EnemyAdvanced {
		vector.StrokeRect(screen, x-w/2, y-h/2, w, h, 1, pal.Accent, true)
	}

	vector.DrawFilledCircle(screen, x, y, radius, pal.Pod, true)
	vector.DrawFilledCircle(screen, x, y, radius*0.6, colornames.Black, true)
	vector.StrokeCircle(screen, x, y, radius, 1, pal.Stroke, true)
}

func (r *Renderer) drawBoss(screen *ebiten.Image, e game.Enemy, pal game.Palette) {
	x, y := float32(e.X), float32(e.Y)
	w, h := float32(e.W), float32(e.H)

	// Wedge hull pointing down at the player
	vector.StrokeLine(screen, x-w/2, y-h/2, x+w/2, y-h/2, 3, pal.Stroke, true)
	vector.StrokeLine(screen, x-w/2, y-h/2, x, y+h/2, 3, pal.Stroke, true)
	vector.StrokeLine(screen, x+w/2, y-h/2, x, y+h/2, 3, pal.Stroke, true)
	vector.DrawFilledRect(screen, x-w/6, y-h/2, w/3, h/2, pal.Pod, false)
	vector.DrawFilledRect(screen, x-w/10, y-h/2-6, w/5, 6, pal.Accent, false)
	vector.DrawFilledCircle(screen, x, y+h/4, 4, wingStripe, true)

	if e.Boss != nil && e.Boss.MaxHP > 0 {
		frac := float32(e.HP) / float32(e.Boss.MaxHP)
		vector.DrawFilledRect(screen, x-w/2, y-h/2-14, w, 4, color.RGBA{100, 0, 0, 255}, false)
		vector.DrawFilledRect(screen, x-w/2, y-h/2-14, w*frac, 4, color.RGBA{0, 255, 0, 255}, false)
	}
}

func (r *Renderer) drawParticles(screen *ebiten.Image, particles []game.Particle) {
	for _, p := range particles {
		alpha := 0.0
		if p.MaxLife > 0 {
			alpha = math.Max(p.Life/p.MaxLife, 0)
		}
		c := color.NRGBA{p.Color.R, p.Color.G, p.Color.B, uint8(alpha * 255)}
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), 3, 3, c, false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s game.Snapshot) {
	hud := s.HUD
	drawText(screen, fmt.Sprintf("SCORE %06d  HI %06d", hud.Score, hud.HighScore), 10, 8, colornames.White)
	drawText(screen, fmt.Sprintf("LEVEL %d  WAVE %d", hud.Level, hud.Wave), 10, 24, colornames.White)
	drawText(screen, "LIVES "+hearts(hud.Lives, hud.MaxLives), 10, 40, wingStripe)
	drawText(screen, "FIRE "+hud.FireModeName, 10, 56, hud.FireModeColor)

	status := "SHIELD OFF"
	statusColor := color.Color(colornames.Gray)
	if hud.ShieldActive {
		status = "SHIELD ON"
		statusColor = shieldGlow
	}
	drawText(screen, status, 10, 72, statusColor)
	if hud.Bodyguards {
		drawText(screen, "ESCORTS", 10, 88, escortEngine)
	}
	if !hud.SoundEnabled {
		drawText(screen, "MUTED", s.ArenaWidth-60, 8, colornames.Gray)
	}

	if hud.BossMaxHP > 0 {
		w := float32(s.ArenaWidth * 0.4)
		x := float32(s.ArenaWidth/2) - w/2
		frac := float32(hud.BossHP) / float32(hud.BossMaxHP)
		vector.StrokeRect(screen, x, 10, w, 10, 1, colornames.White, false)
		vector.DrawFilledRect(screen, x+1, 11, (w-2)*frac, 8, wingStripe, false)
	}
}

func (r *Renderer) drawBanner(screen *ebiten.Image, s game.Snapshot) {
	cx, cy := s.ArenaWidth/2, s.ArenaHeight/2
	bw, bh := float32(s.ArenaWidth*0.7), float32(110)
	vector.DrawFilledRect(screen, float32(cx)-bw/2, float32(cy)-bh/2, bw, bh, overlayShade, false)
	vector.StrokeRect(screen, float32(cx)-bw/2, float32(cy)-bh/2, bw, bh, 2, shieldGlow, false)
	drawCentered(screen, s.Banner.Title, cx, cy-24, colornames.Yellow)
	drawCentered(screen, s.Banner.Message, cx, cy+12, colornames.White)
}

// hearts renders filled and empty life markers
func hearts(lives, maxLives int) string {
	out := make([]byte, 0, maxLives)
	for i := 0; i < maxLives; i++ {
		if i < lives {
			out = append(out, '#')
		} else {
			out = append(out, '.')
		}
	}
	return string(out)
}

func drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, hudFace, op)
}

func drawCentered(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = 16
	text.Draw(screen, str, hudFace, op)
}
