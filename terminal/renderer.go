package terminal

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"stardefender/game"
)

// hudRows is the number of rows above the arena
const hudRows = 1

var (
	styleBase    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStar    = styleBase.Foreground(tcell.ColorDarkCyan)
	styleRock    = styleBase.Foreground(tcell.ColorGray)
	stylePlayer  = styleBase.Foreground(tcell.ColorWhite).Bold(true)
	styleShield  = styleBase.Foreground(tcell.NewRGBColor(0x37, 0xd6, 0xff))
	styleEscort  = styleBase.Foreground(tcell.NewRGBColor(0x88, 0xff, 0x88))
	styleBanner  = styleBase.Foreground(tcell.ColorYellow).Bold(true)
	styleMessage = styleBase.Foreground(tcell.ColorWhite)
)

// enemyGlyphs draws each kind with a distinct character
var enemyGlyphs = map[game.EnemyKind]rune{
	game.EnemyFighter:     'H',
	game.EnemyInterceptor: 'X',
	game.EnemyBomber:      'B',
	game.EnemyAdvanced:    'V',
	game.EnemyDefender:    'Y',
	game.EnemyBoss:        '#',
}

func rgbStyle(c color.RGBA) tcell.Style {
	return styleBase.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Renderer projects snapshots onto a character grid.
// Row 0 holds the HUD; the arena is scaled into the rows below it.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer draws onto screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// grid maps arena coordinates to cells for one frame
type grid struct {
	cols, rows int
	sx, sy     float64
}

func newGrid(screen tcell.Screen, s game.Snapshot) grid {
	cols, rows := screen.Size()
	g := grid{cols: cols, rows: rows}
	if s.ArenaWidth > 0 && s.ArenaHeight > 0 {
		g.sx = float64(cols) / s.ArenaWidth
		g.sy = float64(rows-hudRows) / s.ArenaHeight
	}
	return g
}

// cell returns the screen cell for an arena point
func (g grid) cell(x, y float64) (int, int, bool) {
	col := int(x * g.sx)
	row := int(y*g.sy) + hudRows
	if x < 0 || y < 0 || col >= g.cols || row >= g.rows {
		return 0, 0, false
	}
	return col, row, true
}

func (r *Renderer) put(g grid, x, y float64, ch rune, style tcell.Style) {
	if col, row, ok := g.cell(x, y); ok {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// fill covers the cells under a box, at least one cell
func (r *Renderer) fill(g grid, b game.Box, ch rune, style tcell.Style) {
	c0, r0, ok0 := g.cell(b.X-b.W/2, b.Y-b.H/2)
	c1, r1, ok1 := g.cell(b.X+b.W/2, b.Y+b.H/2)
	if !ok0 || !ok1 {
		r.put(g, b.X, b.Y, ch, style)
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *Renderer) text(col, row int, str string, style tcell.Style) {
	for i, ch := range []rune(str) {
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}

func (r *Renderer) centered(g grid, row int, str string, style tcell.Style) {
	col := (g.cols - len([]rune(str))) / 2
	if col < 0 {
		col = 0
	}
	r.text(col, row, str, style)
}

// Render draws the snapshot and shows the screen
func (r *Renderer) Render(s game.Snapshot) {
	r.screen.SetStyle(styleBase)
	r.screen.Clear()
	g := newGrid(r.screen, s)

	for _, st := range s.Stars {
		r.put(g, st.X, st.Y, '.', styleStar)
	}
	for _, a := range s.Asteroids {
		ch := 'o'
		if a.Size >= 30 {
			ch = 'O'
		}
		r.put(g, a.X, a.Y, ch, styleRock)
	}

	p := s.Player
	if p.Shield.Active {
		r.put(g, p.X-p.W, p.Y, '(', styleShield)
		r.put(g, p.X+p.W, p.Y, ')', styleShield)
	}
	r.put(g, p.X, p.Y, 'A', stylePlayer)

	for _, bg := range s.Bodyguards {
		r.put(g, bg.X, bg.Y, 'a', styleEscort)
	}
	for _, b := range s.Bullets {
		r.put(g, b.X, b.Y, '|', rgbStyle(b.Color))
	}
	for _, b := range s.BodyguardBullets {
		r.put(g, b.X, b.Y, '\'', rgbStyle(b.Color))
	}
	for _, b := range s.EnemyBullets {
		r.put(g, b.X, b.Y, '!', rgbStyle(b.Color))
	}
	for _, b := range s.Bombs {
		r.put(g, b.X, b.Y, '*', rgbStyle(b.Color))
	}

	pal := game.LevelPalette(s.HUD.Level)
	for _, e := range s.Enemies {
		if e.IsBoss() {
			r.fill(g, e.Box, enemyGlyphs[game.EnemyBoss], rgbStyle(pal.Accent))
			continue
		}
		r.put(g, e.X, e.Y, enemyGlyphs[e.Kind], rgbStyle(pal.Stroke).Bold(true))
	}
	for _, pt := range s.Particles {
		r.put(g, pt.X, pt.Y, '+', rgbStyle(pt.Color))
	}

	r.text(0, 0, hudLine(s.HUD), styleBase)

	mid := hudRows + (g.rows-hudRows)/2
	if s.Phase == game.PhasePaused {
		r.centered(g, mid, "PAUSED", styleShield)
	}
	if s.Banner.Visible {
		r.centered(g, mid-1, s.Banner.Title, styleBanner)
		for i, line := range strings.Split(s.Banner.Message, "\n") {
			r.centered(g, mid+1+i, line, styleMessage)
		}
	}

	r.screen.Show()
}

func hudLine(h game.HUD) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SCORE %06d HI %06d LV %d WAVE %d LIVES %s FIRE %s",
		h.Score, h.HighScore, h.Level, h.Wave,
		strings.Repeat("#", h.Lives)+strings.Repeat(".", max(h.MaxLives-h.Lives, 0)),
		h.FireModeName)
	if h.ShieldActive {
		b.WriteString(" SHIELD")
	}
	if h.Bodyguards {
		b.WriteString(" ESCORTS")
	}
	if h.BossMaxHP > 0 {
		fmt.Fprintf(&b, " BOSS %d/%d", h.BossHP, h.BossMaxHP)
	}
	if !h.SoundEnabled {
		b.WriteString(" MUTED")
	}
	return b.String()
}
