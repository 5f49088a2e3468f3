package frontend

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"stardefender/game"
)

// heldKeys maps each held action to the keys that drive it
var heldKeys = map[game.Action][]ebiten.Key{
	game.ActionLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.ActionRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
	game.ActionUp:     {ebiten.KeyArrowUp, ebiten.KeyW},
	game.ActionDown:   {ebiten.KeyArrowDown, ebiten.KeyS},
	game.ActionFire:   {ebiten.KeySpace},
	game.ActionShield: {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
}

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Keyboard copies ebiten key state into a session each frame
type Keyboard struct {
	logger *slog.Logger
}

// NewKeyboard creates a keyboard mapper
func NewKeyboard(logger *slog.Logger) *Keyboard {
	return &Keyboard{logger: logger}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Apply updates held actions and fires discrete ones once per key press
func (k *Keyboard) Apply(s *game.Session) {
	in := s.Input()
	for action, keys := range heldKeys {
		in.Set(action, anyPressed(keys))
	}

	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if alt {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		} else if err := s.Start(); err != nil {
			k.logger.Error("start failed", "error", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ToggleMute()
	}

	for digit, key := range digitKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if digit == 0 {
			s.ToggleBodyguards()
			continue
		}
		if id, ok := game.FireModeForDigit(digit); ok {
			s.SelectFireMode(id)
		}
	}
}
