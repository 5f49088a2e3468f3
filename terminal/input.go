package terminal

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"stardefender/game"
)

const (
	// Terminals send no key-up events, so a held action lasts this long after
	// its last key event. Auto-repeat keeps it alive while the key is down.
	holdWindow = 120 * time.Millisecond

	// Repeats of a discrete key closer together than this are one press
	debounceWindow = 250 * time.Millisecond
)

var heldRunes = map[rune]game.Action{
	'a': game.ActionLeft, 'A': game.ActionLeft,
	'd': game.ActionRight, 'D': game.ActionRight,
	'w': game.ActionUp, 'W': game.ActionUp,
	's': game.ActionDown, 'S': game.ActionDown,
	' ': game.ActionFire,
	'e': game.ActionShield, 'E': game.ActionShield,
}

var heldKeys = map[tcell.Key]game.Action{
	tcell.KeyLeft:  game.ActionLeft,
	tcell.KeyRight: game.ActionRight,
	tcell.KeyUp:    game.ActionUp,
	tcell.KeyDown:  game.ActionDown,
	tcell.KeyTab:   game.ActionShield,
}

// Controls turns terminal key events into session input
type Controls struct {
	session  *game.Session
	logger   *slog.Logger
	held     map[game.Action]time.Time
	lastSeen map[rune]time.Time
}

// NewControls drives session
func NewControls(session *game.Session, logger *slog.Logger) *Controls {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controls{
		session:  session,
		logger:   logger,
		held:     make(map[game.Action]time.Time),
		lastSeen: make(map[rune]time.Time),
	}
}

// HandleKey records one key event and reports whether the player asked to quit
func (c *Controls) HandleKey(key tcell.Key, ch rune, now time.Time) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		if c.pressed('\n', now) {
			if err := c.session.Start(); err != nil {
				c.logger.Error("start failed", "error", err)
			}
		}
		return false
	case tcell.KeyRune:
	default:
		if action, ok := heldKeys[key]; ok {
			c.held[action] = now.Add(holdWindow)
		}
		return false
	}

	if action, ok := heldRunes[ch]; ok {
		c.held[action] = now.Add(holdWindow)
		return false
	}

	switch {
	case ch == 'q' || ch == 'Q':
		return true
	case ch == 'p' || ch == 'P':
		if c.pressed('p', now) {
			c.session.TogglePause()
		}
	case ch == 'm' || ch == 'M':
		if c.pressed('m', now) {
			c.session.ToggleMute()
		}
	case ch == '0':
		if c.pressed(ch, now) {
			c.session.ToggleBodyguards()
		}
	case ch >= '1' && ch <= '9':
		if id, ok := game.FireModeForDigit(int(ch - '0')); ok && c.pressed(ch, now) {
			c.session.SelectFireMode(id)
		}
	}
	return false
}

// pressed reports whether an event for id starts a new press
func (c *Controls) pressed(id rune, now time.Time) bool {
	last, seen := c.lastSeen[id]
	c.lastSeen[id] = now
	return !seen || now.Sub(last) >= debounceWindow
}

// Apply writes the held actions still inside their window into the session
func (c *Controls) Apply(now time.Time) {
	in := c.session.Input()
	for _, action := range []game.Action{
		game.ActionLeft, game.ActionRight, game.ActionUp,
		game.ActionDown, game.ActionFire, game.ActionShield,
	} {
		until, ok := c.held[action]
		in.Set(action, ok && now.Before(until))
	}
}
