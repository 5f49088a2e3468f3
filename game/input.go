package game

// Action is a logical held input
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionShield
)

// InputState holds which logical actions are currently held
type InputState struct {
	Left, Right, Up, Down bool
	Fire                  bool
	Shield                bool
}

// Set updates the held flag for an action
func (in *InputState) Set(action Action, held bool) {
	switch action {
	case ActionLeft:
		in.Left = held
	case ActionRight:
		in.Right = held
	case ActionUp:
		in.Up = held
	case ActionDown:
		in.Down = held
	case ActionFire:
		in.Fire = held
	case ActionShield:
		in.Shield = held
	}
}

// Direction returns the movement direction per axis.
// Diagonals are not normalized, so moving diagonally is faster than along an axis.
func (in *InputState) Direction() (dx, dy float64) {
	if in.Right {
		dx++
	}
	if in.Left {
		dx--
	}
	if in.Down {
		dy++
	}
	if in.Up {
		dy--
	}
	return dx, dy
}
