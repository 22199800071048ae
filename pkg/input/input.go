// Package input models the player controls consumed by the simulation:
// which actions are held this tick and the ordered press/release events
// that happened since the previous tick.
package input

// Action is a logical control
type Action int

const (
	RotateLeft Action = iota
	RotateRight
	Accelerate
	Fire
	actionCount
)

func (a Action) String() string {
	switch a {
	case RotateLeft:
		return "rotate_left"
	case RotateRight:
		return "rotate_right"
	case Accelerate:
		return "accelerate"
	case Fire:
		return "fire"
	default:
		return "unknown"
	}
}

// Edge is the direction of a control transition
type Edge int

const (
	Press Edge = iota
	Release
)

// Event is a discrete control transition
type Event struct {
	Action Action
	Edge   Edge
}

// State is the input observed by one simulation tick.
type State struct {
	held   [actionCount]bool
	Events []Event
}

// IsHeld reports whether the control for a is currently depressed
func (s State) IsHeld(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a]
}

// Presses returns how many press events for a occurred this tick
func (s State) Presses(a Action) int {
	n := 0
	for _, ev := range s.Events {
		if ev.Action == a && ev.Edge == Press {
			n++
		}
	}
	return n
}

// Held builds a State with the given actions held and no events.
func Held(actions ...Action) State {
	var s State
	for _, a := range actions {
		if a >= 0 && a < actionCount {
			s.held[a] = true
		}
	}
	return s
}

// WithPress returns a copy of s with a press event for a appended.
func (s State) WithPress(a Action) State {
	events := make([]Event, len(s.Events), len(s.Events)+1)
	copy(events, s.Events)
	s.Events = append(events, Event{Action: a, Edge: Press})
	return s
}
