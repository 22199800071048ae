package input

// Recorder accumulates raw control transitions reported by a host between
// ticks. Snapshot hands the simulation one State per tick and clears the
// event list.
type Recorder struct {
	held   [actionCount]bool
	events []Event
}

// NewRecorder creates an idle recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Set reports the current physical state of the control for a. Only
// transitions produce events, so repeated Set(a, true) calls while a key
// stays down register a single press.
func (r *Recorder) Set(a Action, down bool) {
	if a < 0 || a >= actionCount || r.held[a] == down {
		return
	}
	r.held[a] = down
	edge := Release
	if down {
		edge = Press
	}
	r.events = append(r.events, Event{Action: a, Edge: edge})
}

// Snapshot returns the state for the next tick and clears pending events
func (r *Recorder) Snapshot() State {
	s := State{held: r.held}
	if len(r.events) > 0 {
		s.Events = make([]Event, len(r.events))
		copy(s.Events, r.events)
		r.events = r.events[:0]
	}
	return s
}
