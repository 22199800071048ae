package input

// Source produces the input for a given tick
type Source interface {
	Next(tick uint64) State
}

// SourceFunc adapts a function to Source
type SourceFunc func(tick uint64) State

// Next implements Source
func (f SourceFunc) Next(tick uint64) State {
	return f(tick)
}

// Autopilot is a scripted Source for headless runs. It keeps the Hold
// actions down every tick and taps fire every FireInterval ticks.
type Autopilot struct {
	Hold         []Action
	FireInterval uint64 // zero disables firing

	rec *Recorder
}

// Next implements Source
func (a *Autopilot) Next(tick uint64) State {
	if a.rec == nil {
		a.rec = NewRecorder()
	}
	for _, action := range a.Hold {
		if action != Fire {
			a.rec.Set(action, true)
		}
	}

	// release first so every fire tick is a fresh press
	a.rec.Set(Fire, false)
	if a.FireInterval > 0 && tick%a.FireInterval == 0 {
		a.rec.Set(Fire, true)
	}
	return a.rec.Snapshot()
}
