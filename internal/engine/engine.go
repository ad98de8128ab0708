// Package engine implements the stopwatch state machine for Sweep.
//
// The engine owns the canonical count value and the
// Ready/Running/CountingDown/Stopped lifecycle. It is deliberately pure:
// commands and ticks are total functions over the state space with no I/O,
// so they cannot fail. The caller (the TUI model) owns the actual
// once-per-second scheduling and delivers ticks to the engine.
//
// Driver cancellation uses a generation token. Every transition that changes
// the active tick driver bumps the generation; a tick scheduled under an
// older generation is rejected. This makes a stale callback firing after a
// mode change a no-op rather than a double-counted second.
package engine

import "fmt"

// Mode represents the lifecycle state of the stopwatch.
type Mode int

const (
	ModeReady        Mode = iota // Initial state, count is zero
	ModeRunning                  // Count increments once per tick
	ModeCountingDown             // Count decrements once per tick
	ModeStopped                  // Halted until Start or Reset
)

// String returns the display name of a mode.
func (m Mode) String() string {
	switch m {
	case ModeReady:
		return "Ready"
	case ModeRunning:
		return "Running"
	case ModeCountingDown:
		return "Counting Down"
	case ModeStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// State is a point-in-time snapshot of the engine, safe to hand to renderers.
type State struct {
	Count       int
	Mode        Mode
	AutoRestart bool
}

// Status derives the display status text from mode and count.
// It is total over the full state space: a non-running, non-counting state
// with count zero reads as Ready, anything else halted reads as Stopped.
func (s State) Status() string {
	switch s.Mode {
	case ModeCountingDown:
		return "Counting Down"
	case ModeRunning:
		return "Running"
	}
	if s.Count == 0 {
		return "Ready"
	}
	return "Stopped"
}

// Engine is the tick-driven stopwatch state machine.
//
// The zero value is not ready to use; create instances with New. Engine is
// not safe for concurrent use — all access is expected to happen on the
// Bubble Tea update loop.
type Engine struct {
	count       int
	mode        Mode
	autoRestart bool
	gen         uint64
}

// New returns an engine in the Ready state with count zero.
func New() *Engine {
	return &Engine{mode: ModeReady}
}

// Count returns the current count in whole seconds. Always non-negative.
func (e *Engine) Count() int { return e.count }

// Mode returns the current lifecycle mode.
func (e *Engine) Mode() Mode { return e.mode }

// IsRunning reports whether the count is incrementing.
func (e *Engine) IsRunning() bool { return e.mode == ModeRunning }

// IsCountingDown reports whether the count is decrementing.
func (e *Engine) IsCountingDown() bool { return e.mode == ModeCountingDown }

// IsAutoRestart reports whether the countdown restarts the stopwatch on zero.
func (e *Engine) IsAutoRestart() bool { return e.autoRestart }

// Active reports whether a tick driver should currently be scheduled.
func (e *Engine) Active() bool {
	return e.mode == ModeRunning || e.mode == ModeCountingDown
}

// Generation returns the current driver token. Ticks must be scheduled with
// the generation current at scheduling time and are rejected if the engine
// has since moved on.
func (e *Engine) Generation() uint64 { return e.gen }

// Snapshot returns the externally observable state.
func (e *Engine) Snapshot() State {
	return State{Count: e.count, Mode: e.mode, AutoRestart: e.autoRestart}
}

// Start begins counting up. It is a silent no-op while the engine is already
// active (Running or CountingDown).
func (e *Engine) Start() {
	if e.Active() {
		return
	}
	e.mode = ModeRunning
	e.gen++
}

// Stop halts counting up. With a positive count it enters CountingDown,
// replaying the elapsed seconds back to zero; with count zero it simply
// stops. It is a silent no-op unless the engine is Running.
func (e *Engine) Stop() {
	if e.mode != ModeRunning {
		return
	}
	if e.count > 0 {
		e.mode = ModeCountingDown
	} else {
		e.mode = ModeStopped
	}
	e.gen++
}

// Reset returns the engine to Ready with count zero from any state,
// cancelling any active driver. The auto-restart preference is kept.
func (e *Engine) Reset() {
	e.count = 0
	e.mode = ModeReady
	e.gen++
}

// ToggleAutoRestart flips the auto-restart preference. It takes effect the
// next time a countdown reaches zero.
func (e *Engine) ToggleAutoRestart() {
	e.autoRestart = !e.autoRestart
}

// Tick advances the engine by one second. The gen argument is the generation
// the tick was scheduled under; a stale or inactive tick is rejected and
// Tick returns false. A true return means the tick was consumed and the
// caller should re-arm its driver if Active() still holds.
func (e *Engine) Tick(gen uint64) bool {
	if gen != e.gen || !e.Active() {
		return false
	}
	switch e.mode {
	case ModeRunning:
		e.count++
	case ModeCountingDown:
		e.count--
		if e.count <= 0 {
			e.count = 0
			if e.autoRestart {
				e.mode = ModeRunning
			} else {
				e.mode = ModeStopped
			}
			e.gen++
		}
	}
	return true
}

// String implements fmt.Stringer for debug output.
func (e *Engine) String() string {
	return fmt.Sprintf("engine{count=%d mode=%s autoRestart=%t gen=%d}",
		e.count, e.mode, e.autoRestart, e.gen)
}
