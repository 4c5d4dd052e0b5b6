package lifecycle

import "time"

// State represents the lifecycle state of a simulation.
type State int

const (
	StateIdle State = iota
	StateSeating
	StateDining
	StateFinished
	StateAborted
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSeating:
		return "Seating"
	case StateDining:
		return "Dining"
	case StateFinished:
		return "Finished"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateFinished || s == StateAborted
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// Manager manages the lifecycle state machine of a simulation.
type Manager interface {
	// State returns the current lifecycle state.
	State() State

	// CanStart returns true if the simulation has not been started.
	CanStart() bool

	// Running returns true while philosophers are being seated or dining.
	Running() bool

	// TransitionTo attempts to transition to a new state.
	// Returns an error if the transition is not valid.
	TransitionTo(newState State, reason string) error

	// Go runs fn on a tracked worker goroutine.
	Go(fn func())

	// WaitWithTimeout waits for all workers to finish with a timeout.
	// Returns ErrShutdownTimeout if the timeout expires.
	WaitWithTimeout(timeout time.Duration) error
}
