package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/bft-labs/philo/internal/domain"
	"github.com/bft-labs/philo/pkg/log"
)

// Lifecycle errors. They are the domain sentinels, so errors.Is works
// across package boundaries.
var (
	ErrNotRunning      = domain.ErrNotRunning
	ErrAlreadyRunning  = domain.ErrAlreadyRunning
	ErrShutdownTimeout = domain.ErrShutdownTimeout
)

// ShutdownTimeout is the default maximum time to wait for workers to exit.
const ShutdownTimeout = 5 * time.Second

// transitions lists the states reachable from each state.
var transitions = map[State][]State{
	StateIdle:    {StateSeating},
	StateSeating: {StateDining, StateAborted},
	StateDining:  {StateFinished, StateAborted},
}

// DefaultManager implements Manager.
type DefaultManager struct {
	mu           sync.RWMutex
	state        State
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	logger       log.Logger
	eventEmitter EventEmitter
}

// NewManager creates a lifecycle manager in StateIdle.
func NewManager(logger log.Logger, emitter EventEmitter) *DefaultManager {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &DefaultManager{
		state:        StateIdle,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (l *DefaultManager) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo attempts to transition to a new state. Leaving Idle the
// wrong way, or any terminal state, yields ErrNotRunning; any other invalid
// move yields ErrAlreadyRunning. The state is unchanged on error.
func (l *DefaultManager) TransitionTo(newState State, reason string) error {
	l.mu.Lock()
	oldState := l.state

	if !validTransition(oldState, newState) {
		l.mu.Unlock()
		if oldState == StateIdle || oldState.Terminal() {
			return ErrNotRunning
		}
		return ErrAlreadyRunning
	}

	l.state = newState
	l.mu.Unlock()

	// Emit event outside of lock
	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Info("state transition",
		log.String("from", oldState.String()),
		log.String("to", newState.String()),
		log.String("reason", reason),
	)

	return nil
}

func validTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanStart returns true if the simulation has not been started.
func (l *DefaultManager) CanStart() bool {
	return l.State() == StateIdle
}

// Running returns true while philosophers are being seated or dining.
func (l *DefaultManager) Running() bool {
	s := l.State()
	return s == StateSeating || s == StateDining
}

// SetCancel stores the function that stops the workers.
func (l *DefaultManager) SetCancel(cancel context.CancelFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel = cancel
}

// Cancel stops the workers.
func (l *DefaultManager) Cancel() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Go runs fn on a tracked worker goroutine.
func (l *DefaultManager) Go(fn func()) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn()
	}()
}

// WaitWithTimeout waits for all workers to finish with a timeout.
// Returns ErrShutdownTimeout if the timeout expires.
func (l *DefaultManager) WaitWithTimeout(timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		l.logger.Warn("shutdown timeout, abandoning workers",
			log.Duration("timeout", timeout),
		)
		return ErrShutdownTimeout
	}
}
