package philo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/bft-labs/philo/internal/domain"
	"github.com/bft-labs/philo/internal/ports"
	"github.com/bft-labs/philo/pkg/dining"
	"github.com/bft-labs/philo/pkg/lifecycle"
	"github.com/bft-labs/philo/pkg/log"
)

// Re-exported types so callers need only this package.
type (
	// Config holds the simulation parameters.
	Config = dining.Config

	// Strategy decides which fork a philosopher takes first.
	Strategy = dining.Strategy

	// State is the lifecycle state of a simulation.
	State = lifecycle.State

	// Verdict is why a simulation ended.
	Verdict = domain.Verdict

	// VerdictKind classifies a Verdict.
	VerdictKind = domain.VerdictKind

	// Action is what a philosopher reports doing.
	Action = domain.Action

	// Reporter receives the action stream.
	Reporter = ports.Reporter

	// ReporterFunc adapts a function to Reporter.
	ReporterFunc = ports.ReporterFunc
)

const (
	StateIdle     = lifecycle.StateIdle
	StateSeating  = lifecycle.StateSeating
	StateDining   = lifecycle.StateDining
	StateFinished = lifecycle.StateFinished
	StateAborted  = lifecycle.StateAborted

	VerdictStarved     = domain.VerdictStarved
	VerdictSatisfied   = domain.VerdictSatisfied
	VerdictInterrupted = domain.VerdictInterrupted

	LeftFirst  = dining.LeftFirst
	RightFirst = dining.RightFirst
	Ordered    = dining.Ordered
)

// Errors returned by Simulation methods.
var (
	ErrAlreadyRunning  = domain.ErrAlreadyRunning
	ErrNotRunning      = domain.ErrNotRunning
	ErrShutdownTimeout = domain.ErrShutdownTimeout
	ErrInvalidConfig   = domain.ErrInvalidConfig
)

// DefaultConfig returns a Config with default poll interval and stagger.
func DefaultConfig() Config {
	return dining.DefaultConfig()
}

// Simulation is one run of the dining philosophers. Use New to create it,
// Start to seat the philosophers and Wait for the verdict.
type Simulation struct {
	config    Config
	opts      options
	id        string
	lifecycle *lifecycle.DefaultManager
	emitter   *eventEmitterWrapper
	logger    log.Logger
	plugins   []Plugin

	maker atomic.Pointer[dining.Maker]

	mu      sync.Mutex
	done    chan struct{}
	settled bool
	verdict Verdict
	err     error
	closed  bool
}

// New creates a simulation in StateIdle. Returns an error wrapping
// ErrInvalidConfig if cfg is invalid.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	emitter := &eventEmitterWrapper{handler: o.eventHandler}

	return &Simulation{
		config:    cfg,
		opts:      o,
		id:        uuid.NewString(),
		lifecycle: lifecycle.NewManager(o.logger, emitter),
		emitter:   emitter,
		logger:    o.logger,
		plugins:   o.plugins,
		done:      make(chan struct{}),
	}, nil
}

// Start initializes plugins and seats every philosopher. It returns once
// all philosophers are running. The simulation's goroutines stop when ctx
// ends or Close is called.
func (s *Simulation) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lifecycle.CanStart() {
		return ErrAlreadyRunning
	}
	if err := s.lifecycle.TransitionTo(StateSeating, "Start() called"); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.lifecycle.SetCancel(cancel)

	maker, term := dining.NewMaker(s.config, s.opts.reporter,
		dining.WithStrategy(s.opts.strategy),
		dining.WithSpawner(s.lifecycle.Go),
		dining.WithHooks(dining.Hooks{OnMeal: s.emitter.onMeal}),
	)
	s.maker.Store(maker)

	pluginCfg := PluginConfig{
		RunID:  s.id,
		Logger: s.logger,
		Stop:   s.Stop,
	}
	for _, p := range s.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			s.logger.Error("plugin initialization failed",
				log.String("plugin", p.Name()),
				log.Err(err))
			cancel()
			s.abortLocked(fmt.Errorf("plugin %s: %w", p.Name(), err))
			return err
		}
		s.logger.Info("plugin initialized", log.String("plugin", p.Name()))
	}

	s.lifecycle.Go(func() { s.await(runCtx, term) })

	s.logger.Info("seating philosophers",
		log.String("run", s.id),
		log.Int("philosophers", s.config.Philosophers),
		log.Duration("time_to_die", s.config.TimeToDie),
		log.Duration("time_to_eat", s.config.TimeToEat),
		log.Duration("time_to_sleep", s.config.TimeToSleep),
		log.Int("required_feeds", s.config.RequiredFeeds),
		log.String("strategy", s.opts.strategy.String()),
	)

	if err := maker.StartSimulation(runCtx); err != nil {
		cancel()
		s.abortLocked(err)
		return err
	}

	return s.lifecycle.TransitionTo(StateDining, "all philosophers seated")
}

// await is the single consumer of the termination signal.
func (s *Simulation) await(ctx context.Context, term *dining.Termination) {
	select {
	case v := <-term.Done():
		s.finish(v)
	case <-ctx.Done():
		s.abort(ctx.Err())
	}
}

func (s *Simulation) finish(v Verdict) {
	s.mu.Lock()
	ok := s.settleLocked(v, nil)
	s.mu.Unlock()
	if !ok {
		return
	}

	// Start holds s.mu until the simulation is Dining, so this never
	// races the Seating -> Dining transition.
	next := StateFinished
	if v.Kind == VerdictInterrupted {
		next = StateAborted
	}
	_ = s.lifecycle.TransitionTo(next, v.String())

	fields := []log.Field{
		log.String("run", s.id),
		log.String("verdict", v.Kind.String()),
		log.Int64("elapsed_ms", v.Elapsed.Milliseconds()),
	}
	switch v.Kind {
	case VerdictStarved:
		s.logger.Warn("philosopher starved", append(fields, log.Philosopher(v.Philosopher))...)
	case VerdictSatisfied:
		s.logger.Info("all philosophers satisfied", append(fields, log.Int("required_feeds", s.config.RequiredFeeds))...)
	default:
		s.logger.Info("simulation interrupted", append(fields, log.String("reason", v.Reason))...)
	}

	s.emitter.onVerdict(v)
	close(s.done)
}

func (s *Simulation) abort(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abortLocked(err)
}

// abortLocked ends the simulation without a verdict. Callers hold s.mu.
func (s *Simulation) abortLocked(err error) {
	if !s.settleLocked(Verdict{}, err) {
		return
	}
	_ = s.lifecycle.TransitionTo(StateAborted, err.Error())
	close(s.done)
}

// settleLocked records the outcome the first time it is called.
func (s *Simulation) settleLocked(v Verdict, err error) bool {
	if s.settled {
		return false
	}
	s.settled = true
	s.verdict = v
	s.err = err
	return true
}

// Wait blocks until the simulation has a verdict. It returns an error if
// the simulation was never started, was aborted before reaching a verdict,
// or ctx ends first.
func (s *Simulation) Wait(ctx context.Context) (Verdict, error) {
	if s.lifecycle.State() == StateIdle {
		return Verdict{}, ErrNotRunning
	}
	select {
	case <-s.done:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.verdict, s.err
	case <-ctx.Done():
		return Verdict{}, ctx.Err()
	}
}

// Stop ends a running simulation with an interrupted verdict. It is a no-op
// if a verdict has already been reached.
func (s *Simulation) Stop(reason string) error {
	maker := s.maker.Load()
	if maker == nil || !s.lifecycle.Running() {
		return ErrNotRunning
	}
	maker.Interrupt(reason)
	return nil
}

// Close stops every philosopher and plugin. Philosophers blocked on a fork
// or parked after the verdict are released through their context. Returns
// ErrShutdownTimeout if some goroutine does not exit in time.
func (s *Simulation) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	started := s.maker.Load() != nil
	s.mu.Unlock()

	if !started {
		return nil
	}

	s.lifecycle.Cancel()
	err := s.lifecycle.WaitWithTimeout(lifecycle.ShutdownTimeout)

	shutdownCtx := context.Background()
	for i := len(s.plugins) - 1; i >= 0; i-- {
		p := s.plugins[i]
		if shutdownErr := p.Shutdown(shutdownCtx); shutdownErr != nil {
			s.logger.Error("plugin shutdown failed",
				log.String("plugin", p.Name()),
				log.Err(shutdownErr))
			err = errors.Join(err, shutdownErr)
		} else {
			s.logger.Info("plugin shutdown complete", log.String("plugin", p.Name()))
		}
	}

	return err
}

// Status returns the current lifecycle state.
// Safe to call concurrently from any goroutine.
func (s *Simulation) Status() State {
	return s.lifecycle.State()
}

// RunID returns the unique id of this simulation.
func (s *Simulation) RunID() string {
	return s.id
}

// Config returns the validated configuration.
func (s *Simulation) Config() Config {
	return s.config
}
