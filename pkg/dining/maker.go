package dining

import (
	"context"
	"time"

	"github.com/bft-labs/philo/internal/domain"
	"github.com/bft-labs/philo/internal/ports"
	"github.com/bft-labs/philo/pkg/forks"
)

// Spawner runs fn on a new goroutine.
type Spawner func(fn func())

func goSpawner(fn func()) { go fn() }

// MakerOption configures a Maker.
type MakerOption func(*Maker)

// WithStrategy sets the fork acquisition strategy. Default: LeftFirst.
func WithStrategy(s Strategy) MakerOption {
	return func(m *Maker) {
		m.strategy = s
	}
}

// WithHooks installs instrumentation callbacks on every philosopher.
func WithHooks(h Hooks) MakerOption {
	return func(m *Maker) {
		m.hooks = h
	}
}

// WithSpawner replaces the goroutine launcher, e.g. to track workers.
func WithSpawner(s Spawner) MakerOption {
	return func(m *Maker) {
		if s != nil {
			m.spawn = s
		}
	}
}

// WithStartTime sets the instant elapsed times are measured from.
// Default: the time NewMaker is called.
func WithStartTime(t time.Time) MakerOption {
	return func(m *Maker) {
		m.start = t
	}
}

// Maker seats philosophers around the table. It owns the forks and the
// state every philosopher shares. A Maker is not safe for concurrent use.
type Maker struct {
	cfg      Config
	pool     *forks.Pool
	printer  *Printer
	ledger   *Ledger
	term     *Termination
	strategy Strategy
	hooks    Hooks
	spawn    Spawner
	start    time.Time

	made        int
	initialized bool
}

// NewMaker builds the fork pool, printer, ledger and termination channel for
// cfg. The returned Termination is where the simulation's verdict arrives.
func NewMaker(cfg Config, reporter ports.Reporter, opts ...MakerOption) (*Maker, *Termination) {
	cfg.SetDefaults()

	m := &Maker{
		cfg:         cfg,
		pool:        forks.NewPool(cfg.Philosophers),
		ledger:      &Ledger{},
		term:        NewTermination(),
		strategy:    LeftFirst,
		spawn:       goSpawner,
		start:       time.Now(),
		initialized: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.printer = NewPrinter(m.start, reporter)

	return m, m.term
}

// Make seats the next philosopher. Ids start at 1; philosopher id holds
// fork id-1 on its left and fork id mod n on its right, so the last
// philosopher's right fork is fork 0.
func (m *Maker) Make() (*Philosopher, error) {
	if m == nil || !m.initialized {
		return nil, domain.ErrNotInitialized
	}
	if m.made >= m.cfg.Philosophers {
		return nil, domain.ErrTableFull
	}
	m.made++
	id := m.made

	p := &Philosopher{
		id:       id,
		cfg:      m.cfg,
		left:     m.pool.Get(id - 1),
		right:    m.pool.Get(id % m.cfg.Philosophers),
		ledger:   m.ledger,
		printer:  m.printer,
		term:     m.term,
		strategy: m.strategy,
		hooks:    m.hooks,
		spawn:    m.spawn,
	}
	p.lastFeed.Store(int64(m.printer.Elapsed()))
	return p, nil
}

// StartSimulation seats every philosopher, starting each one before the
// next is made.
func (m *Maker) StartSimulation(ctx context.Context) error {
	for i := 0; i < m.cfg.Philosophers; i++ {
		p, err := m.Make()
		if err != nil {
			return err
		}
		p.Start(ctx)
	}
	return nil
}

// Interrupt ends the simulation from outside. It has no effect if a verdict
// has already been reached.
func (m *Maker) Interrupt(reason string) bool {
	elapsed, ok := m.printer.Seal()
	if !ok {
		return false
	}
	return m.term.Send(domain.Verdict{Kind: domain.VerdictInterrupted, Elapsed: elapsed, Reason: reason})
}

// Config returns the configuration the maker was built with.
func (m *Maker) Config() Config {
	return m.cfg
}

// Forks returns the shared fork pool.
func (m *Maker) Forks() *forks.Pool {
	return m.pool
}

// Ledger returns the shared satisfied-philosopher counter.
func (m *Maker) Ledger() *Ledger {
	return m.ledger
}

// Printer returns the shared printer.
func (m *Maker) Printer() *Printer {
	return m.printer
}

// Made returns how many philosophers have been seated.
func (m *Maker) Made() int {
	return m.made
}
