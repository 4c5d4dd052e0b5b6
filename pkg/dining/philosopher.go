package dining

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bft-labs/philo/internal/domain"
	"github.com/bft-labs/philo/pkg/forks"
)

// Philosopher cycles through eating, sleeping and thinking while a
// companion watchdog checks that it does not starve.
type Philosopher struct {
	id          int
	cfg         Config
	left, right *forks.Fork

	ledger   *Ledger
	printer  *Printer
	term     *Termination
	strategy Strategy
	hooks    Hooks
	spawn    Spawner

	// lastFeed is the start of the latest meal as an offset from the
	// printer's start, in nanoseconds. Written by the feeding goroutine,
	// read by the watchdog.
	lastFeed atomic.Int64

	// meals is owned by the feeding goroutine.
	meals int
}

// ID returns the 1-based philosopher id.
func (p *Philosopher) ID() int {
	return p.id
}

// Forks returns the philosopher's left and right forks.
func (p *Philosopher) Forks() (left, right *forks.Fork) {
	return p.left, p.right
}

// SinceLastFeed returns how long ago the philosopher last started eating,
// or was seated if it has not eaten yet.
func (p *Philosopher) SinceLastFeed() time.Duration {
	return p.printer.Elapsed() - time.Duration(p.lastFeed.Load())
}

// Start launches the feeding loop and the watchdog. Both run until ctx ends.
func (p *Philosopher) Start(ctx context.Context) {
	p.spawn(func() { p.Live(ctx) })
	p.spawn(func() { p.Watch(ctx) })
}

// Live runs the eat, sleep, think cycle until ctx ends.
func (p *Philosopher) Live(ctx context.Context) {
	if p.id%2 == 0 && p.cfg.Stagger > 0 {
		if !hold(ctx, p.cfg.Stagger) {
			return
		}
	}
	for {
		if !p.eat(ctx) {
			return
		}
		if !p.sleep(ctx) {
			return
		}
		p.think()
	}
}

func (p *Philosopher) eat(ctx context.Context) bool {
	first, second := p.strategy.Order(p.left, p.right)

	g1, err := first.Acquire(ctx, p.id)
	if err != nil {
		return false
	}
	defer g1.Release()
	p.hooks.take(p.id, first)
	p.printer.Print(p.id, domain.ActionTookFork)

	if second == first {
		// A lone philosopher owns a single fork and can never eat.
		<-ctx.Done()
		return false
	}

	g2, err := second.Acquire(ctx, p.id)
	if err != nil {
		return false
	}
	defer g2.Release()
	p.hooks.take(p.id, second)
	p.printer.Print(p.id, domain.ActionTookFork)

	p.lastFeed.Store(int64(p.printer.Elapsed()))
	p.printer.Print(p.id, domain.ActionEating)

	if !hold(ctx, p.cfg.TimeToEat) {
		return false
	}

	p.meals++
	p.hooks.meal(p.id, p.meals)
	if p.cfg.HasFeedTarget() && p.meals == p.cfg.RequiredFeeds {
		p.hooks.satisfied(p.id)
		p.ledger.Satisfy()
	}
	return true
}

func (p *Philosopher) sleep(ctx context.Context) bool {
	p.printer.Print(p.id, domain.ActionSleeping)
	return hold(ctx, p.cfg.TimeToSleep)
}

func (p *Philosopher) think() {
	p.printer.Print(p.id, domain.ActionThinking)
}

// Watch polls for satisfaction and starvation. When either is seen it ends
// the simulation and then parks until ctx ends.
func (p *Philosopher) Watch(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if p.printer.Sealed() {
			break
		}

		if p.cfg.HasFeedTarget() && p.ledger.Count() == p.cfg.Philosophers {
			if elapsed, ok := p.printer.Seal(); ok {
				p.term.Send(domain.Verdict{Kind: domain.VerdictSatisfied, Elapsed: elapsed})
			}
			break
		}

		if p.SinceLastFeed() > p.cfg.TimeToDie {
			if elapsed, ok := p.printer.SealWith(p.id, domain.ActionDied); ok {
				p.term.Send(domain.Verdict{Kind: domain.VerdictStarved, Philosopher: p.id, Elapsed: elapsed})
			}
			break
		}
	}

	<-ctx.Done()
}

// hold waits for d and reports whether it did so without ctx ending.
func hold(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
