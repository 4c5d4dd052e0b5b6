package forks

import (
	"context"
	"sync"
	"sync/atomic"
)

// Fork is an exclusive-access token.
type Fork struct {
	index int
	slot  chan struct{}

	// holder is the id that currently holds the fork, zero when free.
	holder atomic.Int64
}

func newFork(index int) *Fork {
	f := &Fork{
		index: index,
		slot:  make(chan struct{}, 1),
	}
	f.slot <- struct{}{}
	return f
}

// Index returns the position of the fork in its pool.
func (f *Fork) Index() int {
	return f.index
}

// Holder returns the id of the current holder, or zero if the fork is free.
func (f *Fork) Holder() int {
	return int(f.holder.Load())
}

// Acquire blocks until the fork is free and marks it held by holder.
// There is no timeout; the only way out of a wait is ctx ending, in which
// case ctx.Err() is returned and the fork is not held.
func (f *Fork) Acquire(ctx context.Context, holder int) (*Guard, error) {
	select {
	case <-f.slot:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	f.holder.Store(int64(holder))
	return &Guard{fork: f}, nil
}

// TryAcquire takes the fork only if it is free right now.
func (f *Fork) TryAcquire(holder int) (*Guard, bool) {
	select {
	case <-f.slot:
		f.holder.Store(int64(holder))
		return &Guard{fork: f}, true
	default:
		return nil, false
	}
}

// Guard is the release token returned by Acquire.
type Guard struct {
	fork *Fork
	once sync.Once
}

// Fork returns the fork this guard holds.
func (g *Guard) Fork() *Fork {
	return g.fork
}

// Release frees the fork and wakes at most one waiter. Calling it more than
// once is a no-op.
func (g *Guard) Release() {
	if g == nil {
		return
	}
	g.once.Do(func() {
		g.fork.holder.Store(0)
		g.fork.slot <- struct{}{}
	})
}

// Pool owns a fixed set of forks.
type Pool struct {
	forks []*Fork
}

// NewPool allocates n free forks. A non-positive n yields an empty pool.
func NewPool(n int) *Pool {
	if n < 0 {
		n = 0
	}
	forks := make([]*Fork, n)
	for i := range forks {
		forks[i] = newFork(i)
	}
	return &Pool{forks: forks}
}

// Len returns the number of forks in the pool.
func (p *Pool) Len() int {
	return len(p.forks)
}

// Get returns the shared handle of fork i mod n. Negative indices wrap as well.
// Get panics on an empty pool.
func (p *Pool) Get(i int) *Fork {
	n := len(p.forks)
	return p.forks[((i%n)+n)%n]
}
