package dining

import (
	"context"

	"github.com/bft-labs/philo/internal/domain"
)

// Termination is the signal that ends a simulation. Any number of
// goroutines may send; one consumer receives the first verdict.
type Termination struct {
	ch chan domain.Verdict
}

// NewTermination creates an unsignalled termination channel.
func NewTermination() *Termination {
	return &Termination{ch: make(chan domain.Verdict, 1)}
}

// Send offers a verdict without blocking. Only the first verdict is kept;
// Send reports whether v was the one accepted.
func (t *Termination) Send(v domain.Verdict) bool {
	select {
	case t.ch <- v:
		return true
	default:
		return false
	}
}

// Done returns the receiving end.
func (t *Termination) Done() <-chan domain.Verdict {
	return t.ch
}

// Wait blocks until a verdict arrives or ctx ends.
func (t *Termination) Wait(ctx context.Context) (domain.Verdict, error) {
	select {
	case v := <-t.ch:
		return v, nil
	case <-ctx.Done():
		return domain.Verdict{}, ctx.Err()
	}
}
