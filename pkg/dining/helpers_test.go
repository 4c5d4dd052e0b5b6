package dining

import (
	"context"
	"sync"
	"testing"

	"github.com/bft-labs/philo/internal/domain"
)

type line struct {
	ms          int64
	philosopher int
	action      domain.Action
}

// recorder captures the action stream.
type recorder struct {
	mu    sync.Mutex
	lines []line
}

func (r *recorder) Report(ms int64, philosopher int, action domain.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line{ms, philosopher, action})
}

func (r *recorder) Lines() []line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]line(nil), r.lines...)
}

func (r *recorder) Count(action domain.Action) int {
	n := 0
	for _, l := range r.Lines() {
		if l.action == action {
			n++
		}
	}
	return n
}

// startTable starts a simulation whose goroutines are stopped and joined
// when the test ends.
func startTable(t *testing.T, cfg Config, opts ...MakerOption) (*Maker, *Termination, *recorder) {
	t.Helper()

	var wg sync.WaitGroup
	spawn := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	rec := &recorder{}
	maker, term := NewMaker(cfg, rec, append(opts, WithSpawner(spawn))...)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	if err := maker.StartSimulation(ctx); err != nil {
		t.Fatalf("StartSimulation() error = %v", err)
	}
	return maker, term, rec
}
