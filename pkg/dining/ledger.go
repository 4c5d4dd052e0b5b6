package dining

import "sync"

// Ledger counts the philosophers that have reached the meal target.
type Ledger struct {
	mu    sync.Mutex
	count int
}

// Satisfy records one more satisfied philosopher and returns the new count.
func (l *Ledger) Satisfy() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count++
	return l.count
}

// Count returns the number of satisfied philosophers.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
