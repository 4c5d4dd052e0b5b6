package dining

import (
	"sync"
	"time"

	"github.com/bft-labs/philo/internal/domain"
	"github.com/bft-labs/philo/internal/ports"
)

// Printer serialises the action stream. Lines are emitted one at a time
// under its lock; once sealed, nothing more is emitted.
type Printer struct {
	mu       sync.Mutex
	start    time.Time
	reporter ports.Reporter
	sealed   bool
}

// NewPrinter returns a printer timing lines from start.
func NewPrinter(start time.Time, reporter ports.Reporter) *Printer {
	return &Printer{start: start, reporter: reporter}
}

// Start returns the instant the printer measures elapsed time from.
func (p *Printer) Start() time.Time {
	return p.start
}

// Elapsed returns the time since start.
func (p *Printer) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Print reports one action. It returns false if the printer is sealed.
func (p *Printer) Print(philosopher int, action domain.Action) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sealed {
		return false
	}
	p.report(philosopher, action)
	return true
}

// Seal stops the stream without a final line. It returns the elapsed time and
// whether this call was the one that sealed the printer.
func (p *Printer) Seal() (time.Duration, bool) {
	return p.seal(0, "")
}

// SealWith emits a final line and stops the stream.
func (p *Printer) SealWith(philosopher int, action domain.Action) (time.Duration, bool) {
	return p.seal(philosopher, action)
}

// Sealed reports whether the stream has been stopped.
func (p *Printer) Sealed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sealed
}

func (p *Printer) seal(philosopher int, action domain.Action) (time.Duration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	elapsed := time.Since(p.start)
	if p.sealed {
		return elapsed, false
	}
	if action != "" {
		p.reporter.Report(elapsed.Milliseconds(), philosopher, action)
	}
	p.sealed = true
	return elapsed, true
}

func (p *Printer) report(philosopher int, action domain.Action) {
	p.reporter.Report(time.Since(p.start).Milliseconds(), philosopher, action)
}
