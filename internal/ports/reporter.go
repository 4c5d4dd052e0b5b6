package ports

import "github.com/bft-labs/philo/internal/domain"

// Reporter writes the action stream.
//
// Report is always called with the printer lock held, so implementations
// need no synchronisation of their own as long as they are only used by a
// single simulation.
type Reporter interface {
	Report(elapsedMs int64, philosopher int, action domain.Action)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(elapsedMs int64, philosopher int, action domain.Action)

// Report calls f.
func (f ReporterFunc) Report(elapsedMs int64, philosopher int, action domain.Action) {
	f(elapsedMs, philosopher, action)
}
