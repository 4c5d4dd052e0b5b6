package stopfile

import "github.com/bft-labs/philo/pkg/philo"

// WithStopFile returns a philo Option that stops the simulation when the
// file at cfg.Path is created or written.
//
// Usage:
//
//	sim, err := philo.New(cfg,
//	    stopfile.WithStopFile(stopfile.Config{Path: "/tmp/philo.stop"}),
//	)
func WithStopFile(cfg Config) philo.Option {
	return philo.WithPlugin(New(cfg))
}

// WithPath is WithStopFile with default settings.
func WithPath(path string) philo.Option {
	cfg := DefaultConfig()
	cfg.Path = path
	return WithStopFile(cfg)
}
