package philo

import (
	"os"

	"github.com/bft-labs/philo/internal/adapters/console"
	"github.com/bft-labs/philo/internal/ports"
	"github.com/bft-labs/philo/pkg/dining"
	"github.com/bft-labs/philo/pkg/log"
)

// Option configures optional behavior of a Simulation.
type Option func(*options)

// options holds the optional configuration for a Simulation.
type options struct {
	logger       log.Logger
	reporter     ports.Reporter
	strategy     dining.Strategy
	eventHandler EventHandler
	plugins      []Plugin
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger:   log.NewNoopLogger(),
		reporter: console.NewReporter(os.Stdout, console.ColorAuto),
		strategy: dining.LeftFirst,
	}
}

// WithLogger sets the diagnostic logger.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithReporter sets where action lines go. Default: plain lines on stdout,
// coloured when stdout is a terminal.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithStrategy sets the fork acquisition strategy. Default: LeftFirst.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithEventHandler sets a handler for simulation events.
// Meal events are delivered from the philosophers' goroutines, so the
// handler must be safe for concurrent use.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithPlugin registers a plugin to be initialized when the simulation starts.
// Plugins are initialized in registration order and shut down in reverse order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}
