package philo

import (
	"context"

	"github.com/bft-labs/philo/pkg/log"
)

// Plugin extends a simulation with behaviour that runs alongside it.
type Plugin interface {
	// Name identifies the plugin in logs.
	Name() string

	// Initialize is called from Start before any philosopher is seated.
	// A non-nil error aborts the simulation.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown is called from Close.
	Shutdown(ctx context.Context) error
}

// PluginConfig is what a plugin gets to work with.
type PluginConfig struct {
	RunID  string
	Logger log.Logger

	// Stop ends the simulation with an interrupted verdict.
	Stop func(reason string) error
}
