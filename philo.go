// Package philo runs the dining philosophers simulation.
//
// Example usage:
//
//	cfg := philo.DefaultConfig()
//	cfg.Philosophers = 5
//	cfg.TimeToDie = 800 * time.Millisecond
//	cfg.TimeToEat = 200 * time.Millisecond
//	cfg.TimeToSleep = 200 * time.Millisecond
//	verdict, err := philo.Run(context.Background(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(verdict)
//
// Run is the blocking shortcut; use the pkg/philo package directly to
// control the simulation's lifecycle, register plugins or observe events.
package philo

import (
	"context"

	"github.com/bft-labs/philo/pkg/philo"
)

// Config holds the simulation parameters.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = philo.Config

// Verdict is why a simulation ended.
type Verdict = philo.Verdict

// Option configures optional behavior of a simulation.
type Option = philo.Option

// Run seats the philosophers and blocks until the simulation reaches a
// verdict or ctx ends. When ctx ends first the simulation is torn down and
// ctx.Err() is returned.
func Run(ctx context.Context, cfg Config, opts ...Option) (Verdict, error) {
	sim, err := philo.New(cfg, opts...)
	if err != nil {
		return Verdict{}, err
	}
	defer sim.Close()

	if err := sim.Start(ctx); err != nil {
		return Verdict{}, err
	}
	return sim.Wait(ctx)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, set Philosophers and the three durations before calling Run.
func DefaultConfig() Config {
	return philo.DefaultConfig()
}
