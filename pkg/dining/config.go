package dining

import (
	"fmt"
	"time"

	"github.com/bft-labs/philo/internal/domain"
)

const (
	// DefaultPollInterval is how often a watchdog checks its philosopher.
	DefaultPollInterval = 5 * time.Millisecond

	// DefaultStagger delays the first meal attempt of even-numbered philosophers.
	DefaultStagger = 5 * time.Millisecond
)

// Config holds the simulation parameters. It is a value type; every
// philosopher keeps its own copy.
type Config struct {
	Philosophers int
	TimeToDie    time.Duration
	TimeToEat    time.Duration
	TimeToSleep  time.Duration

	// RequiredFeeds is the number of meals every philosopher must reach for
	// the simulation to end satisfied. Zero means no target.
	RequiredFeeds int

	PollInterval time.Duration

	// Stagger is the head start odd-numbered philosophers get. Zero disables it.
	Stagger time.Duration
}

// DefaultConfig returns a Config with default poll interval and stagger.
// The philosopher count and the three durations must still be set.
func DefaultConfig() Config {
	return Config{
		PollInterval: DefaultPollInterval,
		Stagger:      DefaultStagger,
	}
}

// SetDefaults fills in zero values that have defaults.
func (c *Config) SetDefaults() {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
}

// HasFeedTarget reports whether the simulation can end satisfied.
func (c Config) HasFeedTarget() bool {
	return c.RequiredFeeds > 0
}

// Validate checks the configuration. Errors wrap domain.ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Philosophers < 1:
		return fmt.Errorf("%w: need at least one philosopher, got %d", domain.ErrInvalidConfig, c.Philosophers)
	case c.TimeToDie < 0:
		return fmt.Errorf("%w: time to die must not be negative", domain.ErrInvalidConfig)
	case c.TimeToEat < 0:
		return fmt.Errorf("%w: time to eat must not be negative", domain.ErrInvalidConfig)
	case c.TimeToSleep < 0:
		return fmt.Errorf("%w: time to sleep must not be negative", domain.ErrInvalidConfig)
	case c.RequiredFeeds < 0:
		return fmt.Errorf("%w: required feeds must not be negative", domain.ErrInvalidConfig)
	case c.PollInterval <= 0:
		return fmt.Errorf("%w: poll interval must be positive", domain.ErrInvalidConfig)
	case c.Stagger < 0:
		return fmt.Errorf("%w: stagger must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}
