package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/philo/internal/adapters/console"
	"github.com/bft-labs/philo/internal/domain"
	"github.com/bft-labs/philo/pkg/dining"
)

// Config holds CLI configuration for philo.
type Config struct {
	Philosophers  int
	TimeToDie     time.Duration
	TimeToEat     time.Duration
	TimeToSleep   time.Duration
	RequiredFeeds int

	PollInterval time.Duration
	Stagger      time.Duration

	Strategy string
	Color    string
	LogLevel string
	StopFile string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		PollInterval: dining.DefaultPollInterval,
		Stagger:      dining.DefaultStagger,
		Strategy:     dining.LeftFirst.String(),
		Color:        "auto",
		LogLevel:     "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Simulation().Validate(); err != nil {
		return err
	}
	if _, err := c.DiningStrategy(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if _, err := c.ColorMode(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// Simulation converts c to the engine's configuration.
func (c *Config) Simulation() dining.Config {
	return dining.Config{
		Philosophers:  c.Philosophers,
		TimeToDie:     c.TimeToDie,
		TimeToEat:     c.TimeToEat,
		TimeToSleep:   c.TimeToSleep,
		RequiredFeeds: c.RequiredFeeds,
		PollInterval:  c.PollInterval,
		Stagger:       c.Stagger,
	}
}

// DiningStrategy parses the Strategy field.
func (c *Config) DiningStrategy() (dining.Strategy, error) {
	return dining.ParseStrategy(c.Strategy)
}

// ColorMode parses the Color field.
func (c *Config) ColorMode() (console.ColorMode, error) {
	return console.ParseColorMode(c.Color)
}

// Level parses the LogLevel field. Empty means info.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration if valid and flag not changed.
// A bare integer is read as milliseconds.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := parseMillis(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i < 0 {
		return fmt.Errorf("parse %s: must not be negative", flag)
	}
	*dst = i
	return nil
}

// parseMillis reads "800" as 800ms and anything else as a Go duration.
func parseMillis(value string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("negative duration %q", value)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", value)
	}
	return d, nil
}
