package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config in TOML form. Durations may be integers
// (milliseconds) or duration strings such as "800ms".
type FileConfig struct {
	Philosophers  int    `toml:"philosophers"`
	TimeToDie     any    `toml:"time_to_die"`
	TimeToEat     any    `toml:"time_to_eat"`
	TimeToSleep   any    `toml:"time_to_sleep"`
	RequiredFeeds int    `toml:"required_feeds"`
	PollInterval  any    `toml:"poll_interval"`
	Stagger       any    `toml:"stagger"`
	Strategy      string `toml:"strategy"`
	Color         string `toml:"color"`
	LogLevel      string `toml:"log_level"`
	StopFile      string `toml:"stop_file"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.philo/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".philo", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt(ArgPhilosophers, fc.Philosophers, &cfg.Philosophers)
	s.setInt(ArgRequiredFeeds, fc.RequiredFeeds, &cfg.RequiredFeeds)

	durations := []struct {
		flag  string
		value any
		dst   *time.Duration
	}{
		{ArgTimeToDie, fc.TimeToDie, &cfg.TimeToDie},
		{ArgTimeToEat, fc.TimeToEat, &cfg.TimeToEat},
		{ArgTimeToSleep, fc.TimeToSleep, &cfg.TimeToSleep},
		{"poll", fc.PollInterval, &cfg.PollInterval},
		{"stagger", fc.Stagger, &cfg.Stagger},
	}
	for _, d := range durations {
		v, err := durationString(d.value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", d.flag, err)
		}
		if err := s.setDuration(d.flag, v, d.dst); err != nil {
			return err
		}
	}

	s.setString("strategy", fc.Strategy, &cfg.Strategy)
	s.setString("color", fc.Color, &cfg.Color)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("stop-file", fc.StopFile, &cfg.StopFile)

	return nil
}

// durationString normalizes a decoded TOML value for setDuration.
func durationString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	default:
		return "", fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
