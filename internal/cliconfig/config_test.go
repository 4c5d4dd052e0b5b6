package cliconfig

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/philo/internal/adapters/console"
	"github.com/bft-labs/philo/internal/domain"
	"github.com/bft-labs/philo/pkg/dining"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Philosophers = 5
	cfg.TimeToDie = 800 * time.Millisecond
	cfg.TimeToEat = 200 * time.Millisecond
	cfg.TimeToSleep = 200 * time.Millisecond
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PollInterval != dining.DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", cfg.PollInterval, dining.DefaultPollInterval)
	}
	if cfg.Stagger != dining.DefaultStagger {
		t.Errorf("Stagger = %v, want %v", cfg.Stagger, dining.DefaultStagger)
	}
	if s, err := cfg.DiningStrategy(); err != nil || s != dining.LeftFirst {
		t.Errorf("DiningStrategy() = %v, %v; want left-first", s, err)
	}
	if m, err := cfg.ColorMode(); err != nil || m != console.ColorAuto {
		t.Errorf("ColorMode() = %v, %v; want auto", m, err)
	}
	if l, err := cfg.Level(); err != nil || l != zerolog.InfoLevel {
		t.Errorf("Level() = %v, %v; want info", l, err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"no philosophers", func(c *Config) { c.Philosophers = 0 }, true},
		{"zero durations are valid", func(c *Config) { c.TimeToEat, c.TimeToSleep = 0, 0 }, false},
		{"unknown strategy", func(c *Config) { c.Strategy = "random" }, true},
		{"unknown color", func(c *Config) { c.Color = "sometimes" }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"zero poll", func(c *Config) { c.PollInterval = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Simulation(t *testing.T) {
	cfg := validConfig()
	cfg.RequiredFeeds = 3
	cfg.Stagger = 0

	got := cfg.Simulation()
	want := dining.Config{
		Philosophers:  5,
		TimeToDie:     800 * time.Millisecond,
		TimeToEat:     200 * time.Millisecond,
		TimeToSleep:   200 * time.Millisecond,
		RequiredFeeds: 3,
		PollInterval:  dining.DefaultPollInterval,
		Stagger:       0,
	}
	if got != want {
		t.Errorf("Simulation() = %+v, want %+v", got, want)
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		changed []string
		errText string
	}{
		{
			name:    "four arguments",
			args:    []string{"5", "800", "200", "100"},
			want:    Config{Philosophers: 5, TimeToDie: 800 * time.Millisecond, TimeToEat: 200 * time.Millisecond, TimeToSleep: 100 * time.Millisecond},
			changed: []string{ArgPhilosophers, ArgTimeToDie, ArgTimeToEat, ArgTimeToSleep},
		},
		{
			name:    "five arguments",
			args:    []string{"4", "410", "200", "200", "7"},
			want:    Config{Philosophers: 4, TimeToDie: 410 * time.Millisecond, TimeToEat: 200 * time.Millisecond, TimeToSleep: 200 * time.Millisecond, RequiredFeeds: 7},
			changed: []string{ArgPhilosophers, ArgTimeToDie, ArgTimeToEat, ArgTimeToSleep, ArgRequiredFeeds},
		},
		{
			name: "no arguments",
			args: nil,
		},
		{name: "too few", args: []string{"5", "800", "200"}, errText: "expected 4 or 5 arguments"},
		{name: "too many", args: []string{"5", "800", "200", "200", "1", "2"}, errText: "expected 4 or 5 arguments"},
		{name: "bad count", args: []string{"five", "800", "200", "200"}, errText: "error parsing nums of philosophers"},
		{name: "negative count", args: []string{"-1", "800", "200", "200"}, errText: "error parsing nums of philosophers"},
		{name: "bad time to die", args: []string{"5", "x", "200", "200"}, errText: "error parsing time to die"},
		{name: "bad time to eat", args: []string{"5", "800", "x", "200"}, errText: "error parsing time to eat"},
		{name: "bad time to sleep", args: []string{"5", "800", "200", "x"}, errText: "error parsing time to sleep"},
		{name: "bad required feeds", args: []string{"5", "800", "200", "200", "x"}, errText: "error parsing required feeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			changed := map[string]bool{}
			err := ParseArgs(tt.args, &cfg, changed)

			if tt.errText != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errText) {
					t.Fatalf("ParseArgs() error = %v, want %q", err, tt.errText)
				}
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("ParseArgs() error = %v, want ErrInvalidConfig", err)
				}
				if cfg != (Config{}) || len(changed) != 0 {
					t.Errorf("ParseArgs() modified state on error: %+v %v", cfg, changed)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs() error = %v", err)
			}
			if cfg != tt.want {
				t.Errorf("ParseArgs() = %+v, want %+v", cfg, tt.want)
			}
			if len(changed) != len(tt.changed) {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
			for _, k := range tt.changed {
				if !changed[k] {
					t.Errorf("changed[%q] not set", k)
				}
			}
		})
	}
}

func TestPrecedence(t *testing.T) {
	// args > env > file > defaults
	t.Setenv("PHILO_TIME_TO_EAT", "300")
	t.Setenv("PHILO_STRATEGY", "right-first")

	cfg := DefaultConfig()
	changed := map[string]bool{}
	if err := ParseArgs([]string{"5", "800", "200", "200"}, &cfg, changed); err != nil {
		t.Fatal(err)
	}
	fc := FileConfig{Philosophers: 9, Strategy: "ordered", Color: "never"}
	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatal(err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatal(err)
	}

	if cfg.Philosophers != 5 {
		t.Errorf("Philosophers = %d, want 5 from args", cfg.Philosophers)
	}
	if cfg.TimeToEat != 200*time.Millisecond {
		t.Errorf("TimeToEat = %v, want 200ms from args", cfg.TimeToEat)
	}
	if cfg.Strategy != "right-first" {
		t.Errorf("Strategy = %q, want right-first from env", cfg.Strategy)
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want never from file", cfg.Color)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestNewLogger(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(&buf, zerolog.WarnLevel)

	logger.Info().Msg("hidden")
	logger.Warn().Str("philosopher", "3").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}
