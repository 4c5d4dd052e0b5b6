package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"PHILO_PHILOSOPHERS":   "5",
				"PHILO_TIME_TO_DIE":    "800",
				"PHILO_TIME_TO_EAT":    "200ms",
				"PHILO_TIME_TO_SLEEP":  "0.2s",
				"PHILO_REQUIRED_FEEDS": "7",
				"PHILO_POLL_INTERVAL":  "2ms",
				"PHILO_STAGGER":        "0",
				"PHILO_STRATEGY":       "ordered",
				"PHILO_COLOR":          "never",
				"PHILO_LOG_LEVEL":      "debug",
				"PHILO_STOP_FILE":      "/tmp/stop",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Philosophers:  5,
				TimeToDie:     800 * time.Millisecond,
				TimeToEat:     200 * time.Millisecond,
				TimeToSleep:   200 * time.Millisecond,
				RequiredFeeds: 7,
				PollInterval:  2 * time.Millisecond,
				Stagger:       0,
				Strategy:      "ordered",
				Color:         "never",
				LogLevel:      "debug",
				StopFile:      "/tmp/stop",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"PHILO_PHILOSOPHERS": "9",
				"PHILO_TIME_TO_DIE":  "100",
				"PHILO_STRATEGY":     "ordered",
			},
			changed: map[string]bool{ArgPhilosophers: true, "strategy": true},
			initial: Config{Philosophers: 3, Strategy: "left-first"},
			expected: Config{
				Philosophers: 3,
				TimeToDie:    100 * time.Millisecond,
				Strategy:     "left-first",
			},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"PHILO_TIME_TO_EAT": "soon"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for negative duration",
			envVars: map[string]string{"PHILO_TIME_TO_SLEEP": "-5"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"PHILO_PHILOSOPHERS": "five"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for negative int",
			envVars: map[string]string{"PHILO_REQUIRED_FEEDS": "-1"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
