package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PHILO_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString(ArgPhilosophers, os.Getenv("PHILO_PHILOSOPHERS"), &cfg.Philosophers); err != nil {
		return err
	}
	if err := s.setIntFromString(ArgRequiredFeeds, os.Getenv("PHILO_REQUIRED_FEEDS"), &cfg.RequiredFeeds); err != nil {
		return err
	}

	if err := s.setDuration(ArgTimeToDie, os.Getenv("PHILO_TIME_TO_DIE"), &cfg.TimeToDie); err != nil {
		return err
	}
	if err := s.setDuration(ArgTimeToEat, os.Getenv("PHILO_TIME_TO_EAT"), &cfg.TimeToEat); err != nil {
		return err
	}
	if err := s.setDuration(ArgTimeToSleep, os.Getenv("PHILO_TIME_TO_SLEEP"), &cfg.TimeToSleep); err != nil {
		return err
	}
	if err := s.setDuration("poll", os.Getenv("PHILO_POLL_INTERVAL"), &cfg.PollInterval); err != nil {
		return err
	}
	if err := s.setDuration("stagger", os.Getenv("PHILO_STAGGER"), &cfg.Stagger); err != nil {
		return err
	}

	s.setString("strategy", os.Getenv("PHILO_STRATEGY"), &cfg.Strategy)
	s.setString("color", os.Getenv("PHILO_COLOR"), &cfg.Color)
	s.setString("log-level", os.Getenv("PHILO_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("stop-file", os.Getenv("PHILO_STOP_FILE"), &cfg.StopFile)

	return nil
}
