package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/philo/internal/domain"
)

// Names under which positional arguments are recorded in the changed map,
// so file and environment values never override them.
const (
	ArgPhilosophers  = "philosophers"
	ArgTimeToDie     = "time-to-die"
	ArgTimeToEat     = "time-to-eat"
	ArgTimeToSleep   = "time-to-sleep"
	ArgRequiredFeeds = "required-feeds"
)

// ParseArgs reads the positional arguments
//
//	<philosophers> <time_to_die_ms> <time_to_eat_ms> <time_to_sleep_ms> [required_feeds]
//
// into cfg and marks each one in changed. No arguments at all leaves cfg
// untouched so the table can come from the config file or environment.
func ParseArgs(args []string, cfg *Config, changed map[string]bool) error {
	switch len(args) {
	case 0:
		return nil
	case 4, 5:
	default:
		return fmt.Errorf("%w: expected 4 or 5 arguments, got %d", domain.ErrInvalidConfig, len(args))
	}

	n, err := parseCount(args[0], "nums of philosophers")
	if err != nil {
		return err
	}
	die, err := parseDurationArg(args[1], "time to die")
	if err != nil {
		return err
	}
	eat, err := parseDurationArg(args[2], "time to eat")
	if err != nil {
		return err
	}
	sleep, err := parseDurationArg(args[3], "time to sleep")
	if err != nil {
		return err
	}
	feeds := 0
	if len(args) == 5 {
		if feeds, err = parseCount(args[4], "required feeds"); err != nil {
			return err
		}
	}

	cfg.Philosophers = n
	cfg.TimeToDie = die
	cfg.TimeToEat = eat
	cfg.TimeToSleep = sleep
	changed[ArgPhilosophers] = true
	changed[ArgTimeToDie] = true
	changed[ArgTimeToEat] = true
	changed[ArgTimeToSleep] = true
	if len(args) == 5 {
		cfg.RequiredFeeds = feeds
		changed[ArgRequiredFeeds] = true
	}
	return nil
}

func parseCount(arg, what string) (int, error) {
	v, err := strconv.ParseUint(arg, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: error parsing %s %q", domain.ErrInvalidConfig, what, arg)
	}
	return int(v), nil
}

func parseDurationArg(arg, what string) (time.Duration, error) {
	v, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: error parsing %s %q", domain.ErrInvalidConfig, what, arg)
	}
	return time.Duration(v) * time.Millisecond, nil
}
