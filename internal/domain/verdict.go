package domain

import (
	"fmt"
	"time"
)

// VerdictKind names why a simulation ended.
type VerdictKind int

const (
	// VerdictStarved means a philosopher went longer than time-to-die without eating.
	VerdictStarved VerdictKind = iota + 1

	// VerdictSatisfied means every philosopher reached the required number of meals.
	VerdictSatisfied

	// VerdictInterrupted means the simulation was stopped from outside
	// (signal, stop file, Stop call).
	VerdictInterrupted
)

// String returns a human-readable representation of the verdict kind.
func (k VerdictKind) String() string {
	switch k {
	case VerdictStarved:
		return "starved"
	case VerdictSatisfied:
		return "satisfied"
	case VerdictInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Verdict is the payload carried by the termination signal.
type Verdict struct {
	Kind VerdictKind

	// Philosopher is the 1-based id of the starved philosopher; zero otherwise.
	Philosopher int

	// Elapsed is the time since the simulation started.
	Elapsed time.Duration

	// Reason is free text for interrupted verdicts.
	Reason string
}

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v.Kind {
	case VerdictStarved:
		return fmt.Sprintf("philosopher %d starved after %dms", v.Philosopher, v.Elapsed.Milliseconds())
	case VerdictSatisfied:
		return fmt.Sprintf("all philosophers satisfied after %dms", v.Elapsed.Milliseconds())
	case VerdictInterrupted:
		if v.Reason != "" {
			return fmt.Sprintf("interrupted after %dms: %s", v.Elapsed.Milliseconds(), v.Reason)
		}
		return fmt.Sprintf("interrupted after %dms", v.Elapsed.Milliseconds())
	default:
		return "unknown verdict"
	}
}
