package dining

import (
	"fmt"
	"strings"

	"github.com/bft-labs/philo/pkg/forks"
)

// Strategy decides which of a philosopher's two forks is taken first.
type Strategy int

const (
	// LeftFirst takes the left fork, then the right one.
	LeftFirst Strategy = iota

	// RightFirst takes the right fork, then the left one.
	RightFirst

	// Ordered takes the lower-indexed fork first. Every philosopher follows
	// the same global order, so no wait cycle can form.
	Ordered
)

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case LeftFirst:
		return "left-first"
	case RightFirst:
		return "right-first"
	case Ordered:
		return "ordered"
	default:
		return "unknown"
	}
}

// Order returns the forks in acquisition order.
func (s Strategy) Order(left, right *forks.Fork) (first, second *forks.Fork) {
	switch s {
	case RightFirst:
		return right, left
	case Ordered:
		if right.Index() < left.Index() {
			return right, left
		}
		return left, right
	default:
		return left, right
	}
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left-first", "left":
		return LeftFirst, nil
	case "right-first", "right":
		return RightFirst, nil
	case "ordered":
		return Ordered, nil
	default:
		return LeftFirst, fmt.Errorf("unknown strategy %q (want left-first, right-first or ordered)", name)
	}
}
