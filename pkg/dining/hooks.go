package dining

import "github.com/bft-labs/philo/pkg/forks"

// Hooks are optional callbacks invoked from the feeding goroutines.
// They run outside the printer lock and must be safe for concurrent use.
type Hooks struct {
	// OnTake is called after a philosopher acquires a fork.
	OnTake func(philosopher int, fork *forks.Fork)

	// OnMeal is called after a meal completes, while both forks are still
	// held, with the philosopher's meal count so far.
	OnMeal func(philosopher int, meals int)

	// OnSatisfied is called when a philosopher reaches the meal target,
	// just before it is recorded in the ledger.
	OnSatisfied func(philosopher int)
}

func (h Hooks) take(philosopher int, fork *forks.Fork) {
	if h.OnTake != nil {
		h.OnTake(philosopher, fork)
	}
}

func (h Hooks) meal(philosopher, meals int) {
	if h.OnMeal != nil {
		h.OnMeal(philosopher, meals)
	}
}

func (h Hooks) satisfied(philosopher int) {
	if h.OnSatisfied != nil {
		h.OnSatisfied(philosopher)
	}
}
