package philo

// EventHandler receives simulation events.
type EventHandler interface {
	// OnStateChange is called after every lifecycle transition.
	OnStateChange(StateChangeEvent)

	// OnMeal is called each time a philosopher finishes a meal.
	OnMeal(MealEvent)

	// OnVerdict is called once, when the simulation's verdict is known.
	OnVerdict(Verdict)
}

// StateChangeEvent describes a lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// MealEvent describes a finished meal.
type MealEvent struct {
	Philosopher int

	// Meals is how many meals the philosopher has finished so far.
	Meals int
}

// eventEmitterWrapper adapts EventHandler to the internal emitter interfaces.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: previous,
		Current:  current,
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) onMeal(philosopher, meals int) {
	if e.handler == nil {
		return
	}
	e.handler.OnMeal(MealEvent{Philosopher: philosopher, Meals: meals})
}

func (e *eventEmitterWrapper) onVerdict(v Verdict) {
	if e.handler == nil {
		return
	}
	e.handler.OnVerdict(v)
}
