package domain

// Action is what a philosopher reports doing.
type Action string

// The closed set of reportable actions.
const (
	ActionTookFork Action = "took a fork"
	ActionEating   Action = "is eating"
	ActionSleeping Action = "is sleeping"
	ActionThinking Action = "is thinking"
	ActionDied     Action = "is dead"
)

// String returns the action text as it appears in the action stream.
func (a Action) String() string {
	return string(a)
}
