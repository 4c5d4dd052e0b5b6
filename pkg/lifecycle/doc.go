// Package lifecycle provides the state machine a simulation moves through.
//
// A simulation runs exactly once: it is seated, dines until a verdict is
// reached or it is aborted, and never restarts.
//
// # Usage
//
//	manager := lifecycle.NewManager(logger, emitter)
//
//	if err := manager.TransitionTo(lifecycle.StateSeating, "Start() called"); err != nil {
//	    return err
//	}
//
//	manager.Go(func() { ... })  // tracked worker
//
//	manager.Cancel()
//	if err := manager.WaitWithTimeout(lifecycle.ShutdownTimeout); err != nil {
//	    return err
//	}
//
// # State Machine
//
// Valid state transitions:
//   - Idle -> Seating
//   - Seating -> Dining, Aborted
//   - Dining -> Finished, Aborted
//
// Finished and Aborted are terminal.
package lifecycle
