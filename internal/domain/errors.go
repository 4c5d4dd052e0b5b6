package domain

import "errors"

// Domain errors represent error conditions in the philo domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a simulation that has already started.
	ErrAlreadyRunning = errors.New("philo: already running")

	// ErrNotRunning is returned when Wait() or Stop() is called before Start().
	ErrNotRunning = errors.New("philo: not running")

	// ErrShutdownTimeout is returned when workers do not exit within the shutdown timeout.
	ErrShutdownTimeout = errors.New("philo: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("philo: invalid configuration")

	// ErrNotInitialized is returned when a maker is used without NewMaker.
	ErrNotInitialized = errors.New("philo: maker not initialized")

	// ErrTableFull is returned when every seat at the table already has a philosopher.
	ErrTableFull = errors.New("philo: table full")
)
