// Package log provides the diagnostic logging abstraction used by philo.
//
// Diagnostics (lifecycle transitions, plugin activity, verdicts) are kept
// apart from the action stream a simulation produces. The Logger interface
// can be backed by any logging library; a zerolog adapter and a no-op logger
// are included.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("simulation started", log.Int("philosophers", 5))
//
// Use the no-op logger in tests:
//
//	logger := log.NewNoopLogger()
package log
