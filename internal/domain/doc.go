// Package domain contains the core value types and errors shared across philo.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (terminals, files, logging libraries) and holds
// only the vocabulary of the simulation.
//
// # Types
//
//   - [Action]: the closed set of actions a philosopher reports
//   - [Verdict]: why a simulation ended (starved, satisfied, interrupted)
//
// # Errors
//
// Sentinel errors are declared in errors.go and are meant to be checked with
// errors.Is after wrapping.
package domain
