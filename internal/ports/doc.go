// Package ports defines the interfaces that connect the simulation core to
// its collaborators.
//
// # Port Interfaces
//
//   - [Reporter]: receives every action line a philosopher emits
//   - [Logger]: structured diagnostics
//
// Adapters under internal/adapters implement these with concrete writers.
package ports
