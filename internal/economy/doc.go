// Package economy implements the clicker economy: the per-user GameState,
// the geometric cost curve that prices upgrades, and the six actions that
// advance or inspect a state.
//
// Everything here is pure value transformation. Callers own storage and
// concurrency; the engine only maps (action, state) to (state, outcome).
package economy
