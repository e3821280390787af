// SPDX-License-Identifier: MIT

// Package model assembles the SEIR simulation: it owns the grid, the agent
// set, the scheduler, the data collector and the random source, and drives
// them one step at a time.
//
// What:
//
//   - New creates S+E+I+R agents with ids 0..N-1 (in S, E, I, R order),
//     places each on a uniformly random cell and records the initial census.
//   - Step activates every agent once in random order, then records a census.
//   - Agents, Occupants, Series and Latest expose read-only snapshots to
//     drivers and visualizations.
//
// Lifecycle:
//
//	m, err := model.New(agent.Counts{Susceptible: 99, Infectious: 1}, 10, 10, model.WithSeed(42))
//	for m.Running() && m.StepCount() < 100 {
//		m.Step()
//	}
//
// The model never stops itself: Running stays true until the driver calls
// SetRunning(false). Deciding when an outbreak is over is the driver's job.
//
// Determinism:
//
//   - Every random draw (placement, activation order, movement, transmission)
//     comes from one model-owned *rand.Rand. Same seed and options ⇒ the same
//     series, the same final states and the same transmission log.
//
// Concurrency:
//
//   - A Model is not safe for concurrent use. Read snapshots between steps.
//
// Errors:
//
//   - ErrInvalidConfiguration: negative compartment counts, non-positive grid
//     dimensions or invalid disease parameters. The underlying sentinel
//     (agent.ErrNegativeCount, grid.ErrEmptyGrid, agent.ErrInvalidParams) is
//     wrapped as well.
package model
