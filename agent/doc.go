// SPDX-License-Identifier: MIT

// Package agent implements the individual of the SEIR model: identity,
// health state, infection timer and grid position, plus the per-step
// behavior that moves an agent and advances its state.
//
// State machine (strictly forward, irreversible):
//
//	Susceptible ──transmission──▶ Exposed ──pre periods──▶ Infectious ──infectious periods──▶ Recovered
//
// Per turn, an agent first moves to a uniformly chosen orthogonal neighbor
// cell and then evaluates:
//
//  1. Exposed and Now == InfectionTime+PreInfectiousPeriod ⇒ Infectious.
//     The turn ends here for this agent.
//  2. Otherwise, when Infectious, every Susceptible cellmate is infected with
//     probability TransmissionProbability (one Float64 draw per susceptible
//     cellmate, success when draw <= beta); the infectee records
//     InfectionTime = Now.
//  3. Still Infectious and Now == InfectionTime+PreInfectiousPeriod+InfectiousPeriod
//     ⇒ Recovered.
//
// All randomness comes from the *rand.Rand carried by Tick; nothing in this
// package touches the global math/rand source.
package agent
