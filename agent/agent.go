// SPDX-License-Identifier: MIT

package agent

import (
	"math/rand"

	"github.com/katalvlaran/epigrid/grid"
)

// Agent is one individual of the population. Identity and Params are fixed
// at creation; state changes only through Progress (or infection by a
// cellmate's Progress) and position only through Place and Move.
type Agent struct {
	id            int
	state         State
	pos           grid.Pos
	infectionTime int
	params        Params
}

// Snapshot is the read-only view of an agent handed to collaborators.
type Snapshot struct {
	ID    int
	State State
	Pos   grid.Pos
}

// Transmission records one successful infection.
type Transmission struct {
	// Step is the step index at which the infection happened.
	Step int
	// Source is the infectious agent, Target the newly exposed one.
	Source, Target int
	// Pos is the shared cell.
	Pos grid.Pos
}

// Tick is the environment of one simulation step, shared by every agent
// acting during that step.
type Tick struct {
	// Grid holds the agents; Move and cellmate lookups go through it.
	Grid *grid.Grid[*Agent]
	// Rand is the model-owned random source.
	Rand *rand.Rand
	// Now is the current step index.
	Now int
	// OnTransmit, when non-nil, is called for every new infection.
	OnTransmit func(Transmission)
}

// New creates an unplaced agent. infectionTime is only meaningful for
// states other than Susceptible.
func New(id int, state State, infectionTime int, params Params) *Agent {
	return &Agent{
		id:            id,
		state:         state,
		infectionTime: infectionTime,
		params:        params,
	}
}

// ID returns the immutable identity.
func (a *Agent) ID() int { return a.id }

// State returns the current compartment.
func (a *Agent) State() State { return a.state }

// Pos returns the current cell.
func (a *Agent) Pos() grid.Pos { return a.pos }

// InfectionTime returns the step at which the agent became Exposed.
func (a *Agent) InfectionTime() int { return a.infectionTime }

// Params returns the agent's disease constants.
func (a *Agent) Params() Params { return a.params }

// Snapshot returns the identity, state and position of a.
func (a *Agent) Snapshot() Snapshot {
	return Snapshot{ID: a.id, State: a.state, Pos: a.pos}
}

// Place puts a on g at p. Call once, before the first step.
func (a *Agent) Place(g *grid.Grid[*Agent], p grid.Pos) {
	g.Place(a, p)
	a.pos = p
}

// Act runs one turn: Move, then Progress.
func (a *Agent) Act(t *Tick) {
	a.Move(t)
	a.Progress(t)
}

// Move relocates a to one of its orthogonal neighbor cells, chosen uniformly
// with a single Intn draw. An agent without neighbors (1×1 torus) stays put
// and consumes no draw.
func (a *Agent) Move(t *Tick) {
	steps := t.Grid.Neighbors(a.pos)
	if len(steps) == 0 {
		return
	}
	to := steps[t.Rand.Intn(len(steps))]
	t.Grid.Move(a, a.pos, to)
	a.pos = to
}

// Progress evaluates the state transitions of a for step t.Now.
func (a *Agent) Progress(t *Tick) {
	switch a.state {
	case Exposed:
		if t.Now == a.params.InfectiousAt(a.infectionTime) {
			a.state = Infectious
		}
	case Infectious:
		a.transmit(t)
		if t.Now == a.params.RecoveredAt(a.infectionTime) {
			a.state = Recovered
		}
	}
}

// transmit exposes susceptible cellmates with probability beta each.
func (a *Agent) transmit(t *Tick) {
	if t.Grid.Count(a.pos) < 2 {
		return
	}
	beta := a.params.TransmissionProbability
	for _, other := range t.Grid.Occupants(a.pos) {
		if other.state != Susceptible {
			continue
		}
		// Float64 can return exactly 0; beta == 0 must never transmit.
		if draw := t.Rand.Float64(); beta == 0 || draw > beta {
			continue
		}
		other.state = Exposed
		other.infectionTime = t.Now
		if t.OnTransmit != nil {
			t.OnTransmit(Transmission{Step: t.Now, Source: a.id, Target: other.id, Pos: a.pos})
		}
	}
}
