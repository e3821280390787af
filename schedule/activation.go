// SPDX-License-Identifier: MIT

package schedule

import (
	"math/rand"

	"github.com/katalvlaran/epigrid/agent"
	"github.com/katalvlaran/epigrid/grid"
)

// RandomActivation runs one step by visiting every agent once in a freshly
// shuffled order. Updates are sequential: an agent acting later in a step
// sees the positions and states left by the agents before it.
type RandomActivation struct {
	agents   []*agent.Agent
	grid     *grid.Grid[*agent.Agent]
	rng      *rand.Rand
	steps    int
	observer func(agent.Transmission)
}

// NewRandomActivation schedules agents (in their given order, which the
// shuffle starts from) on g, drawing from rng.
func NewRandomActivation(agents []*agent.Agent, g *grid.Grid[*agent.Agent], rng *rand.Rand) *RandomActivation {
	return &RandomActivation{
		agents: agents,
		grid:   g,
		rng:    rng,
	}
}

// SetObserver registers fn to receive every transmission of later steps.
// A nil fn removes the observer.
func (s *RandomActivation) SetObserver(fn func(agent.Transmission)) {
	s.observer = fn
}

// Agents returns the scheduled agents in schedule (id) order. The slice is
// shared; callers must not modify it.
func (s *RandomActivation) Agents() []*agent.Agent {
	return s.agents
}

// Steps returns the number of completed steps, which is also the Now value
// the next Step will use.
func (s *RandomActivation) Steps() int {
	return s.steps
}

// Step draws an activation order, lets each agent Act with Now = Steps(),
// then advances the step counter.
// Complexity: O(N + Σk) where k is the occupancy of visited cells.
func (s *RandomActivation) Step() {
	order := Permutation(s.rng, len(s.agents))
	tick := &agent.Tick{
		Grid:       s.grid,
		Rand:       s.rng,
		Now:        s.steps,
		OnTransmit: s.observer,
	}
	for _, i := range order {
		s.agents[i].Act(tick)
	}
	s.steps++
}
