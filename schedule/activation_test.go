package schedule_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epigrid/agent"
	"github.com/katalvlaran/epigrid/grid"
	"github.com/katalvlaran/epigrid/schedule"
)

func population(t *testing.T, seed int64, states ...agent.State) (*schedule.RandomActivation, *grid.Grid[*agent.Agent]) {
	t.Helper()
	g, err := grid.New[*agent.Agent](6, 6, grid.DefaultOptions())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	agents := make([]*agent.Agent, len(states))
	for i, s := range states {
		agents[i] = agent.New(i, s, 0, agent.DefaultParams())
		agents[i].Place(g, grid.Pos{X: rng.Intn(6), Y: rng.Intn(6)})
	}
	return schedule.NewRandomActivation(agents, g, rng), g
}

// TestStep_AdvancesCounter verifies Steps counts completed steps.
func TestStep_AdvancesCounter(t *testing.T) {
	s, _ := population(t, 1, agent.Susceptible, agent.Infectious)
	assert.Equal(t, 0, s.Steps())
	for i := 1; i <= 5; i++ {
		s.Step()
		assert.Equal(t, i, s.Steps())
	}
}

// TestStep_EveryAgentMovesOnce checks each agent moves to a neighbor of its
// previous cell: each agent acted exactly once.
func TestStep_EveryAgentMovesOnce(t *testing.T) {
	s, g := population(t, 2, agent.Susceptible, agent.Susceptible, agent.Recovered, agent.Recovered)
	before := make([]grid.Pos, len(s.Agents()))
	for i, a := range s.Agents() {
		before[i] = a.Pos()
	}
	s.Step()
	for i, a := range s.Agents() {
		assert.Contains(t, g.Neighbors(before[i]), a.Pos(), "agent %d", a.ID())
	}
	assert.Equal(t, len(s.Agents()), g.Len())
}

// TestStep_ObserverAndTiming runs a saturated single-cell world with beta=1:
// every susceptible agent is exposed at step 0 and the log records it.
func TestStep_ObserverAndTiming(t *testing.T) {
	g, err := grid.New[*agent.Agent](1, 1, grid.DefaultOptions())
	require.NoError(t, err)
	p := agent.DefaultParams()
	agents := []*agent.Agent{
		agent.New(0, agent.Infectious, 0, p),
		agent.New(1, agent.Susceptible, 0, p),
		agent.New(2, agent.Susceptible, 0, p),
	}
	for _, a := range agents {
		a.Place(g, grid.Pos{})
	}
	s := schedule.NewRandomActivation(agents, g, rand.New(rand.NewSource(9)))
	var log []agent.Transmission
	s.SetObserver(func(tr agent.Transmission) { log = append(log, tr) })

	s.Step()
	assert.Len(t, log, 2)
	for _, tr := range log {
		assert.Equal(t, 0, tr.Step)
		assert.Equal(t, 0, tr.Source)
	}
	assert.Equal(t, agent.Counts{Exposed: 2, Infectious: 1}, agent.Census(agents))

	// Exposed at 0 become infectious when Now == 7, i.e. during the 8th step.
	for s.Steps() < p.PreInfectiousPeriod {
		s.Step()
	}
	assert.Equal(t, agent.Counts{Exposed: 2, Infectious: 1}, agent.Census(agents))
	s.Step()
	assert.Equal(t, agent.Counts{Infectious: 3}, agent.Census(agents))
}

// TestStep_Reproducible runs two identically seeded schedules side by side.
func TestStep_Reproducible(t *testing.T) {
	states := []agent.State{agent.Infectious, agent.Susceptible, agent.Susceptible, agent.Susceptible, agent.Exposed}
	a, _ := population(t, 77, states...)
	b, _ := population(t, 77, states...)
	for i := 0; i < 30; i++ {
		a.Step()
		b.Step()
		for k := range a.Agents() {
			require.Equal(t, a.Agents()[k].Snapshot(), b.Agents()[k].Snapshot())
		}
	}
}
