package agent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epigrid/agent"
)

// TestState_String covers names and the fallback for unknown values.
func TestState_String(t *testing.T) {
	want := []string{"Susceptible", "Exposed", "Infectious", "Recovered"}
	for i, s := range agent.States {
		assert.Equal(t, want[i], s.String())
		assert.True(t, s.Valid())
	}
	assert.Equal(t, "State(9)", agent.State(9).String())
	assert.False(t, agent.State(-1).Valid())
}

// TestState_Ordered locks in S < E < I < R, which the monotonicity checks rely on.
func TestState_Ordered(t *testing.T) {
	for i := 1; i < len(agent.States); i++ {
		assert.Less(t, agent.States[i-1], agent.States[i])
	}
}

// TestParams_Validate exercises every rejection branch.
func TestParams_Validate(t *testing.T) {
	require.NoError(t, agent.DefaultParams().Validate())

	cases := []struct {
		name string
		mut  func(*agent.Params)
	}{
		{"NegativeBeta", func(p *agent.Params) { p.TransmissionProbability = -0.1 }},
		{"BetaAboveOne", func(p *agent.Params) { p.TransmissionProbability = 1.5 }},
		{"ZeroPre", func(p *agent.Params) { p.PreInfectiousPeriod = 0 }},
		{"ZeroInfectious", func(p *agent.Params) { p.InfectiousPeriod = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := agent.DefaultParams()
			tc.mut(&p)
			assert.ErrorIs(t, p.Validate(), agent.ErrInvalidParams)
		})
	}
}

// TestCounts covers accessors, validation and Census.
func TestCounts(t *testing.T) {
	c := agent.Counts{Susceptible: 99, Infectious: 1}
	assert.Equal(t, 100, c.Total())
	assert.Equal(t, [4]int{99, 0, 1, 0}, c.Tuple())
	assert.Equal(t, "S=99 E=0 I=1 R=0", c.String())
	require.NoError(t, c.Validate())

	c.Add(agent.Recovered, -2)
	assert.ErrorIs(t, c.Validate(), agent.ErrNegativeCount)

	huge := agent.Counts{Susceptible: math.MaxInt, Recovered: 1}
	assert.ErrorIs(t, huge.Validate(), agent.ErrCountOverflow)
	require.NoError(t, agent.Counts{Susceptible: math.MaxInt}.Validate())

	p := agent.DefaultParams()
	pop := []*agent.Agent{
		agent.New(0, agent.Susceptible, 0, p),
		agent.New(1, agent.Exposed, 0, p),
		agent.New(2, agent.Exposed, 0, p),
		agent.New(3, agent.Recovered, 0, p),
	}
	got := agent.Census(pop)
	assert.Equal(t, agent.Counts{Susceptible: 1, Exposed: 2, Recovered: 1}, got)
	for _, s := range agent.States {
		assert.GreaterOrEqual(t, got.Of(s), 0)
	}
}
