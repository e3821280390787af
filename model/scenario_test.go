package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epigrid/agent"
	"github.com/katalvlaran/epigrid/model"
)

// history runs m for steps and returns every agent's state per record:
// history[k][id] is the state of id in record k.
func history(m *model.Model, steps int) [][]agent.State {
	snap := func() []agent.State {
		out := make([]agent.State, m.Population())
		for i, a := range m.Agents() {
			out[i] = a.State
		}
		return out
	}
	h := [][]agent.State{snap()}
	for i := 0; i < steps; i++ {
		m.Step()
		h = append(h, snap())
	}
	return h
}

// expectedState is the state of an agent infected at t0, in record k, under
// params p. Record k reflects the transitions applied at Now = k-1.
func expectedState(p agent.Params, t0, k int) agent.State {
	now := k - 1
	switch {
	case now < t0:
		return agent.Susceptible
	case now < p.InfectiousAt(t0):
		return agent.Exposed
	case now < p.RecoveredAt(t0):
		return agent.Infectious
	default:
		return agent.Recovered
	}
}

// TestScenario_MeaslesIndexCase runs the reference outbreak: N=100 with one
// index case on a 10×10 torus, beta=1, pre-infectious 7, infectious 8.
//
//   - Record 0 is (99, 0, 1, 0).
//   - The index case stays Infectious through Now = 14 and recovers at
//     Now = 15, i.e. it shows as Recovered from record 16 on.
//   - Every agent infected at step t is Exposed in records t+1..t+7,
//     Infectious in records t+8..t+15 and Recovered afterwards.
//   - Cases caught from the index case before step 7 turn Infectious exactly
//     at step t+7.
func TestScenario_MeaslesIndexCase(t *testing.T) {
	for _, seed := range []int64{1, 42, 2024} {
		m, err := model.New(agent.Counts{Susceptible: 99, Infectious: 1}, 10, 10,
			model.WithSeed(seed),
			model.WithParams(agent.Params{TransmissionProbability: 1, PreInfectiousPeriod: 7, InfectiousPeriod: 8}),
		)
		require.NoError(t, err)
		p := m.Params()

		assert.Equal(t, [4]int{99, 0, 1, 0}, m.Latest().Tuple(), "seed %d", seed)

		const steps = 60
		h := history(m, steps)
		const index = 99

		for k := 0; k <= steps; k++ {
			want := agent.Infectious
			if k >= 16 {
				want = agent.Recovered
			}
			require.Equal(t, want, h[k][index], "seed %d index case record %d", seed, k)
		}

		infectedAt := map[int]int{}
		for _, tr := range m.Transmissions() {
			_, dup := infectedAt[tr.Target]
			require.False(t, dup, "agent %d infected twice", tr.Target)
			require.Equal(t, agent.Susceptible, h[tr.Step][tr.Target])
			infectedAt[tr.Target] = tr.Step

			if tr.Source == index && tr.Step < 7 {
				assert.Equal(t, agent.Exposed, h[tr.Step+7][tr.Target])
				assert.Equal(t, agent.Infectious, h[tr.Step+8][tr.Target])
			}
		}
		for id := 0; id < index; id++ {
			t0, infected := infectedAt[id]
			for k := 0; k <= steps; k++ {
				want := agent.Susceptible
				if infected {
					want = expectedState(p, t0, k)
				}
				require.Equal(t, want, h[k][id], "seed %d agent %d record %d", seed, id, k)
			}
		}
		for k, r := range m.Series() {
			require.Equal(t, 100, r.Total(), "seed %d record %d", seed, k)
		}
	}
}
