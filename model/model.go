// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/epigrid/agent"
	"github.com/katalvlaran/epigrid/collector"
	"github.com/katalvlaran/epigrid/grid"
	"github.com/katalvlaran/epigrid/schedule"
)

// ErrInvalidConfiguration indicates construction parameters outside their domain.
var ErrInvalidConfiguration = errors.New("model: invalid configuration")

// Model is a closed population of agents on a grid.
type Model struct {
	grid      *grid.Grid[*agent.Agent]
	agents    []*agent.Agent
	schedule  *schedule.RandomActivation
	collector *collector.DataCollector
	rng       *rand.Rand
	seed      int64
	params    agent.Params
	running   bool

	transmissions []agent.Transmission
	log           logrus.FieldLogger
}

// New builds a model with the initial compartment sizes on a width×height
// grid and records the step-0 census.
func New(initial agent.Counts, width, height int, opts ...Option) (*Model, error) {
	cfg := newConfig(opts)

	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if err := cfg.params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if cfg.grid.Conn != grid.Conn4 {
		return nil, fmt.Errorf("%w: movement needs Conn4 neighbors, got connectivity %d", ErrInvalidConfiguration, cfg.grid.Conn)
	}
	// Triggers fire on equality and Now starts at 0; an earlier seed time
	// would leave initial cases in their compartment for good.
	if cfg.seedInfectionTime < -cfg.params.PreInfectiousPeriod {
		return nil, fmt.Errorf("%w: seed infection time %d before -%d",
			ErrInvalidConfiguration, cfg.seedInfectionTime, cfg.params.PreInfectiousPeriod)
	}
	g, err := grid.New[*agent.Agent](width, height, cfg.grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	m := &Model{
		grid:    g,
		agents:  make([]*agent.Agent, 0, initial.Total()),
		params:  cfg.params,
		running: true,
		log:     cfg.log,
	}
	switch {
	case cfg.rng != nil:
		m.rng = cfg.rng
	case cfg.seeded:
		m.seed = cfg.seed
		m.rng = rand.New(rand.NewSource(cfg.seed))
	default:
		m.seed = time.Now().UnixNano()
		m.rng = rand.New(rand.NewSource(m.seed))
	}

	for _, s := range agent.States {
		t0 := cfg.seedInfectionTime
		if s == agent.Susceptible {
			t0 = 0
		}
		for i := 0; i < initial.Of(s); i++ {
			a := agent.New(len(m.agents), s, t0, m.params)
			a.Place(g, grid.Pos{X: m.rng.Intn(width), Y: m.rng.Intn(height)})
			m.agents = append(m.agents, a)
		}
	}

	m.schedule = schedule.NewRandomActivation(m.agents, g, m.rng)
	m.schedule.SetObserver(m.record)
	m.collector = collector.New(m.schedule)
	m.collector.Collect()

	m.log.WithFields(logrus.Fields{
		"population":     len(m.agents),
		"initial":        initial.String(),
		"width":          width,
		"height":         height,
		"torus":          g.Torus(),
		"seed":           m.seed,
		"beta":           m.params.TransmissionProbability,
		"pre_infectious": m.params.PreInfectiousPeriod,
		"infectious":     m.params.InfectiousPeriod,
	}).Info("model initialized")

	return m, nil
}

func (m *Model) record(tr agent.Transmission) {
	m.transmissions = append(m.transmissions, tr)
}

// Step advances the simulation by one step and appends a census record.
func (m *Model) Step() {
	before := len(m.transmissions)
	m.schedule.Step()
	r := m.collector.Collect()

	m.log.WithFields(logrus.Fields{
		"step":          r.Step,
		"susceptible":   r.Susceptible,
		"exposed":       r.Exposed,
		"infectious":    r.Infectious,
		"recovered":     r.Recovered,
		"transmissions": len(m.transmissions) - before,
	}).Debug("step complete")
}

// Run calls Step up to n times, stopping early once Running is false.
// It returns the number of steps taken.
func (m *Model) Run(n int) int {
	done := 0
	for done < n && m.running {
		m.Step()
		done++
	}
	return done
}

// Running reports the driver-controlled run flag. It starts true.
func (m *Model) Running() bool { return m.running }

// SetRunning sets the run flag. The model itself never changes it.
func (m *Model) SetRunning(running bool) { m.running = running }

// StepCount returns the number of completed steps.
func (m *Model) StepCount() int { return m.schedule.Steps() }

// Population returns the fixed number of agents N.
func (m *Model) Population() int { return len(m.agents) }

// Width returns the grid width.
func (m *Model) Width() int { return m.grid.Width() }

// Height returns the grid height.
func (m *Model) Height() int { return m.grid.Height() }

// Seed returns the seed the random source was built from. It is 0 when the
// source was supplied with WithRand.
func (m *Model) Seed() int64 { return m.seed }

// Params returns the disease parameters shared by all agents.
func (m *Model) Params() agent.Params { return m.params }

// Agents returns a snapshot of every agent in id order.
func (m *Model) Agents() []agent.Snapshot {
	out := make([]agent.Snapshot, len(m.agents))
	for i, a := range m.agents {
		out[i] = a.Snapshot()
	}
	return out
}

// Agent returns the snapshot of agent id.
func (m *Model) Agent(id int) (agent.Snapshot, bool) {
	if id < 0 || id >= len(m.agents) {
		return agent.Snapshot{}, false
	}
	return m.agents[id].Snapshot(), true
}

// Occupants returns snapshots of the agents in cell p, in cell order.
// Panics with grid.ErrOutOfBounds if p is outside the grid.
func (m *Model) Occupants(p grid.Pos) []agent.Snapshot {
	occ := m.grid.Occupants(p)
	out := make([]agent.Snapshot, len(occ))
	for i, a := range occ {
		out[i] = a.Snapshot()
	}
	return out
}

// Hotspots returns the connected regions of cells hosting at least one agent
// in state s.
func (m *Model) Hotspots(s agent.State) [][]grid.Pos {
	return m.grid.Clusters(func(occ []*agent.Agent) bool {
		for _, a := range occ {
			if a.State() == s {
				return true
			}
		}
		return false
	})
}

// Series returns every census record, starting with step 0.
func (m *Model) Series() []collector.Record { return m.collector.Series() }

// Latest returns the most recent census record.
func (m *Model) Latest() collector.Record {
	r, _ := m.collector.Latest()
	return r
}

// Counts returns the census of the latest record.
func (m *Model) Counts() agent.Counts { return m.Latest().Counts }

// Peak returns the earliest record with the highest count of s.
func (m *Model) Peak(s agent.State) collector.Record {
	r, _ := m.collector.Peak(s)
	return r
}

// Transmissions returns a copy of the realized transmission log in the order
// infections happened.
func (m *Model) Transmissions() []agent.Transmission {
	out := make([]agent.Transmission, len(m.transmissions))
	copy(out, m.transmissions)
	return out
}
