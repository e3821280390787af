// SPDX-License-Identifier: MIT

package model

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/epigrid/agent"
	"github.com/katalvlaran/epigrid/grid"
	"github.com/katalvlaran/epigrid/logger"
)

// Option customizes a Model before construction.
// Option constructors panic on meaningless inputs (nil RNG, nil logger);
// value ranges are checked by New and reported as ErrInvalidConfiguration.
type Option func(*config)

type config struct {
	rng               *rand.Rand
	seed              int64
	seeded            bool
	params            agent.Params
	grid              grid.Options
	seedInfectionTime int
	log               logrus.FieldLogger
}

func newConfig(opts []Option) config {
	c := config{
		params: agent.DefaultParams(),
		grid:   grid.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		c.log = logger.Discard()
	}
	return c
}

// WithSeed makes the run reproducible: the model draws from
// rand.New(rand.NewSource(seed)). Use it in tests and examples.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed, c.seeded = seed, true
		c.rng = nil
	}
}

// WithRand hands the model an explicit random source. The model becomes its
// sole user. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("model: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seeded = false
	}
}

// WithParams replaces all disease parameters.
func WithParams(p agent.Params) Option {
	return func(c *config) { c.params = p }
}

// WithTransmissionProbability sets beta.
func WithTransmissionProbability(beta float64) Option {
	return func(c *config) { c.params.TransmissionProbability = beta }
}

// WithPreInfectiousPeriod sets the number of steps spent Exposed.
func WithPreInfectiousPeriod(steps int) Option {
	return func(c *config) { c.params.PreInfectiousPeriod = steps }
}

// WithInfectiousPeriod sets the number of steps spent Infectious.
func WithInfectiousPeriod(steps int) Option {
	return func(c *config) { c.params.InfectiousPeriod = steps }
}

// WithGrid overrides the lattice options (default: Conn4 torus). Only the
// Torus flag is free; New rejects any connectivity other than Conn4.
func WithGrid(opts grid.Options) Option {
	return func(c *config) { c.grid = opts }
}

// WithSeedInfectionTime sets the infection time recorded for agents that
// start Exposed, Infectious or Recovered. The default 0 treats them as
// infected at step 0; a negative value backdates them, e.g. -3 makes initial
// Exposed agents turn infectious 3 steps earlier. New rejects values below
// -PreInfectiousPeriod.
func WithSeedInfectionTime(step int) Option {
	return func(c *config) { c.seedInfectionTime = step }
}

// WithLogger routes construction and per-step logs to log. Panics on nil.
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic("model: WithLogger(nil)")
	}
	return func(c *config) { c.log = log }
}
