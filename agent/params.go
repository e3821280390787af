// SPDX-License-Identifier: MIT

package agent

import (
	"errors"
	"fmt"
)

// ErrInvalidParams indicates disease parameters outside their domain.
var ErrInvalidParams = errors.New("agent: invalid disease parameters")

// Default measles parameters.
const (
	DefaultTransmissionProbability = 1.0
	DefaultPreInfectiousPeriod     = 7
	DefaultInfectiousPeriod        = 8
)

// Params are the per-agent disease constants. Every agent of a model
// currently shares one Params value.
type Params struct {
	// TransmissionProbability (beta) is the per-contact, per-step chance an
	// infectious agent infects a co-located susceptible agent. In [0,1].
	TransmissionProbability float64
	// PreInfectiousPeriod is the number of steps spent Exposed. At least 1.
	PreInfectiousPeriod int
	// InfectiousPeriod is the number of steps spent Infectious. At least 1.
	InfectiousPeriod int
}

// DefaultParams returns beta=1, pre-infectious period 7, infectious period 8.
func DefaultParams() Params {
	return Params{
		TransmissionProbability: DefaultTransmissionProbability,
		PreInfectiousPeriod:     DefaultPreInfectiousPeriod,
		InfectiousPeriod:        DefaultInfectiousPeriod,
	}
}

// Validate returns ErrInvalidParams (wrapped with the offending field) when
// beta is outside [0,1] or a period is shorter than one step. A zero-length
// period would let the equality trigger of the state machine be skipped,
// leaving an agent stuck in its compartment.
func (p Params) Validate() error {
	switch {
	case !(p.TransmissionProbability >= 0 && p.TransmissionProbability <= 1):
		return fmt.Errorf("%w: transmission probability %v not in [0,1]", ErrInvalidParams, p.TransmissionProbability)
	case p.PreInfectiousPeriod < 1:
		return fmt.Errorf("%w: pre-infectious period %d < 1", ErrInvalidParams, p.PreInfectiousPeriod)
	case p.InfectiousPeriod < 1:
		return fmt.Errorf("%w: infectious period %d < 1", ErrInvalidParams, p.InfectiousPeriod)
	}
	return nil
}

// InfectiousAt is the step at which an agent infected at t0 becomes Infectious.
func (p Params) InfectiousAt(t0 int) int {
	return t0 + p.PreInfectiousPeriod
}

// RecoveredAt is the step at which an agent infected at t0 recovers.
func (p Params) RecoveredAt(t0 int) int {
	return t0 + p.PreInfectiousPeriod + p.InfectiousPeriod
}
