// SPDX-License-Identifier: MIT

package agent

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeCount indicates a compartment size below zero.
	ErrNegativeCount = errors.New("agent: negative compartment count")

	// ErrCountOverflow indicates compartments whose sum does not fit in an int.
	ErrCountOverflow = errors.New("agent: population size overflows int")
)

// Counts holds one integer per compartment, in S, E, I, R order. It is used
// both for initial compartment sizes and for per-step census results.
type Counts struct {
	Susceptible int
	Exposed     int
	Infectious  int
	Recovered   int
}

// Of returns the count for s. Unknown states count zero.
func (c Counts) Of(s State) int {
	switch s {
	case Susceptible:
		return c.Susceptible
	case Exposed:
		return c.Exposed
	case Infectious:
		return c.Infectious
	case Recovered:
		return c.Recovered
	}
	return 0
}

// Add increases the count for s by n.
func (c *Counts) Add(s State, n int) {
	switch s {
	case Susceptible:
		c.Susceptible += n
	case Exposed:
		c.Exposed += n
	case Infectious:
		c.Infectious += n
	case Recovered:
		c.Recovered += n
	}
}

// Total is the population size S+E+I+R.
func (c Counts) Total() int {
	return c.Susceptible + c.Exposed + c.Infectious + c.Recovered
}

// Tuple returns the counts as an ordered (S, E, I, R) array.
func (c Counts) Tuple() [4]int {
	return [4]int{c.Susceptible, c.Exposed, c.Infectious, c.Recovered}
}

// Validate returns ErrNegativeCount naming the first negative compartment,
// or ErrCountOverflow when Total would wrap.
func (c Counts) Validate() error {
	sum := 0
	for _, s := range States {
		n := c.Of(s)
		if n < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeCount, s, n)
		}
		if n > math.MaxInt-sum {
			return fmt.Errorf("%w: %s", ErrCountOverflow, c)
		}
		sum += n
	}
	return nil
}

// String renders "S=.. E=.. I=.. R=..".
func (c Counts) String() string {
	return fmt.Sprintf("S=%d E=%d I=%d R=%d", c.Susceptible, c.Exposed, c.Infectious, c.Recovered)
}

// Census counts agents per state. It is an exact recount on every call.
// Complexity: O(N).
func Census(agents []*Agent) Counts {
	var c Counts
	for _, a := range agents {
		c.Add(a.state, 1)
	}
	return c
}
