// SPDX-License-Identifier: MIT

package agent

import "fmt"

// State is the health compartment of an agent. Values are ordered:
// a transition never decreases an agent's State.
type State int8

const (
	// Susceptible agents can be infected by co-located infectious agents.
	Susceptible State = iota
	// Exposed agents are infected but not yet infectious.
	Exposed
	// Infectious agents transmit to susceptible cellmates.
	Infectious
	// Recovered agents are immune; terminal.
	Recovered
)

// States lists every State in compartment order.
var States = [...]State{Susceptible, Exposed, Infectious, Recovered}

var stateNames = [...]string{"Susceptible", "Exposed", "Infectious", "Recovered"}

// Valid reports whether s is one of the four compartments.
func (s State) Valid() bool {
	return s >= Susceptible && s <= Recovered
}

// String returns the compartment name.
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int8(s))
	}
	return stateNames[s]
}
