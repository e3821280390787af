// SPDX-License-Identifier: MIT

// Package lineage turns a transmission log into a who-infected-whom tree.
//
// Each agent is a node; each transmission adds the edge infector → infectee.
// Because states never go backwards, every agent has at most one infector and
// the graph is a forest rooted at the index cases that infected someone.
//
// Complexity:
//
//   - Build: O(N + T), T = number of transmissions.
//   - Offspring, Infector: O(1) amortized.
//   - Generation: O(depth). Descendants: O(size of the subtree).
package lineage

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/epigrid/agent"
)

// Sentinel errors for lineage construction.
var (
	// ErrUnknownAgent indicates a transmission naming an id outside [0, population).
	ErrUnknownAgent = errors.New("lineage: unknown agent id")
	// ErrSelfInfection indicates a transmission whose source is its own target.
	ErrSelfInfection = errors.New("lineage: agent cannot infect itself")
	// ErrReinfection indicates a second transmission to the same target.
	ErrReinfection = errors.New("lineage: agent infected more than once")
)

// Tree is the directed transmission forest of one run.
type Tree struct {
	g          *simple.DirectedGraph
	population int
	step       map[int64]int // infectee → step of infection
}

// Build validates events against a population of the given size and builds
// the tree. Events are usually model.Transmissions().
func Build(events []agent.Transmission, population int) (*Tree, error) {
	t := &Tree{
		g:          simple.NewDirectedGraph(),
		population: population,
		step:       make(map[int64]int, len(events)),
	}
	for id := 0; id < population; id++ {
		t.g.AddNode(simple.Node(id))
	}
	for i, ev := range events {
		switch {
		case !t.known(ev.Source) || !t.known(ev.Target):
			return nil, fmt.Errorf("%w: event %d %d→%d (population %d)", ErrUnknownAgent, i, ev.Source, ev.Target, population)
		case ev.Source == ev.Target:
			return nil, fmt.Errorf("%w: event %d agent %d", ErrSelfInfection, i, ev.Source)
		}
		if _, dup := t.step[int64(ev.Target)]; dup {
			return nil, fmt.Errorf("%w: event %d agent %d", ErrReinfection, i, ev.Target)
		}
		t.g.SetEdge(t.g.NewEdge(simple.Node(ev.Source), simple.Node(ev.Target)))
		t.step[int64(ev.Target)] = ev.Step
	}
	return t, nil
}

func (t *Tree) known(id int) bool {
	return id >= 0 && id < t.population
}

// Population returns the number of agents the tree was built for.
func (t *Tree) Population() int { return t.population }

// Len returns the number of transmissions in the tree.
func (t *Tree) Len() int { return len(t.step) }

// Offspring returns the number of agents id infected directly: its realized
// secondary cases.
func (t *Tree) Offspring(id int) int {
	if !t.known(id) {
		return 0
	}
	return t.g.From(int64(id)).Len()
}

// Infector returns who infected id and at which step. ok is false for index
// cases, uninfected agents and unknown ids.
func (t *Tree) Infector(id int) (source, step int, ok bool) {
	if !t.known(id) {
		return 0, 0, false
	}
	it := t.g.To(int64(id))
	if !it.Next() {
		return 0, 0, false
	}
	return int(it.Node().ID()), t.step[int64(id)], true
}

// Generation returns the number of transmission links between id and the
// root of its chain: 0 for roots and never-infected agents, 1 for their
// direct infectees, and so on.
func (t *Tree) Generation(id int) int {
	depth := 0
	for {
		src, _, ok := t.Infector(id)
		if !ok {
			return depth
		}
		id = src
		depth++
	}
}

// Roots returns, in ascending order, the agents that infected someone
// without having been infected during the run.
func (t *Tree) Roots() []int {
	var out []int
	for id := 0; id < t.population; id++ {
		if t.Offspring(id) > 0 && t.g.To(int64(id)).Len() == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Descendants returns every agent in the chain started by id (excluding id),
// in breadth-first order with ascending ids within a generation.
func (t *Tree) Descendants(id int) []int {
	if !t.known(id) {
		return nil
	}
	var (
		out   []int
		level []int
		depth int
	)
	flush := func() {
		sort.Ints(level)
		out = append(out, level...)
		level = level[:0]
	}
	bf := traverse.BreadthFirst{}
	bf.Walk(t.g, simple.Node(id), func(n graph.Node, d int) bool {
		if d != depth {
			flush()
			depth = d
		}
		if n.ID() != int64(id) {
			level = append(level, int(n.ID()))
		}
		return false
	})
	flush()
	return out
}

// MeanOffspring averages Offspring over ids; 0 for an empty list.
func (t *Tree) MeanOffspring(ids []int) float64 {
	if len(ids) == 0 {
		return 0
	}
	sum := 0
	for _, id := range ids {
		sum += t.Offspring(id)
	}
	return float64(sum) / float64(len(ids))
}

// GenerationSizes counts the infected agents per generation; index 0 holds
// the roots. Nil when nobody was infected.
func (t *Tree) GenerationSizes() []int {
	roots := t.Roots()
	if len(roots) == 0 {
		return nil
	}
	sizes := []int{len(roots)}
	for target := range t.step {
		gen := t.Generation(int(target))
		for len(sizes) <= gen {
			sizes = append(sizes, 0)
		}
		sizes[gen]++
	}
	return sizes
}
