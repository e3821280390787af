// SPDX-License-Identifier: MIT

// Package collector records the per-step census of a population as a time
// series: one (S, E, I, R) record for the initial state and one after every
// step.
package collector

import "github.com/katalvlaran/epigrid/agent"

// Labels are the series names, in record order.
var Labels = [...]string{"Susceptible", "Exposed", "Infectious", "Recovered"}

// Population is anything that can list the agents to be counted.
type Population interface {
	Agents() []*agent.Agent
}

// Record is one census: the step index it was taken at and the counts.
type Record struct {
	Step int
	agent.Counts
}

// DataCollector appends an exact census of its Population on every Collect.
type DataCollector struct {
	pop    Population
	series []Record
}

// New returns an empty collector over pop.
func New(pop Population) *DataCollector {
	return &DataCollector{pop: pop}
}

// Collect recounts every agent and appends the result. The record's Step is
// its index in the series.
// Complexity: O(N).
func (dc *DataCollector) Collect() Record {
	r := Record{
		Step:   len(dc.series),
		Counts: agent.Census(dc.pop.Agents()),
	}
	dc.series = append(dc.series, r)
	return r
}

// Len returns the number of records.
func (dc *DataCollector) Len() int {
	return len(dc.series)
}

// Series returns a copy of all records in step order.
func (dc *DataCollector) Series() []Record {
	out := make([]Record, len(dc.series))
	copy(out, dc.series)
	return out
}

// Latest returns the last record; ok is false before the first Collect.
func (dc *DataCollector) Latest() (r Record, ok bool) {
	if len(dc.series) == 0 {
		return Record{}, false
	}
	return dc.series[len(dc.series)-1], true
}

// Column returns the count of state s for every record.
func (dc *DataCollector) Column(s agent.State) []int {
	out := make([]int, len(dc.series))
	for i, r := range dc.series {
		out[i] = r.Of(s)
	}
	return out
}

// Peak returns the earliest record with the highest count of s.
func (dc *DataCollector) Peak(s agent.State) (best Record, ok bool) {
	for i, r := range dc.series {
		if i == 0 || r.Of(s) > best.Of(s) {
			best = r
		}
	}
	return best, len(dc.series) > 0
}
