// Package epigrid is an agent-based SEIR simulation of measles spreading
// through a closed population of mobile agents on a bounded 2-D grid.
//
// What is inside:
//
//	grid/       — lattice of cells holding any number of occupants; Conn4/Conn8
//	              neighborhoods, torus wrap, connected clusters
//	agent/      — the individual: S→E→I→R state machine, movement, census
//	schedule/   — random activation: every agent once per step, fresh order
//	collector/  — per-step (S, E, I, R) time series
//	model/      — owns all of the above plus the random source; New, Step, Run
//	lineage/    — who-infected-whom forest built from the transmission log
//	chart/      — epidemic curve PNG and per-state grid markers
//	logger/     — logrus setup from LOG_LEVEL / LOG_FORMAT
//	cmd/seirsim — command-line driver
//
// Quick start:
//
//	m, _ := model.New(agent.Counts{Susceptible: 99, Infectious: 1}, 10, 10, model.WithSeed(42))
//	m.Run(60)
//	for _, r := range m.Series() {
//		fmt.Println(r.Step, r.Counts)
//	}
//
// Every run is reproducible from its seed: all randomness is drawn from one
// model-owned *rand.Rand.
package epigrid
