// SPDX-License-Identifier: MIT

// Command seirsim runs one measles outbreak and prints its S/E/I/R series.
//
//	seirsim -S 99 -I 1 -width 10 -height 10 -steps 60 -seed 42 -chart curve.png
//
// LOG_LEVEL=debug logs every step; LOG_FORMAT=json switches to JSON logs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/epigrid/agent"
	"github.com/katalvlaran/epigrid/chart"
	"github.com/katalvlaran/epigrid/collector"
	"github.com/katalvlaran/epigrid/grid"
	"github.com/katalvlaran/epigrid/lineage"
	"github.com/katalvlaran/epigrid/logger"
	"github.com/katalvlaran/epigrid/model"
)

type config struct {
	initial       agent.Counts
	width, height int
	steps         int
	seed          int64
	params        agent.Params
	bounded       bool
	chartPath     string
	untilExtinct  bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("seirsim", flag.ContinueOnError)
	fs.IntVar(&c.initial.Susceptible, "S", 99, "initial susceptible agents")
	fs.IntVar(&c.initial.Exposed, "E", 0, "initial exposed agents")
	fs.IntVar(&c.initial.Infectious, "I", 1, "initial infectious agents")
	fs.IntVar(&c.initial.Recovered, "R", 0, "initial recovered agents")
	fs.IntVar(&c.width, "width", 10, "grid width")
	fs.IntVar(&c.height, "height", 10, "grid height")
	fs.IntVar(&c.steps, "steps", 100, "maximum number of steps")
	fs.Int64Var(&c.seed, "seed", 0, "random seed (0 for a time-based seed)")
	fs.Float64Var(&c.params.TransmissionProbability, "beta", agent.DefaultTransmissionProbability, "transmission probability per contact and step")
	fs.IntVar(&c.params.PreInfectiousPeriod, "pre", agent.DefaultPreInfectiousPeriod, "pre-infectious period in steps")
	fs.IntVar(&c.params.InfectiousPeriod, "infectious", agent.DefaultInfectiousPeriod, "infectious period in steps")
	fs.BoolVar(&c.bounded, "bounded", false, "use a bounded grid instead of a torus")
	fs.StringVar(&c.chartPath, "chart", "", "write the epidemic curve PNG to this path")
	fs.BoolVar(&c.untilExtinct, "until-extinct", true, "stop once no agent is exposed or infectious")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if c.steps < 0 {
		return config{}, fmt.Errorf("steps must be non-negative, got %d", c.steps)
	}
	return c, nil
}

func main() {
	log := logger.New()

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.WithError(err).Fatal("invalid flags")
	}

	if err := run(cfg, log, os.Stdout); err != nil {
		log.WithError(err).Fatal("simulation failed")
	}
}

func run(cfg config, log *logrus.Logger, out io.Writer) error {
	runLog := log.WithField("run_id", uuid.NewString())

	opts := []model.Option{
		model.WithParams(cfg.params),
		model.WithGrid(grid.Options{Torus: !cfg.bounded, Conn: grid.Conn4}),
		model.WithLogger(runLog),
	}
	if cfg.seed != 0 {
		opts = append(opts, model.WithSeed(cfg.seed))
	}
	m, err := model.New(cfg.initial, cfg.width, cfg.height, opts...)
	if err != nil {
		return err
	}

	for m.Running() && m.StepCount() < cfg.steps {
		m.Step()
		if c := m.Counts(); cfg.untilExtinct && c.Exposed+c.Infectious == 0 {
			runLog.WithField("step", m.StepCount()).Info("outbreak over")
			m.SetRunning(false)
		}
	}

	series := m.Series()
	if err := writeTable(out, series); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	tree, err := lineage.Build(m.Transmissions(), m.Population())
	if err != nil {
		return err
	}
	peak := m.Peak(agent.Infectious)
	runLog.WithFields(logrus.Fields{
		"steps":           m.StepCount(),
		"seed":            m.Seed(),
		"final":           m.Counts().String(),
		"peak_step":       peak.Step,
		"peak_infectious": peak.Infectious,
		"transmissions":   tree.Len(),
		"index_offspring": tree.MeanOffspring(tree.Roots()),
		"generations":     len(tree.GenerationSizes()),
	}).Info("run complete")

	if cfg.chartPath != "" {
		if err := writeChart(cfg.chartPath, series); err != nil {
			return err
		}
		runLog.WithField("path", cfg.chartPath).Info("chart written")
	}
	return nil
}

func writeTable(out io.Writer, series []collector.Record) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Step\t%s\t%s\t%s\t%s\t\n",
		collector.Labels[0], collector.Labels[1], collector.Labels[2], collector.Labels[3])
	for _, r := range series {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t\n", r.Step, r.Susceptible, r.Exposed, r.Infectious, r.Recovered)
	}
	return tw.Flush()
}

func writeChart(path string, series []collector.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close chart: %w", cerr)
		}
	}()
	return chart.Render(f, series, chart.WithTitle("SEIR measles outbreak"))
}
