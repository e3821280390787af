// SPDX-License-Identifier: MIT

// Package chart renders what a visualization layer needs from a run: the
// colour and marker of each agent state for grid views, and the epidemic
// curve (S, E, I, R per step) as a PNG line chart.
package chart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/katalvlaran/epigrid/agent"
	"github.com/katalvlaran/epigrid/collector"
)

// ErrEmptySeries indicates fewer than two records: a curve needs a range.
var ErrEmptySeries = errors.New("chart: series needs at least two records")

// Palette maps each state to its curve and marker colour.
var Palette = map[agent.State]drawing.Color{
	agent.Susceptible: {R: 0, G: 128, B: 0, A: 255},
	agent.Exposed:     {R: 255, G: 165, B: 0, A: 255},
	agent.Infectious:  {R: 255, G: 0, B: 0, A: 255},
	agent.Recovered:   {R: 0, G: 0, B: 0, A: 255},
}

// Style describes how a grid view draws one agent: a filled circle of the
// given radius (in cells) on the given layer, higher layers on top.
type Style struct {
	Color  string
	Layer  int
	Radius float64
}

// Portrayal returns the grid marker for s. Later compartments are drawn
// smaller and on top so that a crowded cell still shows its sickest occupant.
func Portrayal(s agent.State) Style {
	switch s {
	case agent.Exposed:
		return Style{Color: "Orange", Layer: 1, Radius: 0.3}
	case agent.Infectious:
		return Style{Color: "Red", Layer: 2, Radius: 0.3}
	case agent.Recovered:
		return Style{Color: "Black", Layer: 3, Radius: 0.2}
	default:
		return Style{Color: "Green", Layer: 0, Radius: 0.5}
	}
}

// Option customizes Render.
type Option func(*options)

type options struct {
	width, height int
	title         string
}

// WithSize sets the image size in pixels. Panics on non-positive sizes.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic("chart: WithSize(non-positive)")
	}
	return func(o *options) { o.width, o.height = width, height }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// Render writes the epidemic curve of series to w as PNG.
func Render(w io.Writer, series []collector.Record, opts ...Option) error {
	if len(series) < 2 {
		return fmt.Errorf("%w: got %d", ErrEmptySeries, len(series))
	}
	o := options{width: 800, height: 400}
	for _, opt := range opts {
		opt(&o)
	}

	xs := make([]float64, len(series))
	for i, r := range series {
		xs[i] = float64(r.Step)
	}
	lines := make([]gochart.Series, 0, len(agent.States))
	for i, s := range agent.States {
		ys := make([]float64, len(series))
		for k, r := range series {
			ys[k] = float64(r.Of(s))
		}
		lines = append(lines, gochart.ContinuousSeries{
			Name:    collector.Labels[i],
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeColor: Palette[s], StrokeWidth: 2.0},
		})
	}

	top := float64(series[0].Total())
	if top == 0 {
		top = 1
	}
	graph := gochart.Chart{
		Title:  o.title,
		Width:  o.width,
		Height: o.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:  "Step",
			Range: &gochart.ContinuousRange{Min: xs[0], Max: xs[len(xs)-1]},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: gochart.YAxis{
			Name:  "Agents",
			Range: &gochart.ContinuousRange{Min: 0, Max: top},
		},
		Series: lines,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("chart: render: %w", err)
	}
	return nil
}
