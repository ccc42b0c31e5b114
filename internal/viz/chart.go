package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/heatcurve/internal/series"
)

const DefaultCaption = "x: outside temp (25 → -25°C), y: flow temp (°C)"

// ChartOptions controls the ASCII chart. Zero Width plots one column per
// sample; asciigraph.Default leaves the curve uncolored.
type ChartOptions struct {
	Height  int
	Width   int
	Color   asciigraph.AnsiColor
	Caption string
}

// tickSteps are the candidate x tick spacings in °C.
var tickSteps = []int{5, 10, 25}

// Chart plots the series in order, so the warm end is on the left, and adds
// an outside temperature tick row below the plot.
func Chart(s series.Series, opts ChartOptions) string {
	if len(s) < 2 {
		return ""
	}
	if opts.Height <= 0 {
		opts.Height = 15
	}

	lo, hi := s.Bounds()
	plotOpts := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Precision(1),
		asciigraph.LowerBound(math.Floor(lo)),
		asciigraph.UpperBound(math.Ceil(hi)),
	}
	if opts.Width > 0 {
		plotOpts = append(plotOpts, asciigraph.Width(opts.Width))
	}
	if opts.Color != asciigraph.Default {
		plotOpts = append(plotOpts, asciigraph.SeriesColors(opts.Color))
	}

	graph := asciigraph.Plot(s.FlowTemps(), plotOpts...)

	cols := len(s)
	if opts.Width > 0 {
		cols = opts.Width
	}

	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n")
	b.WriteString(tickRow(s, axisColumn(graph), cols))
	if opts.Caption != "" {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", axisColumn(graph)+1))
		b.WriteString(opts.Caption)
	}
	return b.String()
}

// axisColumn finds the rune column of the y axis in a rendered plot.
func axisColumn(graph string) int {
	for _, line := range strings.Split(graph, "\n") {
		for i, r := range []rune(ansi.Strip(line)) {
			if r == '┤' || r == '┼' {
				return i
			}
		}
	}
	return 0
}

// tickRow labels every step-th sample, counted from the warm end, with its
// outside temperature. The step widens until neighbouring labels no longer
// touch.
func tickRow(s series.Series, axis, cols int) string {
	n := len(s)
	colsPerPoint := float64(cols-1) / float64(n-1)
	label := func(t float64) string { return fmt.Sprintf("%g°C", t) }

	maxLen := 0
	for _, p := range s {
		maxLen = max(maxLen, len([]rune(label(p.OutsideTemp))))
	}
	step := tickSteps[len(tickSteps)-1]
	for _, st := range tickSteps {
		if colsPerPoint*float64(st) >= float64(maxLen+1) {
			step = st
			break
		}
	}

	row := []rune(strings.Repeat(" ", axis+1+cols+maxLen))
	end := -1
	for i, p := range s {
		if i%step != 0 {
			continue
		}
		col := axis + 1 + int(math.Round(float64(i)*colsPerPoint))
		// keep at least one blank between labels when the plot is too narrow
		if col <= end {
			continue
		}
		text := []rune(label(p.OutsideTemp))
		copy(row[col:], text)
		end = col + len(text)
	}
	return strings.TrimRight(string(row), " ")
}
