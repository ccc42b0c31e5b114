package series

import (
	"math"

	"github.com/san-kum/heatcurve/internal/curve"
)

// Chart domain, warm to cold.
const (
	MaxOutside  = 25
	MinOutside  = -25
	OutsideStep = 1
	Len         = (MaxOutside-MinOutside)/OutsideStep + 1
)

// SamplePoint is one point on the curve.
type SamplePoint struct {
	OutsideTemp float64 `json:"outside_temp"`
	FlowTemp    float64 `json:"flow_temp"`
}

// Series is ordered from MaxOutside down to MinOutside.
type Series []SamplePoint

// Build samples the curve for every whole degree from MaxOutside down to
// MinOutside inclusive. Each call returns a fresh slice.
func Build(target, heatCurve float64) Series {
	points := make(Series, 0, Len)
	for t := MaxOutside; t >= MinOutside; t -= OutsideStep {
		out := float64(t)
		points = append(points, SamplePoint{
			OutsideTemp: out,
			FlowTemp:    curve.FlowTemp(target, out, heatCurve),
		})
	}
	return points
}

// OutsideTemps returns the x values in series order.
func (s Series) OutsideTemps() []float64 {
	xs := make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.OutsideTemp
	}
	return xs
}

// FlowTemps returns the y values in series order.
func (s Series) FlowTemps() []float64 {
	ys := make([]float64, len(s))
	for i, p := range s {
		ys[i] = p.FlowTemp
	}
	return ys
}

// Bounds returns the lowest and highest flow temperature. An empty series
// yields (0, 0).
func (s Series) Bounds() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range s {
		lo = math.Min(lo, p.FlowTemp)
		hi = math.Max(hi, p.FlowTemp)
	}
	return lo, hi
}

// At returns the sample for an outside temperature, if present.
func (s Series) At(outside float64) (SamplePoint, bool) {
	for _, p := range s {
		if p.OutsideTemp == outside {
			return p, true
		}
	}
	return SamplePoint{}, false
}
