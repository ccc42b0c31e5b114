package curve

import "math"

// Vaillant heat curve constants.
const (
	A = 2.55
	B = 0.78 // power
)

// Parameter ranges of the input controls.
const (
	SliderMinTarget  = 15.0
	SliderMaxTarget  = 25.0
	SliderTargetStep = 0.5

	MinTarget  = 5.0
	MaxTarget  = 30.0
	TargetStep = 0.1

	MinHeatCurve  = 0.1
	MaxHeatCurve  = 4.0
	HeatCurveStep = 0.05

	DefaultTarget    = 21.0
	DefaultHeatCurve = 1.5
)

// FlowTemp returns the flow temperature for the given setpoint, outside
// temperature and heat curve label. When label*(target-outside) is not
// positive, for example outside at or above the setpoint, it returns target.
func FlowTemp(target, outside, heatCurve float64) float64 {
	delta := target - outside // how much colder outside than target
	base := heatCurve * delta
	if base <= 0 {
		return target
	}
	return target + A*math.Pow(base, B)
}

// Params is the pair of user-adjustable inputs.
type Params struct {
	TargetTemp float64 `json:"target_temp" yaml:"target_temp"`
	HeatCurve  float64 `json:"heat_curve" yaml:"heat_curve"`
}

// DefaultParams returns the initial setpoint and label.
func DefaultParams() Params {
	return Params{TargetTemp: DefaultTarget, HeatCurve: DefaultHeatCurve}
}

// Validate checks both inputs against the entry ranges.
func (p Params) Validate() error {
	if err := checkRange("target_temp", p.TargetTemp, MinTarget, MaxTarget, ErrTargetOutOfRange); err != nil {
		return err
	}
	return checkRange("heat_curve", p.HeatCurve, MinHeatCurve, MaxHeatCurve, ErrHeatCurveOutOfRange)
}

// FlowTemp evaluates the curve at one outside temperature.
func (p Params) FlowTemp(outside float64) float64 {
	return FlowTemp(p.TargetTemp, outside, p.HeatCurve)
}

func checkRange(field string, v, lo, hi float64, sentinel error) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Field: field, Value: v, Min: lo, Max: hi, Wrapped: ErrNonFinite}
	}
	if v < lo || v > hi {
		return &ParamError{Field: field, Value: v, Min: lo, Max: hi, Wrapped: sentinel}
	}
	return nil
}

// RoundLabel rounds a label to two decimals, the precision it is displayed at.
func RoundLabel(x float64) float64 {
	return math.Round(x*100) / 100
}

// ClampHeatCurve limits x to [MinHeatCurve, MaxHeatCurve].
func ClampHeatCurve(x float64) float64 {
	return clamp(x, MinHeatCurve, MaxHeatCurve)
}

// ClampTarget limits x to [MinTarget, MaxTarget].
func ClampTarget(x float64) float64 {
	return clamp(x, MinTarget, MaxTarget)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
