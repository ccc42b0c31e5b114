// Package curve implements the heating flow-temperature curve.
//
// The curve maps a room setpoint, an outside temperature and a heat-curve
// label (steepness) to the water temperature the heating system has to supply:
//
//	flow = target + A * (label * (target - outside))^B
//
// with the empirical Vaillant constants [A] = 2.55 and [B] = 0.78.
//
// # Domain
//
// The power term is only defined for a non-negative base. When it is as warm
// or warmer outside than the setpoint, [FlowTemp] clamps the base at zero and
// returns the setpoint itself, so the curve flattens instead of producing NaN.
//
// # Thread Safety
//
// Everything in this package is a pure function of its arguments.
package curve
