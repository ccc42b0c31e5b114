// Package series samples the heat curve for display.
//
//   - [Build]: the continuous chart series, outside temperature +25 down to -25 °C
//   - [BuildTable]: the setpoints table at the selected label and its ±0.05 neighbours
//
// Both use [curve.FlowTemp] and therefore share its clamp-at-setpoint policy
// for outside temperatures at or above the target.
package series
