// Package viz renders the heat curve in the terminal.
//
//   - [Chart]: asciigraph line chart, outside temperature from +25 on the left to -25 on the right
//   - [Table]: setpoints table at the selected label and its neighbours
//   - [App]: interactive Bubble Tea calculator
//
// # Key Bindings
//
//	j/k, up/down   - Select setpoint or heat curve
//	h/l, left/right - Adjust by one slider step
//	H/L            - Fine adjust the setpoint (0.1 °C)
//	Enter          - Type a value
//	t/T            - Cycle color themes
//	r/R            - Reset to defaults
//	q/Q, esc       - Quit
package viz
