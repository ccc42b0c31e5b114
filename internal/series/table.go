package series

import "github.com/san-kum/heatcurve/internal/curve"

// LabelOffset is the distance of the neighbouring table columns from the
// selected label.
const LabelOffset = 0.05

var tableOutsideTemps = [...]float64{20, 15, 10, 0, -10, -15, -20}

// TableOutsideTemps returns a copy of the representative outside
// temperatures, in row order.
func TableOutsideTemps() []float64 {
	temps := tableOutsideTemps
	return temps[:]
}

// TableRow holds the flow temperatures for one outside temperature at the
// three table labels.
type TableRow struct {
	OutsideTemp float64 `json:"outside_temp"`
	Low         float64 `json:"low"`
	Mid         float64 `json:"mid"`
	High        float64 `json:"high"`
}

// Labels are the heat curve labels the table columns were computed with.
type Labels struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// Table is the setpoints table.
type Table struct {
	Target float64    `json:"target_temp"`
	Labels Labels     `json:"labels"`
	Rows   []TableRow `json:"rows"`
}

// NeighbourLabels returns the labels LabelOffset below and above center,
// rounded to two decimals and clamped to the label range. The rounded values
// are both displayed and used for computation.
func NeighbourLabels(center float64) Labels {
	return Labels{
		Low:  curve.ClampHeatCurve(curve.RoundLabel(center - LabelOffset)),
		Mid:  center,
		High: curve.ClampHeatCurve(curve.RoundLabel(center + LabelOffset)),
	}
}

// BuildTable computes one row per TableOutsideTemps entry.
func BuildTable(target, center float64) Table {
	labels := NeighbourLabels(center)
	rows := make([]TableRow, len(tableOutsideTemps))
	for i, out := range tableOutsideTemps {
		rows[i] = TableRow{
			OutsideTemp: out,
			Low:         curve.FlowTemp(target, out, labels.Low),
			Mid:         curve.FlowTemp(target, out, labels.Mid),
			High:        curve.FlowTemp(target, out, labels.High),
		}
	}
	return Table{Target: target, Labels: labels, Rows: rows}
}
