package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/heatcurve/internal/curve"
	"github.com/san-kum/heatcurve/internal/series"
)

type ExportData struct {
	Params curve.Params  `json:"params"`
	A      float64       `json:"a"`
	B      float64       `json:"b"`
	Series series.Series `json:"series"`
	Table  series.Table  `json:"table"`
}

// NewExportData computes the series and table for p.
func NewExportData(p curve.Params) ExportData {
	return ExportData{
		Params: p,
		A:      curve.A,
		B:      curve.B,
		Series: series.Build(p.TargetTemp, p.HeatCurve),
		Table:  series.BuildTable(p.TargetTemp, p.HeatCurve),
	}
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
