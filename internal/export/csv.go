package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/heatcurve/internal/series"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteSeriesCSV writes one outside_temp,flow_temp row per sample.
func WriteSeriesCSV(w io.Writer, s series.Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"outside_temp", "flow_temp"}); err != nil {
		return err
	}
	for _, p := range s {
		if err := cw.Write([]string{formatFloat(p.OutsideTemp), formatFloat(p.FlowTemp)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTableCSV writes the setpoints table with the column labels in the header.
func WriteTableCSV(w io.Writer, tbl series.Table) error {
	cw := csv.NewWriter(w)

	header := []string{
		"outside_temp",
		"hc_" + strconv.FormatFloat(tbl.Labels.Low, 'f', 2, 64),
		"hc_" + strconv.FormatFloat(tbl.Labels.Mid, 'f', 2, 64),
		"hc_" + strconv.FormatFloat(tbl.Labels.High, 'f', 2, 64),
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range tbl.Rows {
		row := []string{formatFloat(r.OutsideTemp), formatFloat(r.Low), formatFloat(r.Mid), formatFloat(r.High)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
