package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/heatcurve/internal/series"
)

// FormatFlow formats a flow temperature the way table cells show it.
func FormatFlow(v float64) string { return fmt.Sprintf("%.1f", v) }

// FormatLabel formats a heat curve label the way column headers show it.
func FormatLabel(v float64) string { return fmt.Sprintf("%.2f", v) }

// TableHeaders returns the column headers for tbl.
func TableHeaders(tbl series.Table) []string {
	return []string{
		"T_out (°C)",
		"HC " + FormatLabel(tbl.Labels.Low),
		"HC " + FormatLabel(tbl.Labels.Mid),
		"HC " + FormatLabel(tbl.Labels.High),
	}
}

// TableCells returns the formatted body rows for tbl.
func TableCells(tbl series.Table) [][]string {
	rows := make([][]string, len(tbl.Rows))
	for i, r := range tbl.Rows {
		rows[i] = []string{
			fmt.Sprintf("%g", r.OutsideTemp),
			FormatFlow(r.Low),
			FormatFlow(r.Mid),
			FormatFlow(r.High),
		}
	}
	return rows
}

// Table renders the setpoints table with the selected label emphasised.
func Table(tbl series.Table, t Theme) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(t.Text).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	outside := cell.Foreground(t.Muted)
	mid := cell.Bold(true).Foreground(t.Accent)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(TableHeaders(tbl)...).
		Rows(TableCells(tbl)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return outside
			case col == 2:
				return mid
			default:
				return cell
			}
		}).
		String()
}
