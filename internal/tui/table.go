package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the point table from the current rasterization.
func (m *Model) refreshTable() {
	if len(m.result.Points) == 0 {
		m.showTable = false
		m.status = "no points for current shape"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 6},
		{Title: "x", Width: 8},
		{Title: "y", Width: 8},
		{Title: "step", Width: 10},
	}
	rows := make([]table.Row, 0, len(m.result.Points))
	for i, p := range m.result.Points {
		note := ""
		if i < len(m.result.Notes) {
			note = m.result.Notes[i]
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(p[0], 'g', -1, 64),
			strconv.FormatFloat(p[1], 'g', -1, 64),
			note,
		})
	}
	// clear rows first so SetColumns never sees rows of another width
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
