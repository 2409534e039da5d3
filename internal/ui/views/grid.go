package views

import (
	"github.com/charmbracelet/bubbles/table"

	"gridfilter/internal/domain"
)

const minColumnWidth = 8

// GridColumns splits the available width evenly between the two fields
func GridColumns(width int, field1Header, field2Header string) []table.Column {
	// 4 for the main padding, 4 for cell padding
	usable := width - 8
	if usable < 2*minColumnWidth {
		usable = 2 * minColumnWidth
	}
	w1 := usable / 2
	return []table.Column{
		{Title: field1Header, Width: w1},
		{Title: field2Header, Width: usable - w1},
	}
}

// GridRows converts records to table rows, preserving order
func GridRows(records []domain.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{r.Field1, r.Field2}
	}
	return rows
}
