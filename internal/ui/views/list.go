package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"gridfilter/internal/domain"
)

// RenderList renders records as a bordered table for non-interactive output
func RenderList(records []domain.Record, field1Header, field2Header string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(field1Header, field2Header)
	for _, r := range records {
		t.Row(r.Field1, r.Field2)
	}
	return t.Render()
}
