package views

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Prompt       lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	StatusError  lipgloss.Style
	GridHeader   lipgloss.Style
	GridCell     lipgloss.Style
	GridSelected lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		GridHeader: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			BorderBottom(true),
		GridCell:     lipgloss.NewStyle().Padding(0, 1),
		GridSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
	}
}

// TableStyles adapts the grid styles to bubbles/table
func (s *Styles) TableStyles() table.Styles {
	ts := table.DefaultStyles()
	ts.Header = s.GridHeader
	ts.Cell = s.GridCell
	ts.Selected = s.GridSelected
	return ts
}
