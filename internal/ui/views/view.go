package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	FilterInput   string // rendered text input
	Grid          string // rendered table
	FilterQuery   string
	Visible       int
	Total         int
	ShowRowCount  bool
	StatusMessage string
	StatusIsError bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	content.WriteString(r.styles.Prompt.Render("Filter: "))
	content.WriteString(state.FilterInput)
	content.WriteString("\n\n")

	if state.Visible == 0 {
		if state.Total == 0 {
			content.WriteString(r.styles.Dim.Render("No records loaded."))
		} else {
			content.WriteString(r.styles.Dim.Render("No rows match the filter. Press Esc to clear it."))
		}
	} else {
		content.WriteString(state.Grid)
	}

	if status := r.renderStatusLine(state); status != "" {
		content.WriteString("\n")
		content.WriteString(status)
	}

	if state.HelpView != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}

		paddingNeeded := availableLines - currentLines - 1
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}

		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the title with the active filter right-aligned
func (r *Renderer) renderTitleLine(state ViewState) string {
	title := state.Title
	if title == "" {
		title = "gridfilter"
	}
	logo := r.styles.Title.Render(title)

	if state.FilterQuery == "" {
		return logo
	}

	rightContent := r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func (r *Renderer) renderStatusLine(state ViewState) string {
	var parts []string
	if state.ShowRowCount {
		parts = append(parts, fmt.Sprintf("%d of %d rows", state.Visible, state.Total))
	}
	if state.StatusMessage != "" {
		msg := state.StatusMessage
		if state.StatusIsError {
			msg = r.styles.StatusError.Render(msg)
		}
		parts = append(parts, msg)
	}
	if len(parts) == 0 {
		return ""
	}
	return r.styles.Status.Render(strings.Join(parts, "  |  "))
}
