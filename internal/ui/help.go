package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// RenderHelpContent generates the help page shown in the pager
func RenderHelpContent(field1Header, field2Header string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	exampleStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("gridfilter Help"))
	help.WriteString("\n\n")

	help.WriteString(sectionStyle.Render("Keys"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Move the grid cursor")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Page the grid")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear the filter")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("F1"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Ctrl+C"), descStyle.Render("Quit")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Filter syntax"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("text        "), descStyle.Render(fmt.Sprintf("rows whose %s contains text", field1Header))))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("field1:text "), descStyle.Render(fmt.Sprintf("rows whose %s contains text", field1Header))))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("field2:text "), descStyle.Render(fmt.Sprintf("rows whose %s contains text", field2Header))))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("other:text  "), descStyle.Render(fmt.Sprintf("rows whose %s contains \"other:text\"", field1Header))))
	help.WriteString("\n")
	help.WriteString(exampleStyle.Render("  Matching is case-sensitive. Only the first colon splits the query."))
	help.WriteString("\n")
	help.WriteString(exampleStyle.Render("  Examples: prop2, field2:Mode B, field1:Init@Unom"))
	help.WriteString("\n")

	return help.String()
}

// HelpOps runs the help pager outside the Bubble Tea renderer
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	return root.Run()
}
