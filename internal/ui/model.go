package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gridfilter/internal/config"
	"gridfilter/internal/eventbus"
	"gridfilter/internal/logic"
	"gridfilter/internal/ui/viewmodels"
	"gridfilter/internal/ui/views"
)

// Lines taken by everything except the grid body:
// padding, title, filter line, blanks, grid header, status and help.
const chromeHeight = 12

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	view  *viewmodels.FilteredView
	input textinput.Model
	grid  table.Model
	help  help.Model
	keys  keyMap

	width         int
	height        int
	statusMessage string
	statusIsError bool

	renderer *views.Renderer
	helpOps  *HelpOps
}

// NewModel creates a new UI model over store. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.RecordStore) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	renderer := views.NewRenderer(nil)

	input := textinput.New()
	input.Prompt = "" // rendered by the view
	input.Placeholder = "text, field1:text or field2:text"
	input.Focus()

	view := viewmodels.NewFilteredView(store, logic.ColumnFilter{})

	grid := table.New(
		table.WithColumns(views.GridColumns(80, cfg.UISettings.Field1Header, cfg.UISettings.Field2Header)),
		table.WithRows(views.GridRows(view.Visible())),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	grid.SetStyles(renderer.Styles().TableStyles())

	return &Model{
		bus:      bus,
		config:   cfg,
		view:     view,
		input:    input,
		grid:     grid,
		help:     help.New(),
		keys:     defaultKeyMap(),
		renderer: renderer,
		helpOps:  NewHelpOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// SetQuery replaces the filter text as if it had been typed
func (m *Model) SetQuery(query string) {
	m.input.SetValue(query)
	m.applyQuery(m.input.Value())
}

// Query returns the current filter text
func (m *Model) Query() string {
	return m.view.Query()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.statusMessage = fmt.Sprintf("Help unavailable: %v", msg.err)
			m.statusIsError = true
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: "help pager failed", Err: msg.err})
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelpPager()

	case key.Matches(msg, m.keys.Clear):
		m.clearStatus()
		m.SetQuery("")
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.grid.MoveUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.grid.MoveDown(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.grid.MoveUp(m.grid.Height())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.grid.MoveDown(m.grid.Height())
		return m, nil
	}

	m.clearStatus()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyQuery(m.input.Value())
	return m, cmd
}

// applyQuery refreshes the grid when the query text changed and notifies
// subscribers of the new filter
func (m *Model) applyQuery(query string) {
	if !m.view.SetQuery(query) {
		return
	}

	m.grid.SetRows(views.GridRows(m.view.Visible()))
	m.grid.GotoTop()

	if m.bus != nil {
		m.bus.Publish(eventbus.FilterChangedEvent{
			Query:   query,
			Visible: len(m.view.Visible()),
			Total:   m.view.Total(),
		})
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	columns := views.GridColumns(width, m.config.UISettings.Field1Header, m.config.UISettings.Field2Header)
	m.grid.SetColumns(columns)

	gridWidth := 0
	for _, c := range columns {
		gridWidth += c.Width + 2 // cell padding
	}
	m.grid.SetWidth(gridWidth)

	gridHeight := height - chromeHeight
	if gridHeight < 3 {
		gridHeight = 3
	}
	m.grid.SetHeight(gridHeight)
	m.input.Width = max(width-14, 10)
}

func (m *Model) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager() tea.Cmd {
	content := RenderHelpContent(m.config.UISettings.Field1Header, m.config.UISettings.Field2Header)
	helpOps := m.helpOps
	return func() tea.Msg {
		return helpPagerMsg{err: helpOps.ShowHelpInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	filterQuery := ""
	if m.view.IsFiltered() {
		filterQuery = m.view.Query()
	}
	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.config.Title,
		FilterInput:   m.input.View(),
		Grid:          m.grid.View(),
		FilterQuery:   filterQuery,
		Visible:       len(m.view.Visible()),
		Total:         m.view.Total(),
		ShowRowCount:  m.config.UISettings.ShowRowCount,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		HelpView:      m.help.View(m.keys),
	})
}
