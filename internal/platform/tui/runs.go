package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wanderer/internal/storage"
)

const maxRuns = 100

// RunView selects which runs the board lists.
type RunView int

const (
	ViewBest RunView = iota
	ViewRecent
	ViewMine
)

func (v RunView) String() string {
	switch v {
	case ViewBest:
		return "Longest"
	case ViewRecent:
		return "Recent"
	case ViewMine:
		return "Yours"
	default:
		return "?"
	}
}

// RunsKeyMap defines the key bindings for the runs board.
type RunsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next list"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev list"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history board.
type RunsModel struct {
	store     *storage.Store
	player    string
	views     []RunView
	viewIdx   int
	runs      []storage.Run
	stats     *storage.RunStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      RunsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRunsModel creates a runs board. The "Yours" list is offered when
// player is set.
func NewRunsModel(store *storage.Store, player string, width, height int) RunsModel {
	views := []RunView{ViewBest, ViewRecent}
	if player != "" {
		views = append(views, ViewMine)
	}

	m := RunsModel{
		store:  store,
		player: player,
		views:  views,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Reached", Width: 16},
		{Title: "Items", Width: 6},
		{Title: "Crafted", Width: 8},
		{Title: "Seed", Width: 10},
		{Title: "End", Width: 10},
		{Title: "Date", Width: 12},
	}
	if m.width < 100 {
		// Drop seed and crafted on narrow terminals.
		columns = []table.Column{columns[0], columns[1], columns[2], columns[3], columns[6], columns[7]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches the current list and the aggregate stats.
func (m *RunsModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	var runs []storage.Run
	var err error
	switch m.views[m.viewIdx] {
	case ViewBest:
		runs, err = m.store.BestRuns(maxRuns)
	case ViewRecent:
		runs, err = m.store.RecentRuns(maxRuns)
	case ViewMine:
		runs, err = m.store.PlayerRuns(m.player, maxRuns)
	}
	if err != nil {
		m.loadErr = err
	} else {
		m.runs = runs
	}
	if stats, statsErr := m.store.Stats(); statsErr == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *RunsModel) updateTableRows() {
	wide := len(m.table.Columns()) == 8
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		reached := fmt.Sprintf("Day %d %02d:%02d", r.Day, r.Hour, r.Minute)
		date := r.CreatedAt.Format("Jan 02 15:04")
		if wide {
			rows[i] = table.Row{
				fmt.Sprintf("%d", i+1), r.Player, reached,
				fmt.Sprintf("%d", r.ItemsGathered), fmt.Sprintf("%d", r.Crafted),
				fmt.Sprintf("%d", r.Seed), r.Cause, date,
			}
		} else {
			rows[i] = table.Row{
				fmt.Sprintf("%d", i+1), r.Player, reached,
				fmt.Sprintf("%d", r.ItemsGathered), r.Cause, date,
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the runs board.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs board.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.viewIdx = (m.viewIdx + 1) % len(m.views)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.viewIdx = (m.viewIdx + len(m.views) - 1) % len(m.views)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs board.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("PAST JOURNEYS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))
	b.WriteString("\n")

	if m.stats != nil && m.stats.Runs > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf(
			"%d journeys  |  furthest: day %d  |  average: day %.1f  |  items gathered: %d",
			m.stats.Runs, m.stats.BestDay, m.stats.AvgDay, m.stats.TotalGathered)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m RunsModel) tabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.views))
	for i, v := range m.views {
		if i == m.viewIdx {
			tabs[i] = activeTabStyle.Render(v.String())
		} else {
			tabs[i] = tabStyle.Render(v.String())
		}
	}
	return strings.Join(tabs, " ")
}

// tableContent renders the table or an empty message.
func (m RunsModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.store == nil:
		return emptyStyle.Render("Run history is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No journeys recorded yet.\nSet out and see how long you last!")
	}
	return m.table.View()
}

// CurrentView returns the list currently shown.
func (m RunsModel) CurrentView() RunView {
	return m.views[m.viewIdx]
}

// Runs returns the runs currently listed.
func (m RunsModel) Runs() []storage.Run {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// RunRuns runs the history board.
// Returns true if user wants to go back to menu, false if quitting.
func RunRuns(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewRunsModel(store, player, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(RunsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
