package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wanderer/internal/config"
	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/render"
	"github.com/vovakirdan/wanderer/internal/storage"
)

const (
	messageTTL = 2500 * time.Millisecond
	minWidth   = 40
	minHeight  = 12
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	nightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a game session.
type Options struct {
	Config       config.Config
	Difficulty   string
	Player       string         // Name runs are recorded under
	Store        *storage.Store // Optional
	Width        int
	Height       int
	SkipTutorial bool
}

// GameModel is the Bubble Tea model for one journey. It owns a game.Game
// and advances it on every tick with the intent gathered from key presses.
type GameModel struct {
	opts      Options
	game      *game.Game
	snap      game.Snapshot
	screen    *core.Screen
	keyMapper *KeyMapper
	hold      *HoldTracker
	look      *LookSmoother
	pending   core.InputFrame // One-shot actions since the last tick
	keys      GameKeyMap
	help      help.Model
	healthBar progress.Model
	hungerBar progress.Model
	tutorial  *render.Tutorial
	now       func() time.Time

	message   string
	messageAt time.Time
	lastTick  time.Time

	width      int
	height     int
	paused     bool
	recorded   bool
	runID      string
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts a fresh journey.
func NewGameModel(opts Options) GameModel {
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	barWidth := render.PanelWidth - 6
	m := GameModel{
		opts:      opts,
		screen:    core.NewScreen(opts.Width, opts.Height),
		keyMapper: NewKeyMapper(),
		hold:      NewHoldTracker(opts.Config.KeyHold()),
		look:      NewLookSmoother(opts.Config.Camera.InputDamping),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		healthBar: progress.New(progress.WithSolidFill("#d9534f"), progress.WithoutPercentage(), progress.WithWidth(barWidth)),
		hungerBar: progress.New(progress.WithSolidFill("#f0ad4e"), progress.WithoutPercentage(), progress.WithWidth(barWidth)),
		now:       time.Now,
		width:     opts.Width,
		height:    opts.Height,
	}
	m.help.Width = opts.Width
	m.newJourney()
	if m.showTutorialOnStart() {
		m.tutorial = render.NewTutorial()
	}
	return m
}

// newJourney replaces the game with a fresh one.
func (m *GameModel) newJourney() {
	s := m.opts.Config.GameSettings()
	if s.Seed == 0 {
		s.Seed = m.now().UnixNano()
	}
	m.game = game.New(s)
	m.snap = m.game.Snapshot()
	m.recorded = false
	m.runID = ""
	m.paused = false
	m.message = ""
	m.lastTick = time.Time{}
	m.pending = core.NewInputFrame()
	m.hold.Release()
	m.look.Reset()
}

func (m *GameModel) showTutorialOnStart() bool {
	if m.opts.SkipTutorial {
		return false
	}
	if m.opts.Store == nil {
		return true
	}
	seen, err := m.opts.Store.TutorialSeen(m.opts.Player)
	return err != nil || !seen
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Config.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.record(storage.CauseQuit)
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.tutorialActive() {
		m.handleTutorialKey(msg)
		return m, nil
	}

	if m.snap.GameOver {
		switch msg.String() {
		case "r":
			m.newJourney()
		case "esc", "b":
			m.backToMenu = true
		}
		return m, nil
	}

	action, _ := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionForward, core.ActionBack, core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.hold.Press(action, m.now())
		}
	case core.ActionLookLeft, core.ActionLookRight, core.ActionLookUp, core.ActionLookDown:
		if !m.paused {
			m.look.PushAction(action)
		}
	case core.ActionHarvest, core.ActionEat, core.ActionCraftCampfire, core.ActionCraftAxe:
		m.pending.Set(action)
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionHelp:
		m.tutorial = render.NewTutorial()
	case core.ActionMenu:
		m.record(storage.CauseQuit)
		m.backToMenu = true
	}
	return m, nil
}

func (m *GameModel) handleTutorialKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter", " ", "right", "n":
		m.tutorial.Next()
	case "left", "b":
		m.tutorial.Prev()
	case "esc":
		m.tutorial.Skip()
	}
	if m.tutorial.Done() && m.opts.Store != nil {
		//nolint:errcheck // Best-effort, the tutorial just shows again next time
		m.opts.Store.MarkTutorialSeen(m.opts.Player)
	}
}

// handleTick advances the simulation by the wall time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Config.Runtime.TickRate)

	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now
	dt = m.opts.Config.ClampFrame(dt)

	if m.paused || m.tutorialActive() {
		m.pending.Clear()
		m.hold.Release()
		m.look.Reset()
		return m, next
	}

	in := game.IntentFromFrame(m.pending)
	in.Held = m.hold.Held(now)
	in.YawDelta, in.PitchDelta = m.look.Step()
	m.pending.Clear()

	m.snap = m.game.Advance(dt, in)
	if text := render.LastMessage(m.snap); text != "" {
		m.message, m.messageAt = text, now
	}
	if m.message != "" && now.Sub(m.messageAt) > messageTTL {
		m.message = ""
	}
	if m.snap.GameOver {
		m.record(storage.CauseStarved)
	}
	return m, next
}

// record saves the run once. Runs with no simulated time are not saved.
func (m *GameModel) record(cause string) {
	if m.recorded || m.opts.Store == nil {
		return
	}
	sum := m.game.Summary()
	if sum.ElapsedMs == 0 {
		return
	}
	m.recorded = true
	run := storage.NewRun(m.opts.Player, m.opts.Difficulty, cause, sum)
	if id, err := m.opts.Store.SaveRun(run); err == nil {
		m.runID = id
	}
}

func (m GameModel) tutorialActive() bool {
	return m.tutorial != nil && !m.tutorial.Done()
}

// saveScreenshot saves a plain-text frame to the data directory.
func (m *GameModel) saveScreenshot() {
	s := core.NewScreen(m.width, m.height)
	render.Frame(s, m.snap, nil, m.message)

	dir := filepath.Join(config.DataDir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("wanderer_%d_%s.txt", m.game.Seed(), m.now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(s.String()), 0o600)
	m.message, m.messageAt = "Screenshot saved", m.now()
}

// View renders the map, the side panel, and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d), need at least %dx%d", m.width, m.height, minWidth, minHeight)
	}

	bodyH := m.height - 1
	panelW := 0
	if m.width >= 60 {
		panelW = render.PanelWidth
	}
	mapW := m.width - panelW

	s := m.screen
	s.Resize(mapW, bodyH)
	s.Clear()
	render.Viewport(s, m.snap, core.NewRect(0, 0, mapW, bodyH-1))
	s.DrawTextColor(0, bodyH-1, m.statusLine(), core.ColorBrightWhite)
	switch {
	case m.snap.GameOver:
		render.GameOverOverlay(s, m.snap)
	case m.tutorialActive():
		render.TutorialOverlay(s, m.tutorial)
	case m.paused:
		s.DrawTextCentered(bodyH/2, "  PAUSED - press p to resume  ")
	}

	body := RenderScreen(s)
	if panelW > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.panelView(panelW, bodyH))
	}
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m GameModel) statusLine() string {
	parts := make([]string, 0, 2)
	if prompt := render.HoverPrompt(m.snap); prompt != "" {
		parts = append(parts, prompt)
	}
	if m.message != "" {
		parts = append(parts, m.message)
	}
	return strings.Join(parts, "  |  ")
}

// panelView renders the side panel with meters, inventory, and minimap.
func (m GameModel) panelView(width, height int) string {
	p := m.snap.Player
	inner := width - 4

	var b strings.Builder
	b.WriteString(titleStyle.Render("WANDERER"))
	b.WriteString("\n\n")

	clock := dayStyle
	if m.snap.Time.Night {
		clock = nightStyle
	}
	b.WriteString(clock.Render(render.TimeLabel(m.snap.Time)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("Health %3.0f", p.Health)))
	b.WriteString("\n")
	b.WriteString(m.healthBar.ViewAs(ratio(p.Health, p.MaxHealth)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Hunger %3.0f", p.Hunger)))
	b.WriteString("\n")
	b.WriteString(m.hungerBar.ViewAs(ratio(p.Hunger, p.MaxHunger)))
	b.WriteString("\n\n")

	b.WriteString(strings.Join(render.InventoryLines(p), "\n"))
	b.WriteString("\n")

	used := strings.Count(b.String(), "\n") + 1
	mapH := height - 2 - used - 1
	if mapH > inner/2 {
		mapH = inner / 2
	}
	if mapH > 2 {
		mini := core.NewScreen(inner, mapH)
		render.Minimap(mini, m.snap.Terrain, p.X, p.Z, core.NewRect(0, 0, inner, mapH))
		b.WriteString("\n")
		b.WriteString(RenderScreen(mini))
	}

	return panelStyle.Width(width - 2).Height(height - 2).Render(b.String())
}

func ratio(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return core.ClampF(v/max, 0, 1)
}

// Snapshot returns the latest game snapshot.
func (m GameModel) Snapshot() game.Snapshot {
	return m.snap
}

// RunID returns the ID of the recorded run, or "" if none was saved.
func (m GameModel) RunID() string {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Paused reports whether the game is paused.
func (m GameModel) Paused() bool {
	return m.paused
}

// TutorialActive reports whether the tutorial overlay is showing.
func (m GameModel) TutorialActive() bool {
	return m.tutorialActive()
}

// GameResult reports how a standalone game program ended.
type GameResult struct {
	BackToMenu bool
	Quit       bool
}

// standaloneGame ends the program when the player leaves for the menu.
type standaloneGame struct {
	GameModel
}

func (s standaloneGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	s.GameModel = next.(GameModel)
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}

// RunGame starts a Bubble Tea program for one journey.
func RunGame(opts Options) (GameResult, error) {
	p := tea.NewProgram(standaloneGame{NewGameModel(opts)}, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Quit: true}, err
	}
	m, ok := finalModel.(standaloneGame)
	if !ok {
		return GameResult{Quit: true}, nil
	}
	return GameResult{BackToMenu: m.BackToMenu(), Quit: m.IsQuitting()}, nil
}
