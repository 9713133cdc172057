package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wanderer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "W":
		return core.ActionForward, false
	case "s", "S":
		return core.ActionBack, false
	case "a", "A":
		return core.ActionLeft, false
	case "d", "D":
		return core.ActionRight, false
	case "left", "j":
		return core.ActionLookLeft, false
	case "right", "l":
		return core.ActionLookRight, false
	case "up", "i":
		return core.ActionLookUp, false
	case "down", "k":
		return core.ActionLookDown, false
	case "e", "E":
		return core.ActionHarvest, false
	case "f", "F":
		return core.ActionEat, false
	case "c", "C":
		return core.ActionCraftCampfire, false
	case "x", "X":
		return core.ActionCraftAxe, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionMenu, false
	case "p":
		return core.ActionPause, false
	case "?":
		return core.ActionHelp, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// GameKeyMap describes the in-game bindings for the help view. Matching is
// done by KeyMapper; these bindings only carry help text.
type GameKeyMap struct {
	Move     key.Binding
	Look     key.Binding
	Harvest  key.Binding
	Eat      key.Binding
	Campfire key.Binding
	Axe      key.Binding
	Pause    key.Binding
	Tutorial key.Binding
	Shot     key.Binding
	Menu     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Look, k.Harvest, k.Eat, k.Campfire, k.Axe, k.Tutorial}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Look},
		{k.Harvest, k.Eat, k.Campfire, k.Axe},
		{k.Pause, k.Tutorial, k.Shot, k.Menu, k.Quit},
	}
}

// DefaultGameKeyMap returns the help bindings matching KeyMapper.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move:     key.NewBinding(key.WithKeys("w", "a", "s", "d"), key.WithHelp("wasd", "move")),
		Look:     key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("arrows", "look")),
		Harvest:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "harvest")),
		Eat:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "eat")),
		Campfire: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "campfire")),
		Axe:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "axe")),
		Pause:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Tutorial: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "tutorial")),
		Shot:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Menu:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
