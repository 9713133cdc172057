package render

import (
	"fmt"

	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/game"
)

// PanelWidth is the width of the side panel when the screen is wide enough.
const PanelWidth = 24

const minPanelScreen = 60

// Layout splits the screen into the map, side panel, and status line.
type Layout struct {
	Map    core.Rect
	Panel  core.Rect
	Status core.Rect
}

// NewLayout computes a layout for a w x h screen. Narrow screens drop the
// side panel.
func NewLayout(w, h int) Layout {
	mapH := h - 1
	if mapH < 0 {
		mapH = 0
	}
	l := Layout{
		Map:    core.NewRect(0, 0, w, mapH),
		Status: core.NewRect(0, mapH, w, 1),
	}
	if w >= minPanelScreen {
		l.Map.W = w - PanelWidth
		l.Panel = core.NewRect(w-PanelWidth, 0, PanelWidth, mapH)
	}
	return l
}

// Frame draws a complete plain frame: map, panel, status line, and any
// overlay. A nil tutorial draws none.
func Frame(s *core.Screen, snap game.Snapshot, tut *Tutorial, message string) {
	s.Clear()
	l := NewLayout(s.Width(), s.Height())

	Viewport(s, snap, l.Map)
	if l.Panel.W > 0 {
		Panel(s, snap, l.Panel)
	}

	status := HoverPrompt(snap)
	if message != "" {
		if status != "" {
			status += "  |  "
		}
		status += message
	}
	s.DrawTextColor(l.Status.X, l.Status.Y, status, core.ColorBrightWhite)

	switch {
	case snap.GameOver:
		GameOverOverlay(s, snap)
	case tut != nil:
		TutorialOverlay(s, tut)
	}
}

// Panel draws the side panel: clock, meters, inventory, and minimap.
func Panel(s *core.Screen, snap game.Snapshot, area core.Rect) {
	x := area.X + 1
	y := area.Y
	barW := area.W - 10
	p := snap.Player

	s.DrawTextColor(x, y, "WANDERER", core.ColorBrightYellow)
	y += 2
	timeColor := core.ColorYellow
	if snap.Time.Night {
		timeColor = core.ColorBrightBlue
	}
	s.DrawTextColor(x, y, TimeLabel(snap.Time), timeColor)
	y++
	s.DrawTextColor(x, y, "Heading "+string(PlayerGlyph(snap.Camera.Yaw)), core.ColorGray)
	y += 2
	s.DrawTextColor(x, y, "HP  "+Bar(int(p.Health), int(p.MaxHealth), barW), core.ColorRed)
	y++
	s.DrawTextColor(x, y, "Food"+Bar(int(p.Hunger), int(p.MaxHunger), barW), core.ColorOrange)
	y += 2
	for _, line := range InventoryLines(p) {
		s.DrawText(x, y, line)
		y++
	}
	y++

	mapH := area.Bottom() - y - 1
	if mapH > area.W/2 {
		mapH = area.W / 2
	}
	if mapH > 2 {
		Minimap(s, snap.Terrain, p.X, p.Z, core.NewRect(x, y, area.W-2, mapH))
	}
}

// GameOverOverlay draws the end-of-run box.
func GameOverOverlay(s *core.Screen, snap game.Snapshot) {
	lines := []string{
		"YOU HAVE STARVED",
		"",
		fmt.Sprintf("Survived until %s", snap.Time),
		fmt.Sprintf("Items gathered: %d", snap.Stats.ItemsGathered()),
		"",
		"r: new journey   esc: menu",
	}
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 4
	h := len(lines) + 2
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightRed
		}
		s.DrawTextColor(box.X+(w-len(l))/2, box.Y+1+i, l, c)
	}
}
