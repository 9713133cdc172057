package render

import (
	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/world"
)

// CellWidth is the number of screen columns per tile, which keeps tiles
// roughly square in a terminal.
const CellWidth = 2

// Viewport draws the map around the player into area.
func Viewport(s *core.Screen, snap game.Snapshot, area core.Rect) {
	t := snap.Terrain
	cols := area.W / CellWidth
	rows := area.H
	if cols <= 0 || rows <= 0 {
		return
	}

	ptx, ptz := t.CellAt(snap.Player.X, snap.Player.Z)
	originX := ptx - cols/2
	originZ := ptz - rows/2

	resources := make(map[[2]int]world.ResourceKind, len(snap.Resources))
	for _, r := range snap.Resources {
		resources[[2]int{r.X, r.Z}] = r.Kind
	}

	night := snap.Lighting.Night
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tx, tz := originX+col, originZ+row
			sx, sy := area.X+col*CellWidth, area.Y+row

			cell, ok := t.Cell(tx, tz)
			if !ok {
				s.SetColor(sx, sy, ' ', core.ColorDefault)
				s.SetColor(sx+1, sy, ' ', core.ColorDefault)
				continue
			}
			glyph, color := TileGlyph(cell.Kind, night)
			s.SetColor(sx, sy, glyph, color)
			s.SetColor(sx+1, sy, glyph, color)

			if kind, ok := resources[[2]int{tx, tz}]; ok {
				rg, rc := ResourceGlyph(kind)
				s.SetColor(sx, sy, rg, rc)
			}
		}
	}

	px := area.X + (ptx-originX)*CellWidth
	py := area.Y + (ptz - originZ)
	s.SetColor(px+1, py, PlayerGlyph(snap.Player.Facing), core.ColorBrightRed)
}
