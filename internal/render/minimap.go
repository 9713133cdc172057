package render

import (
	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/world"
)

// Minimap draws the whole terrain scaled down into area, one character per
// sampled cell, with the player marked.
func Minimap(s *core.Screen, t *world.Terrain, px, pz float64, area core.Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	size := t.Size()
	for y := 0; y < area.H; y++ {
		for x := 0; x < area.W; x++ {
			cell, _ := t.Cell(x*size/area.W, y*size/area.H)
			glyph, color := TileGlyph(cell.Kind, false)
			s.SetColor(area.X+x, area.Y+y, glyph, color)
		}
	}

	tx, tz := t.CellAt(px, pz)
	mx := core.Clamp(tx*area.W/size, 0, area.W-1)
	my := core.Clamp(tz*area.H/size, 0, area.H-1)
	s.SetColor(area.X+mx, area.Y+my, '@', core.ColorBrightRed)
}

// WorldMap renders the full-resolution terrain as plain text rows,
// two characters per cell, with resources overlaid.
func WorldMap(w *world.World) *core.Screen {
	size := w.Terrain.Size()
	s := core.NewScreen(size*CellWidth, size)
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			cell, _ := w.Terrain.Cell(x, z)
			glyph, color := TileGlyph(cell.Kind, false)
			s.SetColor(x*CellWidth, z, glyph, color)
			s.SetColor(x*CellWidth+1, z, glyph, color)
		}
	}
	w.Resources.Each(func(r world.Resource) bool {
		glyph, color := ResourceGlyph(r.Kind)
		s.SetColor(r.X*CellWidth, r.Z, glyph, color)
		return true
	})
	return s
}
