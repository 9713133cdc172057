// Package render draws game snapshots into a core.Screen: the top-down map,
// the minimap, HUD text, and overlays. It has no terminal dependencies;
// hosts style the resulting cells.
package render

import (
	"math"

	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/world"
)

// TileGlyph returns the map glyph and colour for a tile.
func TileGlyph(k world.TileKind, night bool) (rune, core.Color) {
	var r rune
	var c core.Color
	switch k {
	case world.Water:
		r, c = '~', core.ColorBlue
	case world.Sand:
		r, c = ':', core.ColorSand
	case world.Forest:
		r, c = '%', core.ColorDarkGreen
	case world.Stone:
		r, c = '^', core.ColorGray
	default:
		r, c = '.', core.ColorGreen
	}
	if night && k != world.Water {
		c = core.ColorNightBlue
	}
	return r, c
}

// ResourceGlyph returns the map glyph and colour for a resource.
func ResourceGlyph(k world.ResourceKind) (rune, core.Color) {
	switch k {
	case world.Tree:
		return 'T', core.ColorBrightGreen
	case world.Rock:
		return 'o', core.ColorWhite
	case world.Bush:
		return '&', core.ColorMagenta
	default:
		return '*', core.ColorBrightYellow
	}
}

// PlayerGlyph returns an arrow for a facing angle, as used for both the
// player facing and the camera yaw. Angle 0 looks toward -z, which is up on
// the map.
func PlayerGlyph(facing float64) rune {
	a := math.Mod(facing+2*math.Pi, 2*math.Pi)
	switch {
	case a < math.Pi/4 || a >= 7*math.Pi/4:
		return '^'
	case a < 3*math.Pi/4:
		return '<'
	case a < 5*math.Pi/4:
		return 'v'
	default:
		return '>'
	}
}
