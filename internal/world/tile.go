// Package world owns the generated terrain grid and the resource collection,
// and answers read-only spatial queries against them.
package world

import "fmt"

// TileKind classifies a terrain cell.
type TileKind uint8

const (
	Grass TileKind = iota
	Water
	Sand
	Forest
	Stone
)

// TileKinds lists every tile kind in declaration order.
var TileKinds = []TileKind{Grass, Water, Sand, Forest, Stone}

var tileNames = [...]string{"grass", "water", "sand", "forest", "stone"}

func (k TileKind) String() string {
	if int(k) < len(tileNames) {
		return tileNames[k]
	}
	return fmt.Sprintf("tile(%d)", k)
}

// ParseTileKind converts a name produced by String back into a TileKind.
func ParseTileKind(s string) (TileKind, error) {
	for i, name := range tileNames {
		if name == s {
			return TileKind(i), nil
		}
	}
	return 0, fmt.Errorf("world: unknown tile kind %q", s)
}

// Walkable reports whether the player may stand on the tile.
func (k TileKind) Walkable() bool {
	return k != Water
}

// RGB returns the display colour of the tile as 0xRRGGBB.
func (k TileKind) RGB() uint32 {
	switch k {
	case Water:
		return 0x3a7aaa
	case Sand:
		return 0xd4b584
	case Forest:
		return 0x3d6a3d
	case Stone:
		return 0x7a7a7a
	default:
		return 0x5a9c50
	}
}

// Cell is a single terrain cell. Height is in tile units; multiply by the
// tile size to get world units.
type Cell struct {
	Kind   TileKind
	Height float64
}
