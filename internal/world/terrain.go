package world

import "fmt"

// Terrain is the fixed-size grid of cells. Cells are stored row-major:
// index = z*Size + x. Outside the generator it is read-only.
type Terrain struct {
	size     int
	tileSize float64
	cells    []Cell
}

func newTerrain(size int, tileSize float64) *Terrain {
	return &Terrain{
		size:     size,
		tileSize: tileSize,
		cells:    make([]Cell, size*size),
	}
}

// FromCells builds a terrain from a row-major cell slice of length size*size.
func FromCells(size int, tileSize float64, cells []Cell) (*Terrain, error) {
	if size <= 0 {
		return nil, fmt.Errorf("world: invalid terrain size %d", size)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("world: invalid tile size %v", tileSize)
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("world: expected %d cells, got %d", size*size, len(cells))
	}
	t := newTerrain(size, tileSize)
	copy(t.cells, cells)
	return t, nil
}

// Size returns the number of cells along each side.
func (t *Terrain) Size() int {
	return t.size
}

// TileSize returns the side length of one cell in world units.
func (t *Terrain) TileSize() float64 {
	return t.tileSize
}

// InBounds reports whether (x, z) is a cell of the grid.
func (t *Terrain) InBounds(x, z int) bool {
	return x >= 0 && x < t.size && z >= 0 && z < t.size
}

// Cell returns the cell at (x, z). The second result is false out of bounds.
func (t *Terrain) Cell(x, z int) (Cell, bool) {
	if !t.InBounds(x, z) {
		return Cell{}, false
	}
	return t.cells[z*t.size+x], true
}

func (t *Terrain) set(x, z int, c Cell) {
	t.cells[z*t.size+x] = c
}

// Cells returns a copy of the grid in row-major order.
func (t *Terrain) Cells() []Cell {
	out := make([]Cell, len(t.cells))
	copy(out, t.cells)
	return out
}

// CountByKind returns how many cells of each tile kind the grid holds.
func (t *Terrain) CountByKind() map[TileKind]int {
	counts := make(map[TileKind]int, len(TileKinds))
	for _, c := range t.cells {
		counts[c.Kind]++
	}
	return counts
}
