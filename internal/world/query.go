package world

import "math"

// CellAt maps a world-space position to grid indices.
func (t *Terrain) CellAt(wx, wz float64) (int, int) {
	return int(math.Floor(wx / t.tileSize)), int(math.Floor(wz / t.tileSize))
}

// HeightAt returns the ground height in world units at a world position,
// or 0 outside the grid.
func (t *Terrain) HeightAt(wx, wz float64) float64 {
	c, ok := t.Cell(t.CellAt(wx, wz))
	if !ok {
		return 0
	}
	return c.Height * t.tileSize
}

// IsWalkable reports whether a world position lies on a non-water cell
// inside the grid.
func (t *Terrain) IsWalkable(wx, wz float64) bool {
	c, ok := t.Cell(t.CellAt(wx, wz))
	return ok && c.Kind.Walkable()
}

// CellCenter returns the world-space centre of cell (x, z).
func (t *Terrain) CellCenter(x, z int) (float64, float64) {
	return (float64(x) + 0.5) * t.tileSize, (float64(z) + 0.5) * t.tileSize
}

// ReachRadius is the harvest reach in world units.
func (t *Terrain) ReachRadius() float64 {
	return t.tileSize * 1.5
}

// DistanceTo returns the distance from a world position to a resource's
// cell centre.
func (w *World) DistanceTo(r Resource, wx, wz float64) float64 {
	cx, cz := w.Terrain.CellCenter(r.X, r.Z)
	return math.Hypot(cx-wx, cz-wz)
}

// ResourceNear returns the first resource, in insertion order, whose cell
// centre is strictly closer than the reach radius. It is the first match,
// not necessarily the nearest.
func (w *World) ResourceNear(wx, wz float64) (Resource, bool) {
	reach := w.Terrain.ReachRadius()
	var found Resource
	ok := false
	w.Resources.Each(func(r Resource) bool {
		if w.DistanceTo(r, wx, wz) < reach {
			found, ok = r, true
			return false
		}
		return true
	})
	return found, ok
}
