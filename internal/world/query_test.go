package world

import "testing"

// testWorld builds a 4x4 world:
//
//	z=0: G G W S
//	z=1: G F G G
//	z=2: S G G G
//	z=3: G G G W
//
// with heights 0.5 everywhere except the stone cells (1.0).
func testWorld(t *testing.T) *World {
	t.Helper()
	rows := [][]TileKind{
		{Grass, Grass, Water, Stone},
		{Grass, Forest, Grass, Grass},
		{Stone, Grass, Grass, Grass},
		{Grass, Grass, Grass, Water},
	}
	cells := make([]Cell, 0, 16)
	for _, row := range rows {
		for _, k := range row {
			h := 0.5
			if k == Stone {
				h = 1.0
			}
			cells = append(cells, Cell{Kind: k, Height: h})
		}
	}
	terrain, err := FromCells(4, 4, cells)
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	return &World{Terrain: terrain, Resources: NewResourceList()}
}

func TestHeightAt(t *testing.T) {
	w := testWorld(t)
	tests := []struct {
		name   string
		wx, wz float64
		want   float64
	}{
		{"origin", 0, 0, 2},
		{"stone cell", 13, 1, 4},
		{"cell edge belongs to next cell", 12, 0, 4},
		{"negative x", -0.1, 5, 0},
		{"past far edge", 16, 5, 0},
		{"negative z", 5, -3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Terrain.HeightAt(tc.wx, tc.wz); got != tc.want {
				t.Errorf("HeightAt(%v, %v) = %v, expected %v", tc.wx, tc.wz, got, tc.want)
			}
		})
	}
}

func TestIsWalkable(t *testing.T) {
	w := testWorld(t)
	tests := []struct {
		name   string
		wx, wz float64
		want   bool
	}{
		{"grass", 2, 2, true},
		{"forest", 6, 6, true},
		{"stone", 14, 2, true},
		{"water", 10, 2, false},
		{"out of bounds", -1, 2, false},
		{"far out of bounds", 100, 100, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Terrain.IsWalkable(tc.wx, tc.wz); got != tc.want {
				t.Errorf("IsWalkable(%v, %v) = %v, expected %v", tc.wx, tc.wz, got, tc.want)
			}
		})
	}
}

func TestResourceNearFirstInOrder(t *testing.T) {
	w := testWorld(t)
	far := w.Resources.Add(1, 1, Tree)  // centre (6, 6)
	near := w.Resources.Add(2, 1, Herb) // centre (10, 6)

	// (9, 6) is 3 units from the tree and 1 from the herb; both are within
	// reach (6), and the tree was inserted first.
	got, ok := w.ResourceNear(9, 6)
	if !ok || got.ID != far.ID {
		t.Errorf("ResourceNear = %+v, %v; expected first-inserted %+v", got, ok, far)
	}

	w.Resources.Remove(far.ID)
	got, ok = w.ResourceNear(9, 6)
	if !ok || got.ID != near.ID {
		t.Errorf("after removal ResourceNear = %+v, %v; expected %+v", got, ok, near)
	}
}

func TestResourceNearReachIsStrict(t *testing.T) {
	w := testWorld(t)
	w.Resources.Add(0, 0, Herb) // centre (2, 2)

	if _, ok := w.ResourceNear(8, 2); ok {
		t.Error("resource exactly at reach radius should not be found")
	}
	if _, ok := w.ResourceNear(7.9, 2); !ok {
		t.Error("resource just inside reach should be found")
	}
	if _, ok := w.ResourceNear(30, 30); ok {
		t.Error("no resource expected far away")
	}
}

func TestFromCellsValidation(t *testing.T) {
	if _, err := FromCells(0, 4, nil); err == nil {
		t.Error("expected error for zero size")
	}
	if _, err := FromCells(2, 0, make([]Cell, 4)); err == nil {
		t.Error("expected error for zero tile size")
	}
	if _, err := FromCells(2, 4, make([]Cell, 3)); err == nil {
		t.Error("expected error for wrong cell count")
	}
}
