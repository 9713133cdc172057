package world

import (
	"math"

	"github.com/vovakirdan/wanderer/internal/rng"
)

// GenParams configures world generation. The zero value is not usable;
// start from DefaultGenParams.
type GenParams struct {
	Size     int     // Cells along each side
	TileSize float64 // World units per cell

	// Noise pass
	HeightWeights   []float64 // One draw per weight, summed
	HeightFalloff   float64   // Subtracted per unit of centre distance
	MoistureWeights []float64 // One draw per weight, summed
	MoistureFalloff float64

	// Classification thresholds, tested in order
	WaterBelow     float64 // height < WaterBelow → water
	SandBelow      float64 // height < SandBelow && moisture > SandMoisture → sand
	SandMoisture   float64
	StoneAbove     float64 // height > StoneAbove → stone
	ForestMoisture float64 // moisture > ForestMoisture && height > ForestAbove → forest
	ForestAbove    float64

	// Resource chances, checked in order herb, tree, rock, bush
	HerbChance float64
	TreeChance float64
	RockChance float64
	BushChance float64

	SpawnClearRadius int // Water within this Chebyshev radius of spawn becomes grass
}

// DefaultGenParams returns the parameters of the standard 60×60 world.
func DefaultGenParams() GenParams {
	return GenParams{
		Size:             60,
		TileSize:         4,
		HeightWeights:    []float64{0.5, 0.3, 0.2},
		HeightFalloff:    0.5,
		MoistureWeights:  []float64{0.5, 0.5},
		MoistureFalloff:  0.3,
		WaterBelow:       -0.2,
		SandBelow:        0,
		SandMoisture:     0.4,
		StoneAbove:       0.3,
		ForestMoisture:   0.5,
		ForestAbove:      0,
		HerbChance:       0.03,
		TreeChance:       0.08,
		RockChance:       0.15,
		BushChance:       0.02,
		SpawnClearRadius: 2,
	}
}

// World is the generated terrain together with its live resources.
type World struct {
	Seed      int64
	Terrain   *Terrain
	Resources *ResourceList
}

type noiseSample struct {
	height   float64
	moisture float64
}

// Generate builds the world for seed. The same seed and params always yield
// the same world; the order of RNG draws below defines that mapping.
func Generate(seed int64, p GenParams) *World {
	r := rng.New(seed)
	size := p.Size
	t := newTerrain(size, p.TileSize)
	res := NewResourceList()

	noise := make([]noiseSample, size*size)
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			nx := float64(x)/float64(size) - 0.5
			nz := float64(z)/float64(size) - 0.5
			dist := math.Sqrt(nx*nx+nz*nz) * 2

			var h float64
			for _, w := range p.HeightWeights {
				h += r.Next() * w
			}
			h -= dist * p.HeightFalloff

			var m float64
			for _, w := range p.MoistureWeights {
				m += r.Next() * w
			}
			m -= dist * p.MoistureFalloff

			noise[z*size+x] = noiseSample{height: h, moisture: m}
		}
	}

	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			n := noise[z*size+x]
			cell := classify(n, p)
			t.set(x, z, cell)
			if kind, ok := rollResource(cell.Kind, r, p); ok {
				res.Add(x, z, kind)
			}
		}
	}

	clearSpawn(t, p.SpawnClearRadius)

	return &World{Seed: seed, Terrain: t, Resources: res}
}

func classify(n noiseSample, p GenParams) Cell {
	switch {
	case n.height < p.WaterBelow:
		return Cell{Kind: Water, Height: 0.2}
	case n.height < p.SandBelow && n.moisture > p.SandMoisture:
		return Cell{Kind: Sand, Height: 0.25}
	case n.height > p.StoneAbove:
		return Cell{Kind: Stone, Height: 0.4 + n.height*0.5}
	case n.moisture > p.ForestMoisture && n.height > p.ForestAbove:
		return Cell{Kind: Forest, Height: 0.35 + n.height*0.3}
	default:
		return Cell{Kind: Grass, Height: 0.3 + n.height*0.4}
	}
}

// rollResource draws only for the checks the tile qualifies for and stops at
// the first success.
func rollResource(kind TileKind, r *rng.LCG, p GenParams) (ResourceKind, bool) {
	if kind == Grass && r.Next() < p.HerbChance {
		return Herb, true
	}
	if (kind == Forest || kind == Grass) && r.Next() < p.TreeChance {
		return Tree, true
	}
	if kind == Stone && r.Next() < p.RockChance {
		return Rock, true
	}
	if kind == Grass && r.Next() < p.BushChance {
		return Bush, true
	}
	return 0, false
}

// clearSpawn turns water near the spawn cell into grass. Heights are left as
// generated.
func clearSpawn(t *Terrain, radius int) {
	sx, sz := SpawnCell(t.size)
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			c, ok := t.Cell(sx+dx, sz+dz)
			if ok && c.Kind == Water {
				c.Kind = Grass
				t.set(sx+dx, sz+dz, c)
			}
		}
	}
}

// SpawnCell returns the grid cell the player starts on.
func SpawnCell(size int) (int, int) {
	return size / 2, size / 2
}

// SpawnPoint returns the world-space centre of the spawn cell.
func (w *World) SpawnPoint() (float64, float64) {
	sx, sz := SpawnCell(w.Terrain.size)
	ts := w.Terrain.tileSize
	return (float64(sx) + 0.5) * ts, (float64(sz) + 0.5) * ts
}
