// Package game is the facade over the simulation: it owns the world, the
// player, the clock and the camera, and advances them one tick at a time in
// a fixed order. A Game has a single mutator; hosts call Advance from one
// goroutine and hand the returned Snapshot to their presentation layer.
package game

import (
	"math"

	"github.com/vovakirdan/wanderer/internal/daynight"
	"github.com/vovakirdan/wanderer/internal/survival"
	"github.com/vovakirdan/wanderer/internal/world"
)

// Stats accumulates run statistics for the history board.
type Stats struct {
	Harvested map[world.ResourceKind]int
	Crafted   map[survival.Recipe]int
	ElapsedMs float64
	Distance  float64
}

// ItemsGathered returns the number of resources harvested.
func (s Stats) ItemsGathered() int {
	n := 0
	for _, c := range s.Harvested {
		n += c
	}
	return n
}

// CraftedTotal returns the number of successful crafts, eating included.
func (s Stats) CraftedTotal() int {
	n := 0
	for _, c := range s.Crafted {
		n += c
	}
	return n
}

// Game is the whole simulation state. There are no package-level globals;
// independent games never share state.
type Game struct {
	settings Settings
	world    *world.World
	player   *survival.Player
	clock    daynight.Clock
	camera   Camera
	lighting daynight.Lighting

	tick     uint64
	gameOver bool
	stats    Stats
	outcomes []Outcome
	moved    bool
	decay    survival.DecayEvents
}

// New generates the world for s.Seed and places the player at the spawn.
func New(s Settings) *Game {
	return NewWithWorld(s, world.Generate(s.Seed, s.Gen))
}

// NewWithWorld starts a game on an existing world.
func NewWithWorld(s Settings, w *world.World) *Game {
	px, pz := w.SpawnPoint()
	g := &Game{
		settings: s,
		world:    w,
		player:   survival.NewPlayer(px, pz, s.Rules),
		clock:    daynight.NewClock(s.StartHour),
		camera:   Camera{Height: s.Camera.StartHeight},
		stats: Stats{
			Harvested: make(map[world.ResourceKind]int),
			Crafted:   make(map[survival.Recipe]int),
		},
	}
	g.lighting = g.clock.Lighting()
	g.camera.follow(px, pz, w.Terrain.HeightAt(px, pz), s.Camera)
	return g
}

// Advance runs one tick of dtMillis with the given intent and returns the
// resulting snapshot. Steps run in a fixed order: camera input, movement,
// harvest, eat and craft, decay, clock, lighting, camera follow. Once the
// player has died only the tick counter advances.
func (g *Game) Advance(dtMillis float64, in Intent) Snapshot {
	g.tick++
	g.outcomes = g.outcomes[:0]
	g.moved = false
	g.decay = survival.DecayEvents{}
	if g.gameOver {
		return g.Snapshot()
	}
	if dtMillis < 0 {
		dtMillis = 0
	}

	s := g.settings
	p := g.player

	g.camera.applyInput(in.YawDelta, in.PitchDelta, s.Camera)

	x0, z0 := p.X, p.Z
	if survival.Move(p, g.world.Terrain, in.Held, g.camera.Yaw, dtMillis, s.Rules) {
		g.moved = p.X != x0 || p.Z != z0
		g.stats.Distance += math.Hypot(p.X-x0, p.Z-z0)
	}

	if in.Harvest {
		res, err := survival.Harvest(p, g.world, s.Rules)
		if err == nil {
			g.stats.Harvested[res.Kind]++
		}
		g.outcomes = append(g.outcomes, Outcome{Action: ActionHarvest, Resource: res, Err: err})
	}
	if in.Eat {
		g.craft(ActionEat, survival.RecipeEat)
	}
	if in.CraftCampfire {
		g.craft(ActionCraftCampfire, survival.RecipeCampfire)
	}
	if in.CraftAxe {
		g.craft(ActionCraftAxe, survival.RecipeAxe)
	}

	g.decay = survival.Decay(p, dtMillis, s.Rules)
	g.clock.Advance(dtMillis, s.HoursPerMinute)
	g.lighting = g.clock.Lighting()

	ground := g.world.Terrain.HeightAt(p.X, p.Z)
	g.camera.follow(p.X, p.Z, ground, s.Camera)

	g.stats.ElapsedMs += dtMillis
	if p.Dead() {
		g.gameOver = true
	}
	return g.snapshot(ground)
}

func (g *Game) craft(action ActionKind, rc survival.Recipe) {
	err := survival.Craft(g.player, rc, g.settings.Rules)
	if err == nil {
		g.stats.Crafted[rc]++
	}
	g.outcomes = append(g.outcomes, Outcome{Action: action, Err: err})
}

// GameOver reports whether the player has died.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Tick returns the number of Advance calls so far.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Settings returns the constants the game was created with.
func (g *Game) Settings() Settings {
	return g.settings
}

// Terrain returns the read-only terrain view.
func (g *Game) Terrain() *world.Terrain {
	return g.world.Terrain
}

// Seed returns the world seed.
func (g *Game) Seed() int64 {
	return g.world.Seed
}

// Stats returns a copy of the run statistics.
func (g *Game) Stats() Stats {
	return g.stats.clone()
}

func (s Stats) clone() Stats {
	c := s
	c.Harvested = make(map[world.ResourceKind]int, len(s.Harvested))
	for k, v := range s.Harvested {
		c.Harvested[k] = v
	}
	c.Crafted = make(map[survival.Recipe]int, len(s.Crafted))
	for k, v := range s.Crafted {
		c.Crafted[k] = v
	}
	return c
}
