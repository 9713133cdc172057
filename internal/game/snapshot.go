package game

import (
	"github.com/vovakirdan/wanderer/internal/daynight"
	"github.com/vovakirdan/wanderer/internal/survival"
	"github.com/vovakirdan/wanderer/internal/world"
)

// Snapshot is the read-only state handed to presentation after a tick.
// Resources and Player are copies; Terrain is shared but never mutated.
type Snapshot struct {
	Tick      uint64
	Terrain   *world.Terrain
	Resources []world.Resource
	Player    survival.Player
	Ground    float64 // Ground height under the player
	Camera    Camera
	Lighting  daynight.Lighting
	Clock     daynight.Clock
	Time      daynight.Display
	Hover     world.Resource
	HasHover  bool
	Outcomes  []Outcome
	Moved     bool
	Decay     survival.DecayEvents // Decay steps that fired this tick
	GameOver  bool
	Stats     Stats
}

// Snapshot returns the current state without advancing.
func (g *Game) Snapshot() Snapshot {
	return g.snapshot(g.world.Terrain.HeightAt(g.player.X, g.player.Z))
}

func (g *Game) snapshot(ground float64) Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Terrain:   g.world.Terrain,
		Resources: g.world.Resources.All(),
		Player:    *g.player,
		Ground:    ground,
		Camera:    g.camera,
		Lighting:  g.lighting,
		Clock:     g.clock,
		Time:      g.clock.Display(),
		Moved:     g.moved,
		Decay:     g.decay,
		GameOver:  g.gameOver,
		Stats:     g.stats.clone(),
	}
	if len(g.outcomes) > 0 {
		s.Outcomes = make([]Outcome, len(g.outcomes))
		copy(s.Outcomes, g.outcomes)
	}
	s.Hover, s.HasHover = g.world.ResourceNear(g.player.X, g.player.Z)
	return s
}

// HoverNeedsAxe reports whether the hovered resource cannot be harvested
// yet.
func (s Snapshot) HoverNeedsAxe() bool {
	return s.HasHover && s.Hover.Kind.NeedsAxe() && !s.Player.HasAxe
}

// Outcome returns the outcome of action in this tick, if it was requested.
func (s Snapshot) Outcome(action ActionKind) (Outcome, bool) {
	for _, o := range s.Outcomes {
		if o.Action == action {
			return o, true
		}
	}
	return Outcome{}, false
}
