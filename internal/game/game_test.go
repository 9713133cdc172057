package game

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/survival"
	"github.com/vovakirdan/wanderer/internal/world"
)

// smallWorld is a 5x5 grass world (tile size 4, height 0.5) with the
// player spawning at the centre of cell (2,2), world position (10, 10).
func smallWorld(t *testing.T) *world.World {
	t.Helper()
	cells := make([]world.Cell, 25)
	for i := range cells {
		cells[i] = world.Cell{Kind: world.Grass, Height: 0.5}
	}
	terrain, err := world.FromCells(5, 4, cells)
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	return &world.World{Terrain: terrain, Resources: world.NewResourceList()}
}

func TestNewGameSpawn(t *testing.T) {
	g := New(DefaultSettings())
	s := g.Snapshot()

	if s.Player.X != 122 || s.Player.Z != 122 {
		t.Errorf("spawn = (%v, %v), expected (122, 122)", s.Player.X, s.Player.Z)
	}
	if s.Clock.Day != 1 || s.Clock.Hours != 6 {
		t.Errorf("clock = %+v, expected day 1 06:00", s.Clock)
	}
	if len(s.Resources) != 378 {
		t.Errorf("resources = %d, expected 378", len(s.Resources))
	}
	if s.Camera.Height != 5 {
		t.Errorf("camera height = %v, expected 5", s.Camera.Height)
	}
	if s.Tick != 0 || s.GameOver {
		t.Errorf("tick=%d gameOver=%v", s.Tick, s.GameOver)
	}
}

func TestAdvanceDeterministic(t *testing.T) {
	script := []Intent{
		{Held: core.MoveForward},
		{Held: core.MoveForward.With(core.MoveLeft), YawDelta: 0.5},
		{Harvest: true},
		{Held: core.MoveBack, PitchDelta: -2},
		{Eat: true, CraftCampfire: true},
		{Held: core.MoveRight, YawDelta: -1},
	}

	run := func() Snapshot {
		g := New(DefaultSettings())
		var s Snapshot
		for i := 0; i < 600; i++ {
			s = g.Advance(16, script[i%len(script)])
		}
		return s
	}

	a, b := run(), run()
	if a.Player.X != b.Player.X || a.Player.Z != b.Player.Z || a.Player.Facing != b.Player.Facing {
		t.Errorf("player differs: (%v,%v) vs (%v,%v)", a.Player.X, a.Player.Z, b.Player.X, b.Player.Z)
	}
	if a.Player.Hunger != b.Player.Hunger || a.Player.Inventory != b.Player.Inventory {
		t.Error("player stats differ")
	}
	if len(a.Resources) != len(b.Resources) || a.Clock != b.Clock || a.Camera != b.Camera {
		t.Error("world, clock or camera differ")
	}
	if a.Tick != 600 {
		t.Errorf("tick = %d, expected 600", a.Tick)
	}
}

func TestHarvestRunsBeforeCraft(t *testing.T) {
	w := smallWorld(t)
	w.Resources.Add(2, 2, world.Tree)
	g := NewWithWorld(DefaultSettings(), w)
	g.player.Inventory = survival.Inventory{Wood: 3, Stone: 2}

	s := g.Advance(16, Intent{Harvest: true, CraftAxe: true})

	h, ok := s.Outcome(ActionHarvest)
	if !ok || !errors.Is(h.Err, survival.ErrNeedsAxe) {
		t.Fatalf("harvest outcome = %+v, expected ErrNeedsAxe", h)
	}
	c, ok := s.Outcome(ActionCraftAxe)
	if !ok || !c.OK() {
		t.Fatalf("craft outcome = %+v, expected success", c)
	}
	if !s.Player.HasAxe || len(s.Resources) != 1 {
		t.Fatalf("hasAxe=%v resources=%d", s.Player.HasAxe, len(s.Resources))
	}

	s = g.Advance(16, Intent{Harvest: true})
	if h, _ := s.Outcome(ActionHarvest); !h.OK() || h.Resource.Kind != world.Tree {
		t.Errorf("second harvest = %+v", h)
	}
	if s.Player.Inventory.Wood != 2 || len(s.Resources) != 0 {
		t.Errorf("wood=%d resources=%d", s.Player.Inventory.Wood, len(s.Resources))
	}
	if s.Stats.Harvested[world.Tree] != 1 || s.Stats.Crafted[survival.RecipeAxe] != 1 {
		t.Errorf("stats = %+v", s.Stats)
	}
}

func TestHarvestUsesPostMovePosition(t *testing.T) {
	w := smallWorld(t)
	// Herb centre (18, 10): 8 units east of spawn, out of reach until the
	// player moves.
	w.Resources.Add(4, 2, world.Herb)
	g := NewWithWorld(DefaultSettings(), w)

	s := g.Advance(16, Intent{Harvest: true})
	if h, _ := s.Outcome(ActionHarvest); !errors.Is(h.Err, survival.ErrNoResource) {
		t.Fatalf("harvest before moving = %+v, expected ErrNoResource", h)
	}

	// Yaw 0: Right is +x. One 16 ms step moves 2.5 units.
	s = g.Advance(16, Intent{Held: core.MoveRight, Harvest: true})
	if h, _ := s.Outcome(ActionHarvest); !h.OK() {
		t.Fatalf("harvest after moving = %+v", h)
	}
	if s.Player.Inventory.Herb != 1 {
		t.Errorf("herb = %d", s.Player.Inventory.Herb)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	g := NewWithWorld(DefaultSettings(), smallWorld(t))

	s := g.Advance(16, Intent{PitchDelta: -1000})
	if s.Camera.Height != 8 {
		t.Errorf("height = %v, expected clamp at 8", s.Camera.Height)
	}
	s = g.Advance(16, Intent{PitchDelta: 1000})
	if s.Camera.Height != 3 {
		t.Errorf("height = %v, expected clamp at 3", s.Camera.Height)
	}
}

func TestCameraFollow(t *testing.T) {
	g := NewWithWorld(DefaultSettings(), smallWorld(t))

	// Yaw ends at -(-10 * 0.08) = 0.8.
	s := g.Advance(16, Intent{YawDelta: -10})
	if math.Abs(s.Camera.Yaw-0.8) > 1e-12 {
		t.Fatalf("yaw = %v, expected 0.8", s.Camera.Yaw)
	}

	ground := 0.5 * 4.0
	want := [3]float64{10 + math.Sin(0.8)*12, ground + 5, 10 + math.Cos(0.8)*12}
	for i := range want {
		if math.Abs(s.Camera.Position[i]-want[i]) > 1e-9 {
			t.Errorf("position[%d] = %v, expected %v", i, s.Camera.Position[i], want[i])
		}
	}
	if s.Camera.LookAt[0] != 10 || s.Camera.LookAt[1] != ground+1.5 || s.Camera.LookAt[2] != 10 {
		t.Errorf("look-at = %v", s.Camera.LookAt)
	}
	if s.Ground != ground {
		t.Errorf("ground = %v, expected %v", s.Ground, ground)
	}
}

func TestMovementFollowsYaw(t *testing.T) {
	g := NewWithWorld(DefaultSettings(), smallWorld(t))

	// Turn the camera by -π/2 so Forward points toward +x.
	yawDelta := (math.Pi / 2) / 0.08
	s := g.Advance(16, Intent{Held: core.MoveForward, YawDelta: yawDelta})
	if !s.Moved {
		t.Fatal("expected movement")
	}
	if math.Abs(s.Player.X-12.5) > 1e-9 || math.Abs(s.Player.Z-10) > 1e-9 {
		t.Errorf("player = (%v, %v), expected (12.5, 10)", s.Player.X, s.Player.Z)
	}
}

func TestDayRolloverThroughFacade(t *testing.T) {
	s := DefaultSettings()
	s.StartHour = 23.5
	g := NewWithWorld(s, smallWorld(t))
	g.player.SetHunger(100)

	snap := g.Advance(60000, Intent{})
	if snap.Clock.Day != 2 || math.Abs(snap.Clock.Hours-0.5) > 1e-9 {
		t.Errorf("clock = %+v, expected day 2 00:30", snap.Clock)
	}
	if snap.Time.String() != "Day 2 - 00:30" {
		t.Errorf("display = %q", snap.Time.String())
	}
	if !snap.Lighting.Night {
		t.Error("00:30 should be night")
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g := NewWithWorld(DefaultSettings(), smallWorld(t))
	g.player.SetHunger(0)
	g.player.SetHealth(5)

	s := g.Advance(2000, Intent{})
	if !s.GameOver || s.Player.Health != 0 {
		t.Fatalf("gameOver=%v health=%v", s.GameOver, s.Player.Health)
	}
	if !s.Decay.Starved || s.Decay.HungerDrained {
		t.Errorf("decay = %+v, expected starvation only", s.Decay)
	}

	clock := s.Clock
	x, z := s.Player.X, s.Player.Z
	s = g.Advance(5000, Intent{Held: core.MoveForward, Eat: true})
	if s.Clock != clock || s.Player.X != x || s.Player.Z != z {
		t.Error("state advanced after game over")
	}
	if len(s.Outcomes) != 0 {
		t.Errorf("outcomes after game over: %+v", s.Outcomes)
	}
	if s.Decay.Starved {
		t.Error("decay reported after game over")
	}
	if s.Tick != 2 || !g.GameOver() {
		t.Errorf("tick=%d gameOver=%v", s.Tick, g.GameOver())
	}
}

func TestSnapshotIsolation(t *testing.T) {
	w := smallWorld(t)
	w.Resources.Add(2, 2, world.Herb)
	g := NewWithWorld(DefaultSettings(), w)

	s := g.Snapshot()
	s.Resources[0].Kind = world.Rock
	s.Player.Inventory.Wood = 99
	s.Stats.Harvested[world.Herb] = 7

	again := g.Snapshot()
	if again.Resources[0].Kind != world.Herb {
		t.Error("snapshot resources alias game state")
	}
	if again.Player.Inventory.Wood != 0 {
		t.Error("snapshot player aliases game state")
	}
	if again.Stats.Harvested[world.Herb] != 0 {
		t.Error("snapshot stats alias game state")
	}
}

func TestHoverResource(t *testing.T) {
	w := smallWorld(t)
	w.Resources.Add(3, 2, world.Rock)
	g := NewWithWorld(DefaultSettings(), w)

	s := g.Snapshot()
	if !s.HasHover || s.Hover.Kind != world.Rock {
		t.Fatalf("hover = %+v, %v", s.Hover, s.HasHover)
	}
	if !s.HoverNeedsAxe() {
		t.Error("rock without axe should need an axe")
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	g := NewWithWorld(DefaultSettings(), smallWorld(t))
	before := g.Snapshot().Clock
	s := g.Advance(-500, Intent{Held: core.MoveForward})
	if s.Clock != before {
		t.Errorf("clock moved backwards: %+v", s.Clock)
	}
	if s.Moved {
		t.Error("player moved with negative delta")
	}
}

func TestIntentFromFrame(t *testing.T) {
	f := core.NewInputFrame()
	f.Set(core.ActionForward)
	f.Set(core.ActionRight)
	f.Set(core.ActionHarvest)
	f.Set(core.ActionLookLeft)
	f.Set(core.ActionLookDown)

	in := IntentFromFrame(f)
	if !in.Held.Has(core.MoveForward) || !in.Held.Has(core.MoveRight) || in.Held.Has(core.MoveBack) {
		t.Errorf("held = %v", in.Held)
	}
	if !in.Harvest || in.Eat || in.CraftAxe || in.CraftCampfire {
		t.Errorf("actions = %+v", in)
	}
	if in.YawDelta != -1 || in.PitchDelta != 1 {
		t.Errorf("deltas = %v, %v", in.YawDelta, in.PitchDelta)
	}
	if !(Intent{}).Empty() || in.Empty() {
		t.Error("Empty mismatch")
	}
}

func TestZeroDeltaKeepsFacing(t *testing.T) {
	g := NewWithWorld(DefaultSettings(), smallWorld(t))
	before := g.Snapshot().Player

	s := g.Advance(0, Intent{Held: core.MoveRight})
	if s.Player.X != before.X || s.Player.Z != before.Z {
		t.Errorf("moved to (%v, %v) with no elapsed time", s.Player.X, s.Player.Z)
	}
	if s.Player.Facing != before.Facing || s.Moved {
		t.Errorf("facing %v -> %v, moved=%v", before.Facing, s.Player.Facing, s.Moved)
	}

	s = g.Advance(16, Intent{Held: core.MoveRight})
	if math.Abs(s.Player.Facing+math.Pi/2) > 1e-9 {
		t.Errorf("facing = %v after moving right, expected -π/2", s.Player.Facing)
	}
}
