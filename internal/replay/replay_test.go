package replay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/wanderer/internal/config"
	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/survival"
	"github.com/vovakirdan/wanderer/internal/world"
)

const walkScript = `
seed: 99
difficulty: hard
dt: 20
steps:
  - repeat: 30
    held: [forward]
  - actions: [harvest, craft_axe]
  - {repeat: 5, yaw: 1, dt: 50}
`

// herbGame is a 5x5 grass world with a herb under the spawn.
func herbGame(t *testing.T, s game.Settings) *game.Game {
	t.Helper()
	cells := make([]world.Cell, 25)
	for i := range cells {
		cells[i] = world.Cell{Kind: world.Grass, Height: 0.5}
	}
	terrain, err := world.FromCells(5, 4, cells)
	if err != nil {
		t.Fatal(err)
	}
	res := world.NewResourceList()
	res.Add(2, 2, world.Herb)
	return game.NewWithWorld(s, &world.World{Terrain: terrain, Resources: res})
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(walkScript))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Seed == nil || *s.Seed != 99 || s.Difficulty != "hard" || s.Dt != 20 {
		t.Errorf("script = %+v", s)
	}
	if len(s.Steps) != 3 {
		t.Fatalf("steps = %d", len(s.Steps))
	}
	if s.Steps[1].Ticks() != 1 || s.Steps[2].Ticks() != 5 || s.Steps[2].Dt != 50 {
		t.Errorf("steps = %+v", s.Steps)
	}

	in, err := s.Steps[0].Intent()
	if err != nil || in.Held != core.MoveForward {
		t.Errorf("intent = %+v, err = %v", in, err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not yaml", "steps: [\n"},
		{"no steps", "dt: 16\n"},
		{"negative dt", "dt: -1\nsteps: [{held: [forward]}]\n"},
		{"negative repeat", "steps: [{repeat: -2}]\n"},
		{"negative step dt", "steps: [{dt: -5}]\n"},
		{"unknown key", "steps: [{held: [jump]}]\n"},
		{"unknown action", "steps: [{actions: [dance]}]\n"},
		{"unknown difficulty", "difficulty: brutal\nsteps: [{}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigure(t *testing.T) {
	s, err := Parse([]byte(walkScript))
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	if err := s.Configure(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.World.Seed != 99 {
		t.Errorf("seed = %d", cfg.World.Seed)
	}
	hard := config.Default()
	config.ApplyPreset(&hard, config.DifficultyHard)
	if cfg.Survival != hard.Survival {
		t.Errorf("survival = %+v, expected hard preset", cfg.Survival)
	}
}

func TestRunWalksAndRecordsOutcomes(t *testing.T) {
	s, err := Parse([]byte(walkScript))
	if err != nil {
		t.Fatal(err)
	}
	g := game.New(game.DefaultSettings())
	startX, startZ := g.Snapshot().Player.X, g.Snapshot().Player.Z

	observed := 0
	res, err := Run(g, s, func(game.Snapshot) { observed++ })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Ticks != 36 || observed != 36 {
		t.Errorf("ticks = %d, observed = %d, expected 36", res.Ticks, observed)
	}
	if res.GameOver {
		t.Error("unexpected game over")
	}
	if res.Final.Player.Z >= startZ || res.Final.Player.X != startX {
		t.Errorf("player at (%v, %v), expected north of (%v, %v)",
			res.Final.Player.X, res.Final.Player.Z, startX, startZ)
	}
	if len(res.Outcomes) != 2 {
		t.Fatalf("outcomes = %+v", res.Outcomes)
	}
	if o := res.Outcomes[1]; o.Action != game.ActionCraftAxe || !errors.Is(o.Err, survival.ErrInsufficient) {
		t.Errorf("craft outcome = %+v", o)
	}
	wantMs := 30*20.0 + 20 + 5*50
	if res.Final.Stats.ElapsedMs != wantMs {
		t.Errorf("elapsed = %v, expected %v", res.Final.Stats.ElapsedMs, wantMs)
	}
	if res.Final.Camera.Yaw == 0 {
		t.Error("yaw steps did not turn the camera")
	}
}

func TestRunHarvest(t *testing.T) {
	s := Script{Steps: []Step{{Actions: []string{"harvest"}, Repeat: 2}}}
	res, err := Run(herbGame(t, game.DefaultSettings()), s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Final.Player.Inventory.Herb != 1 {
		t.Errorf("herb = %d, expected 1", res.Final.Player.Inventory.Herb)
	}
	if len(res.Outcomes) != 2 || !res.Outcomes[0].OK() || !errors.Is(res.Outcomes[1].Err, survival.ErrNoResource) {
		t.Errorf("outcomes = %+v", res.Outcomes)
	}
	if res.Final.Stats.ElapsedMs != 2*DefaultDt {
		t.Errorf("elapsed = %v", res.Final.Stats.ElapsedMs)
	}
}

func TestRunStopsAtGameOver(t *testing.T) {
	settings := game.DefaultSettings()
	settings.Rules.MaxHunger = 1
	settings.Rules.HungerInterval = 0.01
	settings.Rules.HungerDrain = 1
	settings.Rules.StarveInterval = 0.01
	settings.Rules.StarveDamage = 1000

	s := Script{Steps: []Step{{Repeat: 100}}}
	res, err := Run(herbGame(t, settings), s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.GameOver || res.Ticks != 1 {
		t.Errorf("game over = %v after %d ticks", res.GameOver, res.Ticks)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	if err := os.WriteFile(path, []byte(walkScript), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
