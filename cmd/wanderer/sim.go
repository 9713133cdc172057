package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/protocol"
	"github.com/vovakirdan/wanderer/internal/render"
	"github.com/vovakirdan/wanderer/internal/replay"
	"github.com/vovakirdan/wanderer/internal/worldfile"
)

var (
	flagSimWorld string
	flagSimEvery int
	flagSimJSON  bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script.yaml>",
	Short: "Run a scripted journey headlessly",
	Long: `Run the simulation without a terminal UI, driven by a YAML script,
and print the final state.

Script format:
  seed: 12345          # optional, overrides --seed
  difficulty: hard     # optional, overrides --difficulty
  dt: 16               # milliseconds per tick (default 16)
  steps:
    - {repeat: 30, held: [forward]}
    - {actions: [harvest]}
    - {repeat: 10, yaw: 1, dt: 100}

Held keys: forward, back, left, right.
Actions: harvest, eat, craft_campfire, craft_axe.

Examples:
  wanderer sim walk.yaml
  wanderer sim walk.yaml --every 60
  wanderer sim walk.yaml --world island.wwz --json`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimWorld, "world", "", "Play on a world exported with 'gen --export'")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 0, "Print a status line every N ticks")
	simCmd.Flags().BoolVar(&flagSimJSON, "json", false, "Print the final state as a SNAPSHOT message")
}

func runSim(cmd *cobra.Command, args []string) {
	newLogger("wanderer")
	script, err := replay.Load(args[0])
	if err != nil {
		fail("%v", err)
	}
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if err := script.Configure(&cfg); err != nil {
		fail("%v", err)
	}

	settings := cfg.GameSettings()
	var g *game.Game
	if flagSimWorld != "" {
		w, _, err := worldfile.Load(flagSimWorld)
		if err != nil {
			fail("%v", err)
		}
		settings.Seed = w.Seed
		g = game.NewWithWorld(settings, w)
	} else {
		if settings.Seed == 0 {
			settings.Seed = time.Now().UnixNano()
		}
		g = game.New(settings)
	}

	var observe func(game.Snapshot)
	if flagSimEvery > 0 && !flagSimJSON {
		observe = func(s game.Snapshot) {
			if s.Tick%uint64(flagSimEvery) == 0 {
				printStatus(s)
			}
		}
	}

	res, err := replay.Run(g, script, observe)
	if err != nil {
		fail("%v", err)
	}

	if flagSimJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(protocol.NewSnapshot(res.Final, 0)); err != nil {
			fail("%v", err)
		}
		return
	}
	printResult(g, res)
}

func printStatus(s game.Snapshot) {
	p := s.Player
	fmt.Printf("tick %6d  %-20s  pos (%6.1f, %6.1f)  hp %5.1f  food %5.1f\n",
		s.Tick, render.TimeLabel(s.Time), p.X, p.Z, p.Health, p.Hunger)
}

func printResult(g *game.Game, res replay.Result) {
	s := res.Final
	p := s.Player

	fmt.Printf("Seed:     %d\n", g.Seed())
	fmt.Printf("Ticks:    %d (%.1fs simulated)\n", res.Ticks, s.Stats.ElapsedMs/1000)
	fmt.Printf("Reached:  %s\n", render.TimeLabel(s.Time))
	fmt.Printf("Position: (%.2f, %.2f) facing %c\n", p.X, p.Z, render.PlayerGlyph(p.Facing))
	fmt.Printf("Health:   %s %.0f/%.0f\n", render.Bar(int(p.Health), int(p.MaxHealth), 20), p.Health, p.MaxHealth)
	fmt.Printf("Hunger:   %s %.0f/%.0f\n", render.Bar(int(p.Hunger), int(p.MaxHunger), 20), p.Hunger, p.MaxHunger)
	fmt.Println()
	for _, line := range render.InventoryLines(p) {
		fmt.Println("  " + line)
	}
	fmt.Println()

	ok, failed := 0, 0
	for _, o := range res.Outcomes {
		if o.OK() {
			ok++
		} else {
			failed++
		}
	}
	fmt.Printf("Actions:  %d succeeded, %d failed\n", ok, failed)
	fmt.Printf("Gathered: %d items over %.1f units\n", s.Stats.ItemsGathered(), s.Stats.Distance)
	if res.GameOver {
		fmt.Println("Outcome:  starved")
	} else {
		fmt.Println("Outcome:  alive")
	}
}
