package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wanderer/internal/platform/tui"
	"github.com/vovakirdan/wanderer/internal/render"
	"github.com/vovakirdan/wanderer/internal/world"
	"github.com/vovakirdan/wanderer/internal/worldfile"
)

var (
	flagExport  string
	flagInspect string
	flagNoMap   bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Inspect, export or load a generated world",
	Long: `Generate the world for a seed and print its tile and resource
statistics followed by a coloured map.

With --export the world is also written to a compressed .wwz file.
With --inspect an exported file is read back instead of generating.

Examples:
  wanderer gen --seed 12345
  wanderer gen --seed 42 --export island.wwz
  wanderer gen --inspect island.wwz --no-map`,
	Run: runGen,
}

func init() {
	genCmd.Flags().StringVar(&flagExport, "export", "", "Write the world to a .wwz file")
	genCmd.Flags().StringVar(&flagInspect, "inspect", "", "Read a .wwz file instead of generating")
	genCmd.Flags().BoolVar(&flagNoMap, "no-map", false, "Only print statistics")
}

func runGen(cmd *cobra.Command, _ []string) {
	newLogger("wanderer")

	var w *world.World
	if flagInspect != "" {
		loaded, h, err := worldfile.Load(flagInspect)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("File:     %s (%s v%d)\n", flagInspect, h.Format, h.Version)
		w = loaded
	} else {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			fail("%v", err)
		}
		seed := cfg.World.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		w = world.Generate(seed, cfg.GenParams())
	}

	printWorldStats(w)

	if flagExport != "" {
		if err := worldfile.Save(flagExport, w); err != nil {
			fail("%v", err)
		}
		fmt.Printf("\nExported to %s\n", flagExport)
	}

	if !flagNoMap {
		fmt.Println()
		fmt.Println(tui.RenderScreen(render.WorldMap(w)))
	}
}

func printWorldStats(w *world.World) {
	t := w.Terrain
	cells := t.Size() * t.Size()
	sx, sz := w.SpawnPoint()

	fmt.Printf("Seed:     %d\n", w.Seed)
	fmt.Printf("Size:     %dx%d cells, %.0f units per cell\n", t.Size(), t.Size(), t.TileSize())
	fmt.Printf("Spawn:    (%.0f, %.0f)\n", sx, sz)
	fmt.Println()

	tiles := t.CountByKind()
	fmt.Printf("  %-8s  %6s  %6s\n", "Tile", "Cells", "Share")
	fmt.Printf("  %-8s  %6s  %6s\n", "----", "-----", "-----")
	for _, k := range world.TileKinds {
		fmt.Printf("  %-8s  %6d  %5.1f%%\n", render.DisplayName(k), tiles[k], 100*float64(tiles[k])/float64(cells))
	}
	fmt.Println()

	resources := w.Resources.CountByKind()
	fmt.Printf("  %-8s  %6s\n", "Resource", "Count")
	fmt.Printf("  %-8s  %6s\n", "--------", "-----")
	for _, k := range world.ResourceKinds {
		fmt.Printf("  %-8s  %6d\n", render.DisplayName(k), resources[k])
	}
	fmt.Printf("  %-8s  %6d\n", "Total", w.Resources.Len())
}
