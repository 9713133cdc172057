// wanderer is a single-player survival sandbox on a seeded procedural
// island, playable in the terminal, over SSH, or from a remote renderer
// through the WebSocket bridge.
//
// Usage:
//
//	wanderer play            - Start a journey from the title menu
//	wanderer serve           - Host journeys over SSH
//	wanderer bridge          - Stream snapshots to renderers over WebSocket
//	wanderer gen             - Inspect, export or load a generated world
//	wanderer sim <script>    - Run a scripted journey headlessly
//	wanderer runs            - List past journeys
//	wanderer config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - World seed (0 = random based on time)
//	--fps <rate>          - Tick rate (default: from config, 60)
//	--config <path>       - Custom configuration YAML
//	--db <path>           - Run history database (default: ~/.wanderer/runs.db)
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wanderer/internal/config"
	"github.com/vovakirdan/wanderer/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagFPS        int
	flagConfig     string
	flagDBPath     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wanderer",
	Short: "Wanderer - survive on a procedural island",
	Long: `Wanderer is a survival sandbox on a seeded procedural island.
Gather herbs, wood, stone and food, craft an axe and campfires, and
keep from starving through the day/night cycle.

Available commands:
  play     - Start a journey from the title menu
  serve    - Host journeys over SSH
  bridge   - Stream snapshots to renderers over WebSocket
  gen      - Inspect, export or load a generated world
  sim      - Run a scripted journey headlessly
  runs     - List past journeys
  config   - Print the effective configuration

Examples:
  wanderer play
  wanderer play --seed 12345 --difficulty hard
  wanderer serve --ssh :2222
  wanderer bridge --addr :8080
  wanderer gen --seed 42 --export island.wwz
  wanderer sim walk.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time; default from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wanderer/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bridgeCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies the global flags on top.
// An explicit --seed 0 asks for a time-based seed.
func loadConfig(cmd *cobra.Command) (config.Config, config.DifficultyPreset, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	log.Debug("configuration loaded", "source", src)

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPreset(&cfg, preset)

	if cmd.Flags().Changed("seed") {
		cfg.World.Seed = flagSeed
	}
	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, preset, nil
}

// newLogger configures the default logger from --log-level and returns it.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	log.SetDefault(logger)
	return logger
}

// openStore opens the run database. Failures are logged and play continues
// without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func currentPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
