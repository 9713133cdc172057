package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wanderer/internal/platform/tui"
)

var (
	flagPlayer        string
	flagNoTutorial    bool
	flagResetTutorial bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a journey from the title menu",
	Long: `Open the title menu and set out on a journey.

Controls:
  W/A/S/D          - Move (relative to the camera)
  Arrows, J/L/I/K  - Turn and tilt the camera
  E                - Harvest the resource under you
  F                - Eat
  C                - Build a campfire and cook (5 wood)
  X                - Craft an axe (3 wood, 2 stone)
  P                - Pause
  ?                - Show the tutorial again
  Esc              - Back to the menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Hunger drains slowly, meals restore more
  normal - The standard journey
  hard   - Hunger drains fast, starving hurts more

Examples:
  wanderer play
  wanderer play --seed 12345
  wanderer play --difficulty hard --no-tutorial
  wanderer play --reset-tutorial     # Show the tutorial again on the next journey`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record runs under (default: current user)")
	playCmd.Flags().BoolVar(&flagNoTutorial, "no-tutorial", false, "Skip the tutorial")
	playCmd.Flags().BoolVar(&flagResetTutorial, "reset-tutorial", false, "Forget that the tutorial was completed")
}

func runPlay(cmd *cobra.Command, _ []string) {
	newLogger("wanderer")
	cfg, preset, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player := flagPlayer
	if player == "" {
		player = currentPlayer()
	}
	if flagResetTutorial && store != nil {
		if err := store.ResetTutorial(player); err != nil {
			fail("resetting tutorial: %v", err)
		}
	}
	width, height := terminalSize()

	// Menu loop
	for {
		choice, err := tui.RunMenu(width, height, "Travelling as "+player)
		if err != nil {
			fail("%v", err)
		}

		switch choice {
		case tui.ChoiceNewJourney:
			res, err := tui.RunGame(tui.Options{
				Config:       cfg,
				Difficulty:   string(preset),
				Player:       player,
				Store:        store,
				Width:        width,
				Height:       height,
				SkipTutorial: flagNoTutorial,
			})
			if err != nil {
				fail("%v", err)
			}
			if res.Quit {
				return
			}

		case tui.ChoicePastJourneys:
			goBack, err := tui.RunRuns(store, player, width, height)
			if err != nil {
				fail("%v", err)
			}
			if !goBack {
				return
			}

		default:
			return
		}

		// Refresh the size for the next screen
		width, height = terminalSize()
	}
}
