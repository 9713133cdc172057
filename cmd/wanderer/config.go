package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wanderer/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after the config file, difficulty
preset and global flags have been applied. Use --default to print the
built-in defaults as a starting point for a custom file.

Examples:
  wanderer config
  wanderer config --difficulty hard
  wanderer config --default > ~/.wanderer/config.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) {
	newLogger("wanderer")
	if flagConfigDefault {
		_, _ = os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
