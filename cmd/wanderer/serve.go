package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wanderer/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host journeys over SSH",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the title menu and its own
world. Runs are recorded under the SSH user name in a shared history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wanderer/host_key

Examples:
  wanderer serve                           # Listen on :23234 with auto-generated key
  wanderer serve --ssh :2222               # Listen on port 2222
  wanderer serve --host-key ./my_host_key  # Use specific host key
  wanderer serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := newLogger("wanderer-ssh")
	game, preset, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        game,
		Difficulty:  string(preset),
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", cfg.Address)
	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
