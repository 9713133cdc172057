package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wanderer/internal/transport/ws"
)

var (
	flagBridgeAddr string
	flagNoRecord   bool
	flagMaxSess    int
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Stream snapshots to renderers over WebSocket",
	Long: `Start the WebSocket bridge for external renderers.

Clients connect to /ws and send HELLO; the server answers with WELCOME
(world parameters, terrain and resources) and then streams one SNAPSHOT
per tick. Clients drive the player with INTENT messages. Every
connection gets its own world. /healthz answers liveness checks and
/sessions lists who is connected.

Examples:
  wanderer bridge                    # Listen on :8080
  wanderer bridge --addr :9000 --fps 30
  wanderer bridge --no-record        # Do not write runs to the database
  wanderer bridge --max-sessions 16  # Refuse connections beyond 16`,
	Run: runBridge,
}

func init() {
	bridgeCmd.Flags().StringVar(&flagBridgeAddr, "addr", ":8080", "HTTP listen address (host:port)")
	bridgeCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record runs")
	bridgeCmd.Flags().IntVar(&flagMaxSess, "max-sessions", 0, "Concurrent session limit (0 = unlimited)")
}

func runBridge(cmd *cobra.Command, _ []string) {
	logger := newLogger("wanderer-ws")
	cfg, preset, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	opts := ws.Options{
		Game:        cfg,
		Difficulty:  string(preset),
		Logger:      logger,
		MaxSessions: flagMaxSess,
	}
	if !flagNoRecord {
		if store := openStore(); store != nil {
			defer store.Close()
			opts.Store = store
		}
	}

	server, err := ws.NewServer(opts)
	if err != nil {
		fail("creating bridge: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.ListenAndServe(ctx, flagBridgeAddr); err != nil {
		fail("bridge: %v", err)
	}
}
