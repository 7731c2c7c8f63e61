package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Start the SSH game server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the level menu. The SSH user
name is the player name; all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordsearch/host_key

Examples:
  wordsearch ssh                           # Listen on :23234 with auto-generated key
  wordsearch ssh --ssh :2222               # Listen on port 2222
  wordsearch ssh --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runSSH,
}

func init() {
	sshCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	sshCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	sshCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runSSH(_ *cobra.Command, _ []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	store := openStoreOptional()
	var results tui.ResultStore
	if store != nil {
		defer store.Close()
		results = store
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	server, err := tui.NewSSHServer(cfg, gen, results, logger.WithPrefix("wordsearch-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Starting wordsearch SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
