package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/httpserver"
	"github.com/vovakirdan/wordsearch/internal/storage"
)

const defaultPort = "3001"

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve puzzles and the leaderboard as JSON.

Environment (a .env file in the working directory is loaded first):
  PORT           - Port to listen on when --addr is not set (default 3001)
  CLIENT_ORIGIN  - Allowed CORS origin (default *)
  LOG_LEVEL      - Log level when --log-level is not set

Endpoints:
  GET  /health
  GET  /api/generate?level=N
  GET  /api/levels
  POST /api/leaderboard
  GET  /api/leaderboard?level=&limit=
  GET  /api/leaderboard/top?limit=
  GET  /api/leaderboard/stats?level=
  GET  /api/leaderboard/player/{name}

Examples:
  wordsearch serve
  wordsearch serve --addr 127.0.0.1:8080
  PORT=9000 wordsearch serve --db ./scores.db`,
	Args: cobra.NoArgs,
	// .env must be loaded before LOG_LEVEL is read.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return err
		}
		return setupLogging(cmd, args)
	},
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default :$PORT)")
}

func runServe(_ *cobra.Command, _ []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	addr := flagAddr
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = defaultPort
		}
		addr = ":" + port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(gen, store, logger.WithPrefix("wordsearch-http"))
	return srv.ListenAndServe(ctx, addr)
}
