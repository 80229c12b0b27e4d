// Command mmcp runs the Mattermost MCP server.
//
// The server connects to the Mattermost instance configured through
// environment variables (see internal/config) and exposes its teams,
// channels, posts and reactions as MCP tools, either on stdio or as a
// Streamable HTTP endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mmkit/mmcp"
	"github.com/mmkit/mmcp/internal/config"
	"github.com/mmkit/mmcp/internal/mcp"
)

const defListenAddr = "127.0.0.1:3002"

var (
	transport = flag.String("transport", string(mcp.TransportStdio), "transport to serve on: `stdio or http`")
	listen    = flag.String("listen", defListenAddr, "listen `address` for the http transport")
	envFile   = flag.String("env", "", "load environment from `file` (optional)")
	verbose   = flag.Bool("v", false, "verbose (debug) logging")
)

func main() {
	flag.Parse()

	lvl := slog.LevelInfo
	if *verbose {
		lvl = slog.LevelDebug
	}
	lg := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(lg)

	if err := run(lg); err != nil {
		lg.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(lg *slog.Logger) error {
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	} else {
		// Optional .env in the working directory.
		_ = godotenv.Load()
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := mmcp.New(cfg, mmcp.WithLogger(lg))
	if err != nil {
		return err
	}
	if err := client.Init(ctx); err != nil {
		return fmt.Errorf("initialise workspace: %w", err)
	}
	lg.InfoContext(ctx, "connected to mattermost", "url", cfg.URL, "teams", len(client.TeamIDs()))

	srv := mcp.New(client, mcp.WithLogger(lg), mcp.WithAuthTokens(cfg.AuthTokens))
	switch mcp.Transport(*transport) {
	case mcp.TransportStdio:
		return srv.ServeStdio(ctx)
	case mcp.TransportHTTP:
		return srv.ServeHTTP(ctx, *listen)
	default:
		return errors.New("unknown transport: " + *transport)
	}
}
