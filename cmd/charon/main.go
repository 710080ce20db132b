package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/charon/internal/builder"
	"github.com/jask/charon/internal/client"
	"github.com/jask/charon/internal/config"
	"github.com/jask/charon/internal/logging"
	"github.com/jask/charon/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.Open(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closer.Close()

	api := client.New(cfg.API, nil, logger)
	b := builder.New(cfg.Builder, builder.ExecRunner{}, logger)
	logger.Info().Str("api", api.BaseURL()).Str("source_dir", cfg.Builder.SourceDir).Msg("starting")

	p := tea.NewProgram(tui.New(ctx, cfg.UI, api, b, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = closer.Close()
		os.Exit(1)
	}
	logger.Info().Msg("bye")
}
