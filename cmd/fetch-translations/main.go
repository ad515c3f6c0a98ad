package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"weblatedl/internal/app"
	"weblatedl/internal/config"
	"weblatedl/internal/errors/logging"
	"weblatedl/internal/logger"

	"golang.org/x/term"
)

func main() {
	cfg, err := config.Default()
	if err != nil {
		logger.NewColoredLogger().Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	log := app.NewLogger(cfg, os.Stderr)

	opts := app.Options{Status: os.Stdout}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		opts.Progress = os.Stderr
	}

	application, err := app.New(cfg, log, opts)
	if err != nil {
		logging.Error(context.Background(), log, "Failed to initialise", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx, app.OutputDir(os.Args[1:])); err != nil {
		logging.Error(ctx, log, "Fetching translations failed", err)
		stop()
		os.Exit(1)
	}
}
