// Package main is the entry point for the planet atmosphere viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/planet-atmosphere/internal/config"
	"github.com/Faultbox/planet-atmosphere/internal/game"
	"github.com/Faultbox/planet-atmosphere/internal/logger"
)

// Exit codes.
const (
	exitOK           = 0
	exitStartup      = 1
	exitWindowFailed = -1
	exitLoaderFailed = -2
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return exitStartup
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return exitStartup
	}
	defer logger.Sync()

	logger.Info("=== Planet Atmosphere ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		switch {
		case errors.Is(err, game.ErrWindow):
			return exitWindowFailed
		case errors.Is(err, game.ErrLoader):
			return exitLoaderFailed
		default:
			return exitStartup
		}
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("render loop error", zap.Error(err))
		return exitStartup
	}

	logger.Info("closed normally")
	return exitOK
}
