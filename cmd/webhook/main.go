package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"gitlab.com/ignitionrobotics/billing/mollie/internal/server"
	"go.uber.org/zap"
)

// main prepares the config and runs the Mollie webhook HTTP server.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger = logger.Named("mollie")
	defer func() {
		_ = logger.Sync()
	}()

	// Local environments keep their settings in a .env file
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatal("Failed to load .env file", zap.Error(err))
	}

	cfg, err := server.Setup(logger)
	if err != nil {
		logger.Fatal("Failed to initialize server configuration", zap.Error(err))
	}

	if err = server.Run(cfg, logger); err != nil {
		logger.Fatal("Failed to run HTTP server", zap.Error(err))
	}

	logger.Info("HTTP server stopped")
}
