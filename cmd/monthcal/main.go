package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"monthcal/internal/config"
	"monthcal/internal/logging"
	"monthcal/internal/storage"
	"monthcal/internal/ui"
)

func main() {
	if err := run(config.ResolveConfigPath(), ui.Run); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type runFunc func(storage.Store, config.Config, *zap.Logger) error

// run returns instead of exiting so the store is closed and the log synced
// on every path.
func run(configPath string, runUI runFunc) error {
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logger.Sync()
	logger.Info("config loaded", zap.String("path", configPath))

	store, err := storage.Open(cfg.Store)
	if err != nil {
		logger.Error("open event store", zap.Error(err))
		return fmt.Errorf("failed to open event store: %w", err)
	}
	defer store.Close()

	if err := runUI(store, cfg, logger); err != nil {
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
