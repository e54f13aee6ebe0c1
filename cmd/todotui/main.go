package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/logs"
	"todotui/internal/storage"
	"todotui/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "todotui failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLogs, err := logs.New(logs.Options{
		FilePath: cfg.LogFilePath,
		Level:    logs.ParseLevel(cfg.LogLevel),
		Journal:  cfg.JournalLogging,
	})
	if err != nil {
		return err
	}
	defer func() { _ = closeLogs() }()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	state := update.LoadState(context.Background(), store, logger)
	logger.Info("starting", "backend", string(cfg.Backend), "items", len(state.Items))

	program := tea.NewProgram(
		update.NewModelWithConfig(state, store, logger, cfg),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func openStore(cfg update.RuntimeConfig) (storage.SnapshotStore, error) {
	switch cfg.Backend {
	case update.BackendSQLite:
		return storage.OpenSQLite(cfg.StatePath)
	default:
		return storage.NewJSONStore(cfg.StatePath)
	}
}
