// Package main is the prayer loadouts command line. It drives the loadout
// stack against a config store that also holds the simulated client state.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/prayer-loadouts/internal/config"
)

var (
	configPath string
	backend    string
	redisAddr  string
	sqlitePath string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "loadouts",
	Short: "Prayer loadouts",
	Long: `Save, apply and share prayer loadouts: the prayer order, hidden prayers
and filter settings of each prayerbook.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "config store backend (redis|sqlite)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "redis endpoint")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "sqlite database file")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("backend") {
		loaded.Store.Backend = backend
	}
	if cmd.Flags().Changed("redis-addr") {
		loaded.Store.Redis.Endpoint = redisAddr
	}
	if cmd.Flags().Changed("sqlite-path") {
		loaded.Store.SQLite.Path = sqlitePath
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	logger, err := loaded.Logging.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cfg = loaded
	return nil
}
