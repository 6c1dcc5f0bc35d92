package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tour-of-heroes/internal/app"
	"github.com/vovakirdan/tour-of-heroes/internal/config"
	"github.com/vovakirdan/tour-of-heroes/internal/log"
)

var (
	configPath string
	overrides  config.Config
	noSeed     bool
)

var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "Serve the heroes REST API",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to config file")
	flags.StringVar(&overrides.Addr, "addr", "", "HTTP listen address")
	flags.StringVar(&overrides.DatabasePath, "db", "", "sqlite database path")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.DurationVar(&overrides.ReadHeaderTimeout, "read-header-timeout", 0, "HTTP read header timeout")
	flags.DurationVar(&overrides.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
	flags.BoolVar(&noSeed, "no-seed", false, "do not seed an empty database with the default heroes")
}

func run(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
	}

	boot := log.New(overrides.LogLevel, nil)
	cfg, path, err := config.Load(boot, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.UpdateFrom(overrides)
	if noSeed {
		cfg.SeedHeroes = false
	}

	logger := log.New(cfg.LogLevel, nil)
	logger.Info().Str("config", path).Msg("configuration loaded")

	application, err := app.New(cmd.Context(), &cfg, logger)
	if err != nil {
		return err
	}

	logger.Info().Str("addr", cfg.Addr).Msg("starting heroes server")
	if err := application.Run(cmd.Context()); err != nil {
		return fmt.Errorf("server exited with error: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
