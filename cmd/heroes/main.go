package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tour-of-heroes/internal/client"
	"github.com/vovakirdan/tour-of-heroes/internal/config"
	"github.com/vovakirdan/tour-of-heroes/internal/log"
	"github.com/vovakirdan/tour-of-heroes/internal/messages"
)

var (
	// Global flags
	apiURL     string
	configPath string
	logLevel   string
	noColor    bool
	timeout    time.Duration

	// Set up by PersistentPreRunE
	logger  *zerolog.Logger
	msgs    *messages.Log
	heroSvc *client.Service
)

var rootCmd = &cobra.Command{
	Use:   "heroes",
	Short: "Browse and edit the hero roster",
	Long: `heroes talks to a running heroes server and drives the same screens a
browser client would: the hero list, a hero's detail, the dashboard and
the search box. After every command, failed or not, the message log is printed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
		}

		if noColor {
			color.Disable()
		}

		boot := log.New(logLevel, nil)
		cfg, path, err := config.Load(boot, configPath, config.WithoutDefaultFile())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.UpdateFrom(config.Config{APIURL: apiURL, LogLevel: logLevel})

		logger = log.New(cfg.LogLevel, nil)
		logger.Debug().Str("config", path).Str("api", cfg.APIURL).Msg("configuration loaded")

		msgs = messages.New()
		heroSvc = client.NewService(cfg.APIURL, &http.Client{Timeout: timeout}, msgs, logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "heroes server base URL (default from config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error, off")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")

	rootCmd.AddCommand(listCmd, showCmd, renameCmd, addCmd, deleteCmd, searchCmd, dashboardCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs one command and then prints the message log. The log is printed
// after failures too, since it is where service errors are reported.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	msgs = nil
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if msgs != nil {
		renderMessages(stdout, msgs.Messages())
	}
	if err != nil {
		return 1
	}
	return 0
}
