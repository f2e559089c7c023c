// Package main provides the CLI entrypoint for themectl.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themectl/internal/config"
	"github.com/jmylchreest/themectl/internal/store"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		storePath  string
		origin     string
	}
	logger *slog.Logger

	// prefStore is the preference store for the configured origin
	prefStore *store.File
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "themectl",
	Short: "Persist and apply a light/dark theme preference",
	Long: `themectl persists a light/dark theme preference per origin and
reflects it onto HTML pages as the data-theme attribute of the root element.

Running themectl without a subcommand shows the stored preference.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override the config file
		storePath := cfg.Store.Path
		if globalOpts.storePath != "" {
			storePath = globalOpts.storePath
		}
		origin := cfg.Store.Origin
		if globalOpts.origin != "" {
			origin = globalOpts.origin
		}

		prefStore, err = store.OpenFile(storePath, origin)
		if err != nil {
			return fmt.Errorf("failed to open preference store: %w", err)
		}
		logger.Debug("opened preference store", "path", prefStore.Path(), "origin", prefStore.Origin())

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusRun(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/themectl/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.storePath, "store", "",
		"Path to preference store (default: ~/.local/share/themectl/preferences.json)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.origin, "origin", "",
		"Origin the preference is scoped to (default: file://)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
