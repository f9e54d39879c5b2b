// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"wcoget/internal/config"
	"wcoget/internal/log"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagBase    string
	flagRate    float64
	flagPacing  string
	flagWorkers int
	flagSelect  string
	flagJSON    bool
	flagDebug   bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wcoget [show]",
	Short: "Find the video links of wcostream episodes",
	Long: `wcoget searches wcostream for the episodes of a show and resolves each
selected episode to its CDN link, a fallback link and a file extension.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              resolveRun,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBase, "base", "", "Site base URL (default: https://www.wcostream.tv)")
	rootCmd.PersistentFlags().Float64Var(&flagRate, "rate", 0, "Seconds to wait before each request (default: 5)")
	rootCmd.PersistentFlags().StringVar(&flagPacing, "pacing", "", "Pacing: sleep | shared | none")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, fmt.Sprintf("Episodes resolved at once, 1-%d (default: 1)", config.MaxWorkers))
	rootCmd.Flags().StringVarP(&flagSelect, "select", "s", "all", `Episodes to resolve: all | none | list like "1,3,5-8"`)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagBase != "" {
		cfg.Base = strings.TrimRight(flagBase, "/")
	}
	if cmd.Flags().Changed("rate") {
		cfg.Rate = flagRate
	}
	if flagPacing != "" {
		cfg.Pacing = flagPacing
	}
	if flagWorkers != 0 {
		cfg.Workers = flagWorkers
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Setup(log.Options{Debug: cfg.Debug, JSON: cfg.LogJSON})
	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}
