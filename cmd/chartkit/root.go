package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// logger is configured from the global flags before any command runs.
var logger = logr.Discard()

// rootCmd is the base command for chartkit.
var rootCmd = &cobra.Command{
	Use:   "chartkit",
	Short: "Summarize datasets and render them as charts",
	Long: `Chartkit reads tabular datasets (JSON, YAML, TOML or XLSX), summarizes
them into keys, totals and color thresholds, and renders them as donut charts
or heat maps, to SVG or in a window.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = setupLogging(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(convertCmd)
}

// setupLogging returns a logr.Logger backed by a slog text handler on stderr.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above, which enables chart V(1) render logs
func setupLogging(verbose, quiet bool) logr.Logger {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return logr.FromSlogHandler(handler)
}
