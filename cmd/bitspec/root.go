package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitspec/internal/logger"
	"github.com/joshuapare/bitspec/internal/printer"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	logJSON bool
	logFile string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "bitspec",
	Short: "Parse and validate bit field specs",
	Long: `bitspec parses the compact notation used to locate bit fields in
word-addressed data, such as 3[4..7]..6[0..5];48, and checks catalogs of
named fields against word width and size limits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write debug logs as JSON")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append debug logs to this file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging enables the debug logger when --verbose or --log-file is set.
func initLogging() error {
	opts := logger.Options{
		Enabled: verbose || logFile != "",
		Level:   slog.LevelDebug,
		JSON:    logJSON,
		File:    logFile,
	}
	closeFn, err := logger.Init(opts)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	closeLog = closeFn
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printerOptions returns printer defaults for the given format with the
// global color setting applied.
func printerOptions(format printer.Format) printer.Options {
	opts := printer.DefaultOptions()
	opts.Format = format
	opts.Color = !noColor
	return opts
}

// outputFormat resolves --format against the global --json flag.
func outputFormat(flag string) (printer.Format, error) {
	if jsonOut {
		return printer.FormatJSON, nil
	}
	return printer.ParseFormat(flag)
}
