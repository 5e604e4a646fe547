package main

import (
	"fmt"
	"os"

	"github.com/blip-vcs/blip/cmd/ui"
	"github.com/blip-vcs/blip/pkg/common/logger"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

var (
	logLevel  string
	logFormat string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "blip",
		Short:   "blip - a minimal content-addressed version control system",
		Long:    getBanner(),
		Version: fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newFsckCmd())

	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMessage("Error: "+err.Error()))
		os.Exit(1)
	}
}

func getBanner() string {
	return `
╔══════════════════════════════════════════════╗
║                                              ║
║   ██████╗ ██╗     ██╗██████╗                 ║
║   ██╔══██╗██║     ██║██╔══██╗                ║
║   ██████╔╝██║     ██║██████╔╝                ║
║   ██╔══██╗██║     ██║██╔═══╝                 ║
║   ██████╔╝███████╗██║██║                     ║
║   ╚═════╝ ╚══════╝╚═╝╚═╝                     ║
║                                              ║
╚══════════════════════════════════════════════╝

  A minimal content-addressed version control system

  Get started with: blip init
  Stage a file:     blip add <file>
  Record it:        blip commit
  Need help? Run:   blip --help

`
}

func setupLogging() {
	level := logger.LevelInfo
	if verbose {
		level = logger.LevelDebug
	} else {
		switch logLevel {
		case "debug":
			level = logger.LevelDebug
		case "info":
			level = logger.LevelInfo
		case "warn":
			level = logger.LevelWarn
		case "error":
			level = logger.LevelError
		}
	}

	format := logger.FormatText
	if logFormat == "json" {
		format = logger.FormatJSON
	}

	logger.Default = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
}
