package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wotd/internal/cli"
	"github.com/at-ishikawa/wotd/internal/resolver"
)

var (
	configFile   string
	outputFormat cli.OutputFormat
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := &cobra.Command{
		Use:           "wotd",
		Short:         "Word of the day",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}

	outputFormat = cli.OutputText
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.Var(&outputFormat, "output", "Output format. Options: text, json, yaml")

	rootCommand.AddCommand(
		newTodayCommand(),
		newRandomCommand(),
		newLookupCommand(),
		newHistoryCommand(),
		newCatalogCommand(),
	)
	return rootCommand
}

// reportError hides resolution details behind the user-facing message.
func reportError(w io.Writer, err error) {
	if errors.Is(err, resolver.ErrResolutionFailed) {
		slog.Default().Debug("resolution failed", "error", err)
		_, _ = fmt.Fprintln(w, resolver.FailureMessage)
		return
	}
	if _, fprintfErr := fmt.Fprintf(w, "failed to execute a command: %+v\n", err); fprintfErr != nil {
		panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
	}
}

// setupLogger configures the default logger based on debug mode.
// Logs go to stderr so that json and yaml output stay parseable.
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
