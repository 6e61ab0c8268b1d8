package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wotd/internal/bootstrap"
	"github.com/at-ishikawa/wotd/internal/cli"
	"github.com/at-ishikawa/wotd/internal/dictionary"
)

func newTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the word of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPipeline(cmd, func(ctx context.Context, p *bootstrap.Pipeline, printer *cli.WordPrinter) error {
				return printResolved(printer, func() (dictionary.WordRecord, error) {
					return p.Resolver.ResolveDailyWord(ctx)
				})
			})
		},
	}
}

func newRandomCommand() *cobra.Command {
	var exclude string
	command := &cobra.Command{
		Use:   "random",
		Short: "Show a random word from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPipeline(cmd, func(ctx context.Context, p *bootstrap.Pipeline, printer *cli.WordPrinter) error {
				return printResolved(printer, func() (dictionary.WordRecord, error) {
					return p.Resolver.ResolveRandomWord(ctx, exclude)
				})
			})
		},
	}
	command.Flags().StringVar(&exclude, "exclude", "", "word that must not be picked, usually the one currently shown")
	return command
}

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word, for example one from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPipeline(cmd, func(ctx context.Context, p *bootstrap.Pipeline, printer *cli.WordPrinter) error {
				return printResolved(printer, func() (dictionary.WordRecord, error) {
					return p.Resolver.Resolve(ctx, args[0])
				})
			})
		},
	}
}

func printResolved(printer *cli.WordPrinter, resolve func() (dictionary.WordRecord, error)) error {
	record, err := resolve()
	if err != nil {
		return err
	}
	if err := printer.PrintRecord(record); err != nil {
		return fmt.Errorf("printer.PrintRecord > %w", err)
	}
	return nil
}
