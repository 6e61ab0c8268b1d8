package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wotd/internal/bootstrap"
	"github.com/at-ishikawa/wotd/internal/cli"
)

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show previously resolved words, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPipeline(cmd, func(ctx context.Context, p *bootstrap.Pipeline, printer *cli.WordPrinter) error {
				if err := printer.PrintHistory(p.Resolver.History(ctx)); err != nil {
					return fmt.Errorf("printer.PrintHistory > %w", err)
				}
				return nil
			})
		},
	}
}

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the words that can be picked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			wordCatalog, err := bootstrap.LoadCatalog(cfg.Catalog)
			if err != nil {
				return fmt.Errorf("bootstrap.LoadCatalog > %w", err)
			}
			if err := cli.NewWordPrinter(cmd.OutOrStdout(), outputFormat).PrintWords(wordCatalog.Words()); err != nil {
				return fmt.Errorf("printer.PrintWords > %w", err)
			}
			return nil
		},
	}
}
