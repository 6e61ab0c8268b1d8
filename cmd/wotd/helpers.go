package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wotd/internal/bootstrap"
	"github.com/at-ishikawa/wotd/internal/cli"
	"github.com/at-ishikawa/wotd/internal/config"
)

// pipelineOptions is replaced in tests to pin the clock.
var pipelineOptions []bootstrap.PipelineOption

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// runWithPipeline builds the pipeline, runs fn and closes the storage afterwards.
func runWithPipeline(cmd *cobra.Command, fn func(ctx context.Context, p *bootstrap.Pipeline, printer *cli.WordPrinter) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app := bootstrap.New()
	return app.Run(cmd.Context(), func(ctx context.Context) error {
		p, err := bootstrap.NewPipeline(ctx, cfg, pipelineOptions...)
		if err != nil {
			return fmt.Errorf("bootstrap.NewPipeline > %w", err)
		}
		app.AddShutdownHook(p.Close)

		return fn(ctx, p, cli.NewWordPrinter(cmd.OutOrStdout(), outputFormat))
	})
}
