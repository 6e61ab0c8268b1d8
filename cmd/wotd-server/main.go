package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/wotd/internal/bootstrap"
	"github.com/at-ishikawa/wotd/internal/config"
	"github.com/at-ishikawa/wotd/internal/server"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "wotd-server",
		Short:         "Word of the day HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	pipeline, err := bootstrap.NewPipeline(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap.NewPipeline() > %w", err)
	}
	app.AddShutdownHook(pipeline.Close)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           newHandler(pipeline, cfg.Server.CORS.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", "addr", srv.Addr, "backend", cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func newHandler(pipeline *bootstrap.Pipeline, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	server.NewWordHandler(pipeline.Resolver).Register(mux)
	return server.CORS(h2c.NewHandler(mux, &http2.Server{}), allowedOrigins)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
