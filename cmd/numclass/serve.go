package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/number-classifier/internal/config"
	"github.com/Veraticus/number-classifier/internal/server"
	"github.com/Veraticus/number-classifier/internal/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classification API",
		Long: `Serve GET /api/classify-number?number=N.

Responses carry the classification and a fun fact fetched from the Numbers
API. When the fact service is unreachable the classification is still
returned with an empty fun_fact.`,
		Example: `  # Serve on the default port
  numclass serve

  # Serve on another port without calling the Numbers API
  numclass serve --addr :9090 --offline`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			srvCfg, err := config.LoadServer()
			if err != nil {
				return fmt.Errorf("invalid server configuration: %w", err)
			}

			shutdownTracing, err := telemetry.Setup(ctx, "numclass", version)
			if err != nil {
				return err
			}
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTracing(flushCtx); err != nil {
					slog.Warn("Failed to flush traces", "error", err)
				}
			}()

			facts, closeFacts, err := newFactFetcher(offline)
			if err != nil {
				return fmt.Errorf("invalid facts configuration: %w", err)
			}
			defer closeFacts()

			return server.New(srvCfg, facts, slog.Default()).Run(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8000)")
	cmd.Flags().String("facts-url", "", "base URL of the Numbers API (default http://numbersapi.com)")
	cmd.Flags().BoolVar(&offline, "offline", false, "do not fetch fun facts")

	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("facts.base_url", cmd.Flags().Lookup("facts-url"))

	return cmd
}
