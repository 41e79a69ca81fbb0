package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leadscout/enrich/internal/api"
	"github.com/leadscout/enrich/internal/intake"
	"github.com/leadscout/enrich/internal/metrics"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and, when configured, the Pub/Sub job intake",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadEnv()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // best-effort flush

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			d, cleanup, err := buildDriver(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			metrics.Init()
			server := api.NewServer(d, logger)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return server.Serve(gctx, fmt.Sprintf(":%d", cfg.Server.Port))
			})

			if cfg.PubSub.ProjectID != "" && cfg.PubSub.Subscription != "" {
				sub, err := intake.NewSubscriber(gctx, cfg.PubSub.ProjectID, cfg.PubSub.Subscription, d, logger)
				if err != nil {
					return fmt.Errorf("job intake: %w", err)
				}
				g.Go(func() error {
					return sub.Listen(gctx)
				})
			} else {
				logger.Info("pubsub intake disabled, jobs arrive via HTTP only")
			}

			if err := g.Wait(); err != nil {
				logger.Error("server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
	return cmd
}
