package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
)

func newScrapeCmd() *cobra.Command {
	var (
		jobID       string
		maxPages    int
		concurrency int
		skipIfDone  bool
		force       bool
		fastMode    bool
		placeIDs    []string
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one enrichment job and exit",
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

			req := enrich.JobRequest{
				JobID:           jobID,
				MaxPagesPerSite: maxPages,
				Concurrency:     concurrency,
				SkipIfDone:      skipIfDone,
				ForceRescrape:   force,
				FastMode:        fastMode,
				PlaceIDs:        placeIDs,
			}
			jm, err := d.Run(ctx, req)
			if err != nil {
				return fmt.Errorf("run job: %w", err)
			}
			logger.Info("job summary",
				zap.Int("processed", jm.Processed),
				zap.Int("failed", jm.Failed),
				zap.Int("pages", jm.TotalPages),
				zap.Int64("bytes", jm.TotalBytes),
				zap.Int("http_pages", jm.HTTPPages),
				zap.Int("antibot_pages", jm.AntiBotPages),
				zap.Int("rendered_pages", jm.RenderedPages))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobID, "job-id", "", "job record to write metrics to")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page budget per site (0 = config default)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "explicit parallelism override")
	cmd.Flags().BoolVar(&skipIfDone, "skip-if-done", true, "skip businesses already scraped")
	cmd.Flags().BoolVar(&force, "force-rescrape", false, "re-scrape businesses already marked done")
	cmd.Flags().BoolVar(&fastMode, "fast", false, "plain HTTP only, no browser rendering")
	cmd.Flags().StringSliceVar(&placeIDs, "place-ids", nil, "restrict the run to these place ids")
	return cmd
}
