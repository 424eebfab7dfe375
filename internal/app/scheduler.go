package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/config"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pipeline"

	"github.com/robfig/cron/v3"
)

const scheduledRunTimeout = 15 * time.Minute

// CatalogJobs is what the scheduler triggers.
type CatalogJobs interface {
	Run(ctx context.Context, params pipeline.TagParams) (pipeline.RefreshReport, error)
	Tag(ctx context.Context, params pipeline.TagParams) (pipeline.TagReport, error)
}

// NewScheduler registers the catalog import and the tagging sweep. Overlapping
// runs of the same job are skipped. The caller starts and stops the cron.
func NewScheduler(ctx context.Context, cfg config.SchedulerConfig, jobs CatalogJobs, logger *log.Logger) (*cron.Cron, error) {
	if logger == nil {
		logger = log.Default()
	}
	cl := cron.PrintfLogger(logger)
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	params := pipeline.TagParams{Workers: cfg.Workers}

	if _, err := c.AddFunc(cfg.ImportSchedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, scheduledRunTimeout)
		defer cancel()
		if _, err := jobs.Run(runCtx, params); err != nil {
			logger.Printf("scheduler=catalog_import status=error err=%v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("catalog import schedule %q: %w", cfg.ImportSchedule, err)
	}

	if _, err := c.AddFunc(cfg.TaggingSchedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, scheduledRunTimeout)
		defer cancel()
		if _, err := jobs.Tag(runCtx, params); err != nil {
			logger.Printf("scheduler=tagging status=error err=%v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("tagging schedule %q: %w", cfg.TaggingSchedule, err)
	}

	return c, nil
}
