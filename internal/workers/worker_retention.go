package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/store"
	"github.com/robfig/cron/v3"
)

// RetentionWorker deletes finished jobs older than the configured retention
// on a cron schedule.
type RetentionWorker struct {
	jobStorage store.JobStorage
	schedule   cron.Schedule
	spec       string
	retention  time.Duration
	now        func() time.Time

	logger *logger.Logger
}

func NewRetentionWorker(jobStorage store.JobStorage, cfg config.Workers, logger *logger.Logger) (*RetentionWorker, error) {
	schedule, err := cron.ParseStandard(cfg.RetentionSchedule)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errInvalidRetentionSpec, cfg.RetentionSchedule, err)
	}

	return &RetentionWorker{
		jobStorage: jobStorage,
		schedule:   schedule,
		spec:       cfg.RetentionSchedule,
		retention:  cfg.JobRetention,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}, nil
}

func (w *RetentionWorker) Run(ctx context.Context) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(w.schedule, cron.FuncJob(func() { w.Purge(ctx) }))

	w.logger.Info().Str("schedule", w.spec).Dur("retention", w.retention).Msg("retention worker started")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	w.logger.Info().Msg("retention worker stopped")
}

// Purge deletes finished jobs last updated before now minus the retention.
func (w *RetentionWorker) Purge(ctx context.Context) int64 {
	cutoff := w.now().Add(-w.retention)

	deleted, err := w.jobStorage.DeleteFinishedBefore(ctx, cutoff)
	if err != nil {
		w.logger.Err(err).Str("func", "RetentionWorker.Purge").Time("cutoff", cutoff).Msg("failed to purge finished jobs")
		return 0
	}

	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("purged finished jobs")
	}
	return deleted
}
