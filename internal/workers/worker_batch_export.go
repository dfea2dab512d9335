// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/metrics"
	"github.com/MKhiriev/go-feature-serving/internal/service"
	"github.com/MKhiriev/go-feature-serving/internal/store"
	"github.com/MKhiriev/go-feature-serving/models"
)

// BatchExportWorker polls for PENDING batch jobs, resolves their features for
// every entity row of the dataset and writes the results to the export
// storage.
//
// A job is claimed by moving it PENDING -> RUNNING, so several processes may
// share one job store. Transient storage failures and worker shutdown put the
// job back to PENDING; any other failure finishes it with an error.
type BatchExportWorker struct {
	jobStorage    store.JobStorage
	exportStorage store.ExportStorage
	resolver      *service.FeatureResolver

	interval  time.Duration
	batchSize int
	now       func() time.Time

	collector *metrics.Collector
	logger    *logger.Logger
}

func NewBatchExportWorker(jobStorage store.JobStorage, exportStorage store.ExportStorage, resolver *service.FeatureResolver, cfg config.Workers, collector *metrics.Collector, logger *logger.Logger) (*BatchExportWorker, error) {
	if cfg.ExportInterval <= 0 {
		return nil, errNonPositiveExportTick
	}

	return &BatchExportWorker{
		jobStorage:    jobStorage,
		exportStorage: exportStorage,
		resolver:      resolver,
		interval:      cfg.ExportInterval,
		batchSize:     cfg.ExportBatchSize,
		now:           func() time.Time { return time.Now().UTC() },
		collector:     collector,
		logger:        logger,
	}, nil
}

func (w *BatchExportWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("batch export worker started")
	defer w.logger.Info().Msg("batch export worker stopped")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.ProcessPending(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ProcessPending handles one batch of PENDING jobs and returns how many of
// them were claimed by this worker.
func (w *BatchExportWorker) ProcessPending(ctx context.Context) int {
	jobs, err := w.jobStorage.ListJobsByStatus(ctx, models.JobStatusPending, w.batchSize)
	if err != nil {
		w.logger.Err(err).Str("func", "BatchExportWorker.ProcessPending").Msg("failed to list pending jobs")
		return 0
	}

	claimed := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		if w.process(ctx, job) {
			claimed++
		}
	}
	return claimed
}

func (w *BatchExportWorker) process(ctx context.Context, job models.Job) bool {
	log := w.logger.With().Str("job_id", job.ID).Logger()

	ok, err := w.jobStorage.TransitionJob(ctx, job.ID, models.JobStatusPending, models.JobStatusRunning)
	if err != nil {
		log.Err(err).Msg("failed to claim job")
		return false
	}
	if !ok {
		// another worker got there first
		return false
	}

	uri, err := w.export(ctx, job)

	// the job must leave RUNNING even when the worker is being stopped
	finishCtx := context.WithoutCancel(ctx)
	if err != nil && (errors.Is(err, store.ErrTransient) || ctx.Err() != nil) {
		log.Warn().Err(err).Msg("export interrupted, job returned to the queue")
		if _, err = w.jobStorage.TransitionJob(finishCtx, job.ID, models.JobStatusRunning, models.JobStatusPending); err != nil {
			log.Err(err).Msg("failed to return job to the queue")
		}
		w.inc(metrics.BatchJobRetried)
		return true
	}

	job.Status = models.JobStatusDone
	job.UpdatedAt = w.now()
	status := metrics.BatchJobDone
	if err != nil {
		log.Err(err).Msg("batch export failed")
		job.Error = err.Error()
		status = metrics.BatchJobFailed
	} else {
		job.FileURIs = []string{uri}
		log.Info().Str("uri", uri).Msg("batch export finished")
	}

	if err = w.jobStorage.UpdateJob(finishCtx, job); err != nil {
		log.Err(err).Msg("failed to store finished job")
	}
	w.inc(status)
	return true
}

func (w *BatchExportWorker) export(ctx context.Context, job models.Job) (string, error) {
	source := job.Request.DatasetSource
	if source == nil || source.FileSource == nil {
		return "", errUnsupportedSource
	}

	rows, err := w.exportStorage.ReadEntityRows(ctx, *source.FileSource)
	if err != nil {
		return "", fmt.Errorf("reading entity rows: %w", err)
	}

	values, err := w.resolver.ResolveFlat(ctx, job.Request.Features, rows, true)
	if err != nil {
		return "", err
	}

	format := job.DataFormat
	if format == "" {
		format = models.DataFormatJSONLines
	}
	return w.exportStorage.WriteResults(ctx, job.ID, format, values)
}

func (w *BatchExportWorker) inc(status string) {
	if w.collector != nil {
		w.collector.IncBatchJob(status)
	}
}
