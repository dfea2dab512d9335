package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/metrics"
	"github.com/MKhiriev/go-feature-serving/internal/service"
	"github.com/MKhiriev/go-feature-serving/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the batch export and retention workers. collector may be
// nil.
func NewWorkers(storages *store.Storages, resolver *service.FeatureResolver, cfg config.Workers, collector *metrics.Collector, logger *logger.Logger) (*Workers, error) {
	logger.Info().Msg("creating workers...")

	export, err := NewBatchExportWorker(storages.JobStorage, storages.ExportStorage, resolver, cfg, collector, logger)
	if err != nil {
		return nil, err
	}

	retention, err := NewRetentionWorker(storages.JobStorage, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Workers{workers: []Worker{export, retention}}, nil
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
