package workers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/metrics"
	"github.com/MKhiriev/go-feature-serving/internal/mock"
	"github.com/MKhiriev/go-feature-serving/internal/service"
	"github.com/MKhiriev/go-feature-serving/internal/store"
	"github.com/MKhiriev/go-feature-serving/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type exportMocks struct {
	features  *mock.MockFeatureStorage
	jobs      *mock.MockJobStorage
	exports   *mock.MockExportStorage
	collector *metrics.Collector
}

func newTestExportWorker(t *testing.T) (*BatchExportWorker, exportMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := exportMocks{
		features:  mock.NewMockFeatureStorage(ctrl),
		jobs:      mock.NewMockJobStorage(ctrl),
		exports:   mock.NewMockExportStorage(ctrl),
		collector: metrics.NewCollector("test"),
	}

	resolver := service.NewFeatureResolver(m.features, logger.Nop())
	w, err := NewBatchExportWorker(m.jobs, m.exports, resolver, testWorkersConfig(), m.collector, logger.Nop())
	require.NoError(t, err)
	w.now = func() time.Time { return fixedNow }

	return w, m
}

func pendingJob(id string) models.Job {
	return models.Job{
		ID:     id,
		Status: models.JobStatusPending,
		Request: models.BatchRequest{
			Features: []models.FeatureReference{{Name: "driver_stats:trips"}},
			DatasetSource: &models.DatasetSource{FileSource: &models.FileSource{
				FileURIs:   []string{"file:///data/drivers.jsonl"},
				DataFormat: models.DataFormatJSONLines,
			}},
		},
		DataFormat: models.DataFormatJSONLines,
	}
}

func assertBatchJobEvents(t *testing.T, collector *metrics.Collector, status string) {
	t.Helper()
	expected := fmt.Sprintf(`
# HELP test_batch_jobs_total Total number of batch job events by status.
# TYPE test_batch_jobs_total counter
test_batch_jobs_total{status=%q} 1
`, status)
	assert.NoError(t, testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_batch_jobs_total"))
}

func TestBatchExportWorker_ProcessPending_Success(t *testing.T) {
	w, m := newTestExportWorker(t)
	ctx := context.Background()
	job := pendingJob("job-1")
	rows := []models.EntityRow{{Fields: map[string]any{"driver_id": 1}}}

	m.jobs.EXPECT().ListJobsByStatus(ctx, models.JobStatusPending, 10).Return([]models.Job{job}, nil)
	m.jobs.EXPECT().TransitionJob(ctx, "job-1", models.JobStatusPending, models.JobStatusRunning).Return(true, nil)
	m.exports.EXPECT().ReadEntityRows(ctx, *job.Request.DatasetSource.FileSource).Return(rows, nil)
	m.features.EXPECT().
		GetFeatureValues(ctx, "driver_stats", []string{"driver_id=1"}, []string{"trips"}).
		Return(map[string]map[string]models.StoredValue{"driver_id=1": {"trips": {Value: 7.0}}}, nil)
	m.exports.EXPECT().
		WriteResults(ctx, "job-1", models.DataFormatJSONLines, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.DataFormat, values []models.FieldValues) (string, error) {
			require.Len(t, values, 1)
			assert.Equal(t, 1, values[0].Fields["driver_id"])
			assert.Equal(t, 7.0, values[0].Fields["driver_stats:trips"])
			return "file:///export/job-1.jsonl", nil
		})
	m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got models.Job) error {
		assert.Equal(t, models.JobStatusDone, got.Status)
		assert.Equal(t, []string{"file:///export/job-1.jsonl"}, got.FileURIs)
		assert.Empty(t, got.Error)
		assert.Equal(t, fixedNow, got.UpdatedAt)
		return nil
	})

	assert.Equal(t, 1, w.ProcessPending(ctx))
	assertBatchJobEvents(t, m.collector, metrics.BatchJobDone)
}

func TestBatchExportWorker_ProcessPending_AlreadyClaimed(t *testing.T) {
	w, m := newTestExportWorker(t)
	ctx := context.Background()

	m.jobs.EXPECT().ListJobsByStatus(ctx, models.JobStatusPending, 10).Return([]models.Job{pendingJob("job-1")}, nil)
	m.jobs.EXPECT().TransitionJob(ctx, "job-1", models.JobStatusPending, models.JobStatusRunning).Return(false, nil)

	assert.Equal(t, 0, w.ProcessPending(ctx))
}

func TestBatchExportWorker_ProcessPending_ListFails(t *testing.T) {
	w, m := newTestExportWorker(t)
	ctx := context.Background()

	m.jobs.EXPECT().ListJobsByStatus(ctx, models.JobStatusPending, 10).Return(nil, errors.New("db down"))

	assert.Equal(t, 0, w.ProcessPending(ctx))
}

func TestBatchExportWorker_ProcessPending_TransientFailure(t *testing.T) {
	w, m := newTestExportWorker(t)
	ctx := context.Background()
	job := pendingJob("job-1")

	gomock.InOrder(
		m.jobs.EXPECT().ListJobsByStatus(ctx, models.JobStatusPending, 10).Return([]models.Job{job}, nil),
		m.jobs.EXPECT().TransitionJob(ctx, "job-1", models.JobStatusPending, models.JobStatusRunning).Return(true, nil),
		m.exports.EXPECT().ReadEntityRows(ctx, gomock.Any()).Return([]models.EntityRow{{Fields: map[string]any{"driver_id": 1}}}, nil),
		m.features.EXPECT().GetFeatureValues(ctx, "driver_stats", gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: database is locked", store.ErrTransient)),
		m.jobs.EXPECT().TransitionJob(gomock.Any(), "job-1", models.JobStatusRunning, models.JobStatusPending).Return(true, nil),
	)

	assert.Equal(t, 1, w.ProcessPending(ctx))
	assertBatchJobEvents(t, m.collector, metrics.BatchJobRetried)
}

func TestBatchExportWorker_ProcessPending_CancelledMidExport(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(m exportMocks, cancel context.CancelFunc)
	}{
		{
			name: "cancelled while reading rows",
			prepare: func(m exportMocks, cancel context.CancelFunc) {
				m.exports.EXPECT().ReadEntityRows(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ models.FileSource) ([]models.EntityRow, error) {
						cancel()
						return nil, ctx.Err()
					})
			},
		},
		{
			name: "cancelled while writing results",
			prepare: func(m exportMocks, cancel context.CancelFunc) {
				m.exports.EXPECT().ReadEntityRows(gomock.Any(), gomock.Any()).Return([]models.EntityRow{{Fields: map[string]any{"driver_id": 1}}}, nil)
				m.features.EXPECT().GetFeatureValues(gomock.Any(), "driver_stats", gomock.Any(), gomock.Any()).Return(nil, nil)
				m.exports.EXPECT().WriteResults(gomock.Any(), "job-1", models.DataFormatJSONLines, gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ string, _ models.DataFormat, _ []models.FieldValues) (string, error) {
						cancel()
						return "", fmt.Errorf("writing export: %w", ctx.Err())
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, m := newTestExportWorker(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			m.jobs.EXPECT().ListJobsByStatus(ctx, models.JobStatusPending, 10).Return([]models.Job{pendingJob("job-1")}, nil)
			m.jobs.EXPECT().TransitionJob(ctx, "job-1", models.JobStatusPending, models.JobStatusRunning).Return(true, nil)
			tt.prepare(m, cancel)
			// no UpdateJob: an interrupted job is requeued, not finished
			m.jobs.EXPECT().TransitionJob(gomock.Any(), "job-1", models.JobStatusRunning, models.JobStatusPending).
				DoAndReturn(func(ctx context.Context, _ string, _, _ models.JobStatus) (bool, error) {
					assert.NoError(t, ctx.Err(), "requeue must not run on the cancelled context")
					return true, nil
				})

			assert.Equal(t, 1, w.ProcessPending(ctx))
			assertBatchJobEvents(t, m.collector, metrics.BatchJobRetried)
		})
	}
}

func TestBatchExportWorker_ProcessPending_Failure(t *testing.T) {
	tests := []struct {
		name    string
		job     func() models.Job
		prepare func(m exportMocks)
		wantErr string
	}{
		{
			name: "unreadable dataset",
			job:  func() models.Job { return pendingJob("job-1") },
			prepare: func(m exportMocks) {
				m.exports.EXPECT().ReadEntityRows(gomock.Any(), gomock.Any()).Return(nil, errors.New("no such file"))
			},
			wantErr: "reading entity rows: no such file",
		},
		{
			name: "non file source",
			job: func() models.Job {
				job := pendingJob("job-1")
				job.Request.DatasetSource = &models.DatasetSource{BigQuerySource: &models.BigQuerySource{TableRef: "p:d.t"}}
				return job
			},
			prepare: func(exportMocks) {},
			wantErr: errUnsupportedSource.Error(),
		},
		{
			name: "malformed feature reference",
			job: func() models.Job {
				job := pendingJob("job-1")
				job.Request.Features = []models.FeatureReference{{Name: "trips"}}
				return job
			},
			prepare: func(m exportMocks) {
				m.exports.EXPECT().ReadEntityRows(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, m := newTestExportWorker(t)
			ctx := context.Background()
			job := tt.job()

			m.jobs.EXPECT().ListJobsByStatus(ctx, models.JobStatusPending, 10).Return([]models.Job{job}, nil)
			m.jobs.EXPECT().TransitionJob(ctx, "job-1", models.JobStatusPending, models.JobStatusRunning).Return(true, nil)
			tt.prepare(m)
			m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got models.Job) error {
				assert.Equal(t, models.JobStatusDone, got.Status)
				assert.Empty(t, got.FileURIs)
				require.NotEmpty(t, got.Error)
				if tt.wantErr != "" {
					assert.Equal(t, tt.wantErr, got.Error)
				}
				return nil
			})

			assert.Equal(t, 1, w.ProcessPending(ctx))
			assertBatchJobEvents(t, m.collector, metrics.BatchJobFailed)
		})
	}
}

func TestBatchExportWorker_Run_StopsOnCancel(t *testing.T) {
	w, m := newTestExportWorker(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.jobs.EXPECT().ListJobsByStatus(gomock.Any(), models.JobStatusPending, 10).
		DoAndReturn(func(context.Context, models.JobStatus, int) ([]models.Job, error) {
			cancel()
			return nil, nil
		})

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
