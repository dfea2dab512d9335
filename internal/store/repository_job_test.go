package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

func testJob(id string, status models.JobStatus, at time.Time) models.Job {
	return models.Job{
		ID:     id,
		Status: status,
		Request: models.BatchRequest{
			Features: []models.FeatureReference{{Name: "driver_stats:trips_today"}},
			DatasetSource: &models.DatasetSource{FileSource: &models.FileSource{
				FileURIs:   []string{"file:///tmp/entities.jsonl"},
				DataFormat: models.DataFormatJSONLines,
			}},
		},
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// ---------------------------------------------------------------------------
// SQLite round trips
// ---------------------------------------------------------------------------

func TestJobRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepository(newSQLiteDB(t), logger.Nop())
	now := time.Now().UTC().Truncate(time.Second)

	job := testJob("job-1", models.JobStatusPending, now)
	require.NoError(t, repo.CreateJob(ctx, job))

	t.Run("duplicate id", func(t *testing.T) {
		require.ErrorIs(t, repo.CreateJob(ctx, job), ErrJobAlreadyExists)
	})

	t.Run("get", func(t *testing.T) {
		got, err := repo.GetJob(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, job.ID, got.ID)
		assert.Equal(t, models.JobStatusPending, got.Status)
		assert.Equal(t, job.Request, got.Request)
		assert.Nil(t, got.FileURIs)
		assert.True(t, job.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("claim only once", func(t *testing.T) {
		ok, err := repo.TransitionJob(ctx, "job-1", models.JobStatusPending, models.JobStatusRunning)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.TransitionJob(ctx, "job-1", models.JobStatusPending, models.JobStatusRunning)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("finish", func(t *testing.T) {
		done := job
		done.Status = models.JobStatusDone
		done.FileURIs = []string{"file:///exports/job-1.jsonl"}
		done.DataFormat = models.DataFormatJSONLines
		done.UpdatedAt = now.Add(time.Minute)
		require.NoError(t, repo.UpdateJob(ctx, done))

		got, err := repo.GetJob(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusDone, got.Status)
		assert.Equal(t, done.FileURIs, got.FileURIs)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := repo.GetJob(ctx, "missing")
		require.ErrorIs(t, err, ErrJobNotFound)
		require.ErrorIs(t, repo.UpdateJob(ctx, testJob("missing", models.JobStatusDone, now)), ErrJobNotFound)
	})
}

func TestJobRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewJobRepository(newSQLiteDB(t), logger.Nop())
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateJob(ctx, testJob("p-2", models.JobStatusPending, base.Add(2*time.Hour))))
	require.NoError(t, repo.CreateJob(ctx, testJob("p-1", models.JobStatusPending, base.Add(time.Hour))))
	require.NoError(t, repo.CreateJob(ctx, testJob("old-done", models.JobStatusDone, base)))
	require.NoError(t, repo.CreateJob(ctx, testJob("new-done", models.JobStatusDone, base.Add(48*time.Hour))))

	pending, err := repo.ListJobsByStatus(ctx, models.JobStatusPending, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "p-1", pending[0].ID)
	assert.Equal(t, "p-2", pending[1].ID)

	limited, err := repo.ListJobsByStatus(ctx, models.JobStatusPending, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	deleted, err := repo.DeleteFinishedBefore(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetJob(ctx, "old-done")
	require.ErrorIs(t, err, ErrJobNotFound)
	_, err = repo.GetJob(ctx, "new-done")
	require.NoError(t, err)
	_, err = repo.GetJob(ctx, "p-2")
	require.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Postgres error paths
// ---------------------------------------------------------------------------

func TestJobRepository_CreateJob_PostgresUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO jobs").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateJob(context.Background(), testJob("job-1", models.JobStatusPending, time.Now()))
	require.ErrorIs(t, err, ErrJobAlreadyExists)
}

func TestJobRepository_TransitionJob_Transient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE jobs SET status = \\$1, updated_at = \\$2 WHERE id = \\$3 AND status = \\$4").
		WithArgs("RUNNING", sqlmock.AnyArg(), "job-1", "PENDING").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	ok, err := repo.TransitionJob(context.Background(), "job-1", models.JobStatusPending, models.JobStatusRunning)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrTransient)
	require.NoError(t, mock.ExpectationsWereMet())
}
