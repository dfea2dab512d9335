package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/models"
)

// jobRepository is the SQL implementation of [JobStorage]. The batch request
// and the exported file URIs are kept as JSON text columns.
type jobRepository struct {
	*DB
	logger *logger.Logger
}

func NewJobRepository(db *DB, logger *logger.Logger) JobStorage {
	return &jobRepository{
		DB:     db,
		logger: logger,
	}
}

// encodedJob is the row form of [models.Job].
type encodedJob struct {
	ID         string
	Status     string
	Request    string
	Error      string
	FileURIs   string
	DataFormat string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func encodeJob(job models.Job) (encodedJob, error) {
	request, err := json.Marshal(job.Request)
	if err != nil {
		return encodedJob{}, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	uris := job.FileURIs
	if uris == nil {
		uris = []string{}
	}
	fileURIs, err := json.Marshal(uris)
	if err != nil {
		return encodedJob{}, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	return encodedJob{
		ID:         job.ID,
		Status:     string(job.Status),
		Request:    string(request),
		Error:      job.Error,
		FileURIs:   string(fileURIs),
		DataFormat: string(job.DataFormat),
		CreatedAt:  job.CreatedAt.UTC(),
		UpdatedAt:  job.UpdatedAt.UTC(),
	}, nil
}

func (e encodedJob) decode() (models.Job, error) {
	job := models.Job{
		ID:         e.ID,
		Status:     models.JobStatus(e.Status),
		Error:      e.Error,
		DataFormat: models.DataFormat(e.DataFormat),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}

	if err := json.Unmarshal([]byte(e.Request), &job.Request); err != nil {
		return models.Job{}, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	if e.FileURIs != "" {
		if err := json.Unmarshal([]byte(e.FileURIs), &job.FileURIs); err != nil {
			return models.Job{}, fmt.Errorf("%w: %w", ErrEncodingValue, err)
		}
		if len(job.FileURIs) == 0 {
			job.FileURIs = nil
		}
	}

	return job, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (models.Job, error) {
	var e encodedJob
	if err := row.Scan(&e.ID, &e.Status, &e.Request, &e.Error, &e.FileURIs, &e.DataFormat, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return models.Job{}, err
	}
	return e.decode()
}

func (j *jobRepository) CreateJob(ctx context.Context, job models.Job) error {
	log := logger.FromContext(ctx)

	encoded, err := encodeJob(job)
	if err != nil {
		return err
	}

	query, args, err := buildInsertJobQuery(j.builder, encoded)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.CreateJob").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.DB.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrJobAlreadyExists, job.ID)
		}
		log.Err(err).Str("func", "jobRepository.CreateJob").Str("job_id", job.ID).Msg("failed to insert job")
		return j.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (j *jobRepository) GetJob(ctx context.Context, id string) (models.Job, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetJobQuery(j.builder, id)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.GetJob").Msg("failed to build query")
		return models.Job{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	job, err := scanJob(j.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, ErrJobNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "jobRepository.GetJob").Str("job_id", id).Msg("failed to get job")
		return models.Job{}, j.wrapError(ErrExecutingQuery, err)
	}

	return job, nil
}

func (j *jobRepository) ListJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListJobsByStatusQuery(j.builder, status, limit)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.ListJobsByStatus").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.ListJobsByStatus").Str("status", string(status)).Msg("failed to list jobs")
		return nil, j.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		job, scanErr := scanJob(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "jobRepository.ListJobsByStatus").Msg("failed to scan job row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, j.wrapError(ErrScanningRows, err)
	}

	return jobs, nil
}

func (j *jobRepository) UpdateJob(ctx context.Context, job models.Job) error {
	log := logger.FromContext(ctx)

	encoded, err := encodeJob(job)
	if err != nil {
		return err
	}

	query, args, err := buildUpdateJobQuery(j.builder, encoded)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.UpdateJob").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := j.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.UpdateJob").Str("job_id", job.ID).Msg("failed to update job")
		return j.wrapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return j.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

func (j *jobRepository) TransitionJob(ctx context.Context, id string, from, to models.JobStatus) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTransitionJobQuery(j.builder, id, from, to, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "jobRepository.TransitionJob").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := j.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "jobRepository.TransitionJob").
			Str("job_id", id).
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("failed to transition job")
		return false, j.wrapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, j.wrapError(ErrExecutingStatement, err)
	}

	return affected == 1, nil
}

func (j *jobRepository) DeleteFinishedBefore(ctx context.Context, t time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFinishedJobsQuery(j.builder, t.UTC())
	if err != nil {
		log.Err(err).Str("func", "jobRepository.DeleteFinishedBefore").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := j.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.DeleteFinishedBefore").Time("before", t).Msg("failed to delete finished jobs")
		return 0, j.wrapError(ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, j.wrapError(ErrExecutingStatement, err)
	}

	return deleted, nil
}
