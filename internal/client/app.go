package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/adapter"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/utils"
	"github.com/MKhiriev/go-feature-serving/models"
)

// Operations accepted by [App].
const (
	OpOnline   = "online"
	OpOnlineV2 = "online-v2"
	OpBatch    = "batch"
	OpJob      = "job"
	OpVersion  = "version"
)

// Options selects what an [App] does.
type Options struct {
	// Operation is one of the Op* constants.
	Operation string

	// RequestPath is the JSON request file. It is required by the online and
	// batch operations; for OpJob it may hold a GetJobRequest instead of JobID.
	RequestPath string

	JobID string

	// Wait makes OpBatch and OpJob poll the job every WaitInterval until it
	// finishes.
	Wait         bool
	WaitInterval time.Duration
}

var _ Client = (*App)(nil)

type App struct {
	adapter adapter.ServingAdapter
	options Options
	out     io.Writer

	logger *logger.Logger
}

func NewApp(servingAdapter adapter.ServingAdapter, options Options, out io.Writer, logger *logger.Logger) (*App, error) {
	switch options.Operation {
	case OpOnline, OpOnlineV2, OpBatch:
		if options.RequestPath == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequestFile, options.Operation)
		}
	case OpJob:
		if options.JobID == "" && options.RequestPath == "" {
			return nil, ErrMissingJobID
		}
	case OpVersion:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, options.Operation)
	}

	if options.WaitInterval <= 0 {
		options.WaitInterval = time.Second
	}

	return &App{
		adapter: servingAdapter,
		options: options,
		out:     out,
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	result, err := a.call(ctx)
	if err != nil {
		return err
	}
	return a.print(result)
}

func (a *App) call(ctx context.Context) (any, error) {
	switch a.options.Operation {
	case OpOnline:
		var req models.OnlineRequest
		if err := readRequest(a.options.RequestPath, &req); err != nil {
			return nil, err
		}
		return a.adapter.GetOnlineFeatures(ctx, req)

	case OpOnlineV2:
		var req models.OnlineRequestV2
		if err := readRequest(a.options.RequestPath, &req); err != nil {
			return nil, err
		}
		return a.adapter.GetOnlineFeaturesV2(ctx, req)

	case OpBatch:
		var req models.BatchRequest
		if err := readRequest(a.options.RequestPath, &req); err != nil {
			return nil, err
		}
		job, err := a.adapter.GetBatchFeatures(ctx, req)
		if err != nil || !a.options.Wait {
			return job, err
		}
		a.logger.Info().Str("job_id", job.ID).Msg("batch job submitted, waiting for it to finish")
		return a.waitForJob(ctx, job.ID)

	case OpJob:
		jobID, err := a.jobID()
		if err != nil {
			return nil, err
		}
		if a.options.Wait {
			return a.waitForJob(ctx, jobID)
		}
		return a.adapter.GetJob(ctx, jobID)

	case OpVersion:
		version, err := a.adapter.GetVersion(ctx)
		if err != nil {
			return nil, err
		}
		return models.AppVersionResponse{Version: version}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, a.options.Operation)
}

func (a *App) jobID() (string, error) {
	if a.options.JobID != "" {
		return a.options.JobID, nil
	}

	var req models.GetJobRequest
	if err := readRequest(a.options.RequestPath, &req); err != nil {
		return "", err
	}
	if req.JobID == "" {
		return "", ErrMissingJobID
	}
	return req.JobID, nil
}

func (a *App) waitForJob(ctx context.Context, jobID string) (models.Job, error) {
	ticker := time.NewTicker(a.options.WaitInterval)
	defer ticker.Stop()

	for {
		job, err := a.adapter.GetJob(ctx, jobID)
		if err != nil {
			return models.Job{}, err
		}
		if job.IsFinished() {
			if job.Error != "" {
				return job, fmt.Errorf("%w: %s", ErrJobFailed, job.Error)
			}
			return job, nil
		}

		a.logger.Debug().Str("job_id", jobID).Str("status", string(job.Status)).Msg("job is not finished yet")
		select {
		case <-ctx.Done():
			return job, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (a *App) print(result any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readRequest(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open request file: %w", err)
	}
	defer f.Close()

	if err = utils.DecodeJSON(f, v); err != nil {
		return fmt.Errorf("decode request file %s: %w", path, err)
	}
	return nil
}
