package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveRequest(t *testing.T) {
	c := NewCollector("test")

	c.ObserveRequest(OperationOnlineFeaturesV2, OutcomeOK, 10*time.Millisecond)
	c.ObserveRequest(OperationOnlineFeaturesV2, OutcomeOK, 20*time.Millisecond)
	c.ObserveRequest(OperationOnlineFeaturesV2, OutcomeRejected, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues(OperationOnlineFeaturesV2, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues(OperationOnlineFeaturesV2, OutcomeRejected)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.requestDuration))
}

func TestCollector_Counters(t *testing.T) {
	c := NewCollector("test")

	c.IncValidationRejection(OperationBatchFeatures, "DUPLICATE_FEATURE_NAME")
	c.IncBatchJob("done")
	c.IncBatchJob("done")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.validationRejections.WithLabelValues(OperationBatchFeatures, "DUPLICATE_FEATURE_NAME")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.batchJobsTotal.WithLabelValues("done")))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("fs")
	c.IncBatchJob("failed")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `fs_batch_jobs_total{status="failed"} 1`), body)
}

func TestNewCollector_IndependentRegistries(t *testing.T) {
	a := NewCollector("test")
	b := NewCollector("test")

	assert.NotSame(t, a.Registry(), b.Registry())
}
