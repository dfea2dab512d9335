package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-feature-serving/models"
)

const (
	featureValuesTable = "feature_values"
	jobsTable          = "jobs"
)

var jobColumns = []string{
	"id", "status", "request", "error", "file_uris", "data_format", "created_at", "updated_at",
}

func buildGetFeatureValuesQuery(b sq.StatementBuilderType, table string, entityKeys, features []string) (string, []any, error) {
	return b.Select("entity_key", "feature", "value").
		From(featureValuesTable).
		Where(sq.Eq{"feature_table": table}).
		Where(sq.Eq{"entity_key": entityKeys}).
		Where(sq.Eq{"feature": features}).
		ToSql()
}

// buildPutFeatureValuesQuery builds a single multi-row upsert. values holds
// the already encoded value of every row (nil for NULL).
func buildPutFeatureValuesQuery(b sq.StatementBuilderType, rows []models.FeatureRow, values []any, now time.Time) (string, []any, error) {
	insert := b.Insert(featureValuesTable).
		Columns("feature_table", "entity_key", "feature", "value", "updated_at")

	for i, row := range rows {
		insert = insert.Values(row.FeatureTable, row.EntityKey, row.Feature, values[i], now)
	}

	return insert.
		Suffix("ON CONFLICT (feature_table, entity_key, feature) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildInsertJobQuery(b sq.StatementBuilderType, job encodedJob) (string, []any, error) {
	return b.Insert(jobsTable).
		Columns(jobColumns...).
		Values(job.ID, job.Status, job.Request, job.Error, job.FileURIs, job.DataFormat, job.CreatedAt, job.UpdatedAt).
		ToSql()
}

func buildGetJobQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(jobColumns...).
		From(jobsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListJobsByStatusQuery(b sq.StatementBuilderType, status models.JobStatus, limit int) (string, []any, error) {
	query := b.Select(jobColumns...).
		From(jobsTable).
		Where(sq.Eq{"status": string(status)}).
		OrderBy("created_at ASC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query.ToSql()
}

func buildUpdateJobQuery(b sq.StatementBuilderType, job encodedJob) (string, []any, error) {
	return b.Update(jobsTable).
		Set("status", job.Status).
		Set("error", job.Error).
		Set("file_uris", job.FileURIs).
		Set("data_format", job.DataFormat).
		Set("updated_at", job.UpdatedAt).
		Where(sq.Eq{"id": job.ID}).
		ToSql()
}

func buildTransitionJobQuery(b sq.StatementBuilderType, id string, from, to models.JobStatus, now time.Time) (string, []any, error) {
	return b.Update(jobsTable).
		Set("status", string(to)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id, "status": string(from)}).
		ToSql()
}

func buildDeleteFinishedJobsQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete(jobsTable).
		Where(sq.Eq{"status": string(models.JobStatusDone)}).
		Where(sq.Lt{"updated_at": before}).
		ToSql()
}
