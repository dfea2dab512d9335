package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
)

// Storages aggregates every storage the serving process needs.
type Storages struct {
	FeatureStorage FeatureStorage
	JobStorage     JobStorage
	ExportStorage  ExportStorage

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds all storages on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	exportStorage, err := NewExportStorage(cfg.ExportDir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		FeatureStorage: NewFeatureRepository(db, log),
		JobStorage:     NewJobRepository(db, log),
		ExportStorage:  exportStorage,
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
