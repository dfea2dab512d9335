package service

import (
	"fmt"

	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/metrics"
	"github.com/MKhiriev/go-feature-serving/internal/store"
)

// ServingServiceWrapper defines middleware composition for ServingService.
// Implementations wrap an existing ServingService to add behavior such as
// validating or collecting metrics.
type ServingServiceWrapper interface {
	Wrap(ServingService) ServingService // returns a decorated ServingService applying additional behavior
}

type Services struct {
	ServingService  ServingService
	AppInfoService  AppInfoService
	FeatureResolver *FeatureResolver
}

// NewServices builds the serving service chain: metrics → validation →
// storage backend.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, collector *metrics.Collector, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	resolver := NewFeatureResolver(storages.FeatureStorage, logger)

	servingService := wrap(
		NewServingService(resolver, storages.JobStorage, logger),
		NewServingMetricsService(collector),
		NewServingValidationService(collector, logger),
	)

	return &Services{
		ServingService:  servingService,
		AppInfoService:  appInfoService,
		FeatureResolver: resolver,
	}, nil
}

// wrap applies wrappers so that the first one is the outermost.
func wrap(inner ServingService, wrappers ...ServingServiceWrapper) ServingService {
	for i := len(wrappers) - 1; i >= 0; i-- {
		inner = wrappers[i].Wrap(inner)
	}
	return inner
}
