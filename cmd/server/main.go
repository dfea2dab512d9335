package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/handler"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/metrics"
	"github.com/MKhiriev/go-feature-serving/internal/server"
	"github.com/MKhiriev/go-feature-serving/internal/service"
	"github.com/MKhiriev/go-feature-serving/internal/store"
	"github.com/MKhiriev/go-feature-serving/internal/workers"
	"github.com/MKhiriev/go-feature-serving/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("feature-serving")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.HasVersion() && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := server.NotifyContext(context.Background())
	defer stop()

	collector := metrics.NewCollector(cfg.Metrics.Namespace)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, collector, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers, err := workers.NewWorkers(storages, services.FeatureResolver, cfg.Workers, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		bgWorkers.Run(ctx)
	}()

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	// a failed transport stops the workers too
	stop()
	<-workersDone
}
