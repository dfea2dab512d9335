package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/adapter"
	"github.com/MKhiriev/go-feature-serving/internal/client"
	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/server"
	"github.com/MKhiriev/go-feature-serving/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprint(os.Stderr, buildInfo)

	// registered before the config layer parses flag.CommandLine
	var options client.Options
	flag.StringVar(&options.Operation, "op", client.OpOnlineV2, "Operation: online, online-v2, batch, job, version")
	flag.StringVar(&options.RequestPath, "f", "", "JSON request file")
	flag.StringVar(&options.JobID, "job", "", "Batch job id (op=job)")
	flag.BoolVar(&options.Wait, "wait", false, "Poll a batch job until it finishes (op=batch, op=job)")
	flag.DurationVar(&options.WaitInterval, "wait-interval", time.Second, "Job polling interval")

	log := logger.NewClientLogger("feature-serving-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	version := cfg.Version
	if buildInfo.HasVersion() {
		version = buildInfo.BuildVersion()
	}

	servingAdapter, err := adapter.NewHTTPServingAdapter(cfg.Adapter, version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create serving adapter")
	}

	app, err := client.NewApp(servingAdapter, options, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := server.NotifyContext(context.Background())
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
