package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/handler"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
)

// ShutdownSignals are the signals that stop the serving process gracefully.
var ShutdownSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT}

// NotifyContext returns a context cancelled on the first shutdown signal.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, ShutdownSignals...)
}

type server struct {
	transports   []transport
	shutdownOnce sync.Once

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, fmt.Errorf("%w: HTTP", errMissingHandler)
		}
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" {
		if handlers.GRPC == nil {
			return nil, fmt.Errorf("%w: gRPC", errMissingHandler)
		}
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) Run(ctx context.Context) error {
	errs := make(chan error, len(s.transports))
	var wg sync.WaitGroup

	for _, t := range s.transports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := t.serve(); err != nil {
				errs <- fmt.Errorf("%s server: %w", t.name(), err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case runErr = <-errs:
		s.logger.Err(runErr).Msg("transport failed, shutting down")
	}

	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server shutdown gracefully")
	return runErr
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, t := range s.transports {
			t.shutdown()
		}
	})
}
