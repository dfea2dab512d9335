package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags registered on flag.CommandLine.
// Callers may register their own flags (e.g. cmd/client's -op) before
// calling it.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-e batch export directory
//	-c/-config JSON or YAML config file path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-export-interval export worker poll interval
//	-retention-schedule cron expression of the job retention worker
//	-job-retention how long finished jobs are kept
//	-metrics-namespace prometheus namespace
//	-s serving API base URL used by the client
//	-client-timeout client request timeout
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var exportDir string
	var configPath string
	var requestTimeout time.Duration
	var exportInterval time.Duration
	var retentionSchedule string
	var jobRetention time.Duration
	var metricsNamespace string
	var adapterAddress string
	var adapterTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&exportDir, "e", "", "Batch export directory")
	flag.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	flag.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&exportInterval, "export-interval", 0, "Export worker poll interval (e.g., 5s)")
	flag.StringVar(&retentionSchedule, "retention-schedule", "", "Cron schedule of the job retention worker")
	flag.DurationVar(&jobRetention, "job-retention", 0, "How long finished jobs are kept (e.g., 24h)")
	flag.StringVar(&metricsNamespace, "metrics-namespace", "", "Prometheus metrics namespace")
	flag.StringVar(&adapterAddress, "s", "", "Serving API base URL")
	flag.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			ExportDir: exportDir,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			ExportInterval:    exportInterval,
			RetentionSchedule: retentionSchedule,
			JobRetention:      jobRetention,
		},
		Metrics:  Metrics{Namespace: metricsNamespace},
		FilePath: configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
