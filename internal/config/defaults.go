package config

import "time"

const (
	DefaultVersion           = "dev"
	DefaultHTTPAddress       = "localhost:8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultDSN               = "feature-serving.db"
	DefaultExportDir         = "exports"
	DefaultExportInterval    = 5 * time.Second
	DefaultExportBatchSize   = 10
	DefaultRetentionSchedule = "@hourly"
	DefaultJobRetention      = 24 * time.Hour
	DefaultMetricsNamespace  = "feature_serving"
	DefaultAdapterAddress    = "http://localhost:8080"
	DefaultAdapterTimeout    = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: DefaultVersion},
		Storage: Storage{
			DB:        DB{DSN: DefaultDSN},
			ExportDir: DefaultExportDir,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			ExportInterval:    DefaultExportInterval,
			ExportBatchSize:   DefaultExportBatchSize,
			RetentionSchedule: DefaultRetentionSchedule,
			JobRetention:      DefaultJobRetention,
		},
		Metrics: Metrics{Namespace: DefaultMetricsNamespace},
	}
}
