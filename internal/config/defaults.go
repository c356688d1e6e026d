package config

import "time"

// Default value constants. The export defaults mirror the report exporter's
// documented behaviour: scale factor 2 and quality 0.9 affect only output
// fidelity, not content.
const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultStorageBackend = BackendFile
	DefaultSnapshotName   = "negotiation-data"
	DefaultFileDir        = "./data"

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisKeyPrefix = "negoprep:"

	DefaultPostgresHost = "localhost"
	DefaultPostgresPort = 5432
	DefaultPostgresDB   = "negoprep"

	DefaultMinIOEndpoint = "localhost:9000"
	DefaultArchiveBucket = "negoprep-reports"

	DefaultExportScale   = 2.0
	DefaultExportQuality = 0.9
	DefaultExportDir     = "./exports"

	DefaultMetricsPath = "/metrics"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins. Call after unmarshalling and before Validate so
// optional-but-defaulted fields are never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// Server
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}

	// Storage
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultStorageBackend
	}
	if cfg.Storage.SnapshotName == "" {
		cfg.Storage.SnapshotName = DefaultSnapshotName
	}
	if cfg.Storage.File.Dir == "" {
		cfg.Storage.File.Dir = DefaultFileDir
	}
	if cfg.Storage.Redis.Addr == "" {
		cfg.Storage.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Storage.Redis.KeyPrefix == "" {
		cfg.Storage.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if cfg.Storage.Redis.DialTimeout == 0 {
		cfg.Storage.Redis.DialTimeout = 5 * time.Second
	}
	if cfg.Storage.Postgres.Host == "" {
		cfg.Storage.Postgres.Host = DefaultPostgresHost
	}
	if cfg.Storage.Postgres.Port == 0 {
		cfg.Storage.Postgres.Port = DefaultPostgresPort
	}
	if cfg.Storage.Postgres.DBName == "" {
		cfg.Storage.Postgres.DBName = DefaultPostgresDB
	}
	if cfg.Storage.Postgres.SSLMode == "" {
		cfg.Storage.Postgres.SSLMode = "disable"
	}
	if cfg.Storage.Postgres.MaxConns == 0 {
		cfg.Storage.Postgres.MaxConns = 5
	}

	// Archive
	if cfg.Archive.Endpoint == "" {
		cfg.Archive.Endpoint = DefaultMinIOEndpoint
	}
	if cfg.Archive.Bucket == "" {
		cfg.Archive.Bucket = DefaultArchiveBucket
	}

	// Export
	if cfg.Export.Scale == 0 {
		cfg.Export.Scale = DefaultExportScale
	}
	if cfg.Export.Quality == 0 {
		cfg.Export.Quality = DefaultExportQuality
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = DefaultExportDir
	}
	if cfg.Export.Timeout == 0 {
		cfg.Export.Timeout = 60 * time.Second
	}

	// Metrics
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// NewDefaultConfig returns a Config populated entirely with defaults. Useful
// for tests and for running without a config file.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
