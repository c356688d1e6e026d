// Package config defines all configuration structures for the negoprep
// service. No I/O or parsing logic lives here — only plain data types and
// validation; loading is handled by loader.go.
package config

import (
	"fmt"
	"time"
)

// Storage backend selectors accepted by StorageConfig.Backend.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// FileStorageConfig holds parameters for the default file snapshot backend.
type FileStorageConfig struct {
	// Dir is the directory holding the snapshot document. The file name is
	// derived from storage.snapshot_name.
	Dir string `mapstructure:"dir"`
}

// RedisStorageConfig holds Redis connection parameters for the redis
// snapshot backend.
type RedisStorageConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// PostgresStorageConfig holds PostgreSQL connection parameters for the
// postgres snapshot backend.
type PostgresStorageConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// StorageConfig selects and configures the snapshot persistence backend.
type StorageConfig struct {
	// Backend selects the snapshot store: "file" (default), "redis" or
	// "postgres".
	Backend string `mapstructure:"backend"`

	// SnapshotName is the fixed key/name the aggregate is persisted under.
	// It maps to the file name, redis key and postgres row respectively.
	SnapshotName string `mapstructure:"snapshot_name"`

	File     FileStorageConfig     `mapstructure:"file"`
	Redis    RedisStorageConfig    `mapstructure:"redis"`
	Postgres PostgresStorageConfig `mapstructure:"postgres"`
}

// ArchiveConfig holds the optional MinIO archive for exported report files.
// When Enabled is false the rest of the struct is ignored.
type ArchiveConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// ExportConfig holds report export parameters.
type ExportConfig struct {
	// Scale is the device scale factor for raster capture. Affects only
	// output fidelity, never content.
	Scale float64 `mapstructure:"scale"`

	// Quality is the image encoding quality in (0, 1].
	Quality float64 `mapstructure:"quality"`

	// OutputDir is where exported files are written.
	OutputDir string `mapstructure:"output_dir"`

	// BrowserBin optionally pins the headless browser binary; empty lets the
	// launcher resolve one.
	BrowserBin string `mapstructure:"browser_bin"`

	// Timeout bounds a single export run.
	Timeout time.Duration `mapstructure:"timeout"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// Config is the root configuration structure for the whole service.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Export  ExportConfig  `mapstructure:"export"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Log     LogConfig     `mapstructure:"log"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Storage.SnapshotName == "" {
		return fmt.Errorf("config: storage.snapshot_name is required")
	}
	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.File.Dir == "" {
			return fmt.Errorf("config: storage.file.dir is required for the file backend")
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("config: storage.redis.addr is required for the redis backend")
		}
	case BackendPostgres:
		p := c.Storage.Postgres
		if p.Host == "" || p.User == "" || p.DBName == "" {
			return fmt.Errorf("config: storage.postgres.{host,user,db_name} are required for the postgres backend")
		}
		if p.Port < 1 || p.Port > 65535 {
			return fmt.Errorf("config: storage.postgres.port %d is out of range [1, 65535]", p.Port)
		}
	default:
		return fmt.Errorf("config: storage.backend %q is invalid; expected file|redis|postgres", c.Storage.Backend)
	}

	if c.Archive.Enabled {
		if c.Archive.Endpoint == "" || c.Archive.Bucket == "" {
			return fmt.Errorf("config: archive.{endpoint,bucket} are required when archive.enabled is true")
		}
	}

	if c.Export.Scale <= 0 {
		return fmt.Errorf("config: export.scale must be > 0, got %g", c.Export.Scale)
	}
	if c.Export.Quality <= 0 || c.Export.Quality > 1 {
		return fmt.Errorf("config: export.quality must be in (0, 1], got %g", c.Export.Quality)
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("config: export.output_dir is required")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
