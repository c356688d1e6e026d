// Package config provides configuration loading, defaults, and validation
// for the negoprep service.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all service settings.
const envPrefix = "NEGOPREP"

// settingKeys enumerates every configuration key. Viper only unmarshals env
// overrides for keys it knows about, so each key is bound explicitly; adding
// a field to a config struct requires adding its key here.
var settingKeys = []string{
	"server.port", "server.mode", "server.read_timeout", "server.write_timeout",
	"server.shutdown_timeout",
	"storage.backend", "storage.snapshot_name", "storage.file.dir",
	"storage.redis.addr", "storage.redis.password", "storage.redis.db",
	"storage.redis.pool_size", "storage.redis.dial_timeout",
	"storage.redis.read_timeout", "storage.redis.write_timeout",
	"storage.redis.key_prefix",
	"storage.postgres.host", "storage.postgres.port", "storage.postgres.user",
	"storage.postgres.password", "storage.postgres.db_name",
	"storage.postgres.ssl_mode", "storage.postgres.max_conns",
	"storage.postgres.conn_max_lifetime",
	"archive.enabled", "archive.endpoint", "archive.access_key",
	"archive.secret_key", "archive.bucket", "archive.use_ssl",
	"export.scale", "export.quality", "export.output_dir",
	"export.browser_bin", "export.timeout",
	"metrics.enabled", "metrics.path",
	"log.level", "log.format", "log.output_paths",
}

// newViper builds a pre-configured Viper instance: YAML file type, NEGOPREP_
// env prefix, automatic env binding, and a key replacer mapping "." → "_" so
// nested keys like "storage.backend" resolve to "NEGOPREP_STORAGE_BACKEND".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range settingKeys {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the YAML file at configPath, merges NEGOPREP_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result. Returns a fully-populated *Config or a descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from NEGOPREP_* environment variables
// with no config file required — the preferred strategy for containerised
// deployments.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath and invokes onChange with the newly parsed
// Config whenever the file changes on disk. Intended for hot-reloading
// non-critical settings such as log level and export fidelity; callers are
// responsible for applying only the safe subset at runtime.
//
// Watch is non-blocking; viper manages the background goroutine. When the
// changed file fails to parse or validate, onChange is not called.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}
