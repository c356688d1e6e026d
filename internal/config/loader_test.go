package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "negoprep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  mode: release
storage:
  backend: redis
  redis:
    addr: redis.internal:6380
    key_prefix: "plans:"
export:
  scale: 3
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Storage.Redis.Addr)
	assert.Equal(t, "plans:", cfg.Storage.Redis.KeyPrefix)
	assert.Equal(t, 3.0, cfg.Export.Scale)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset fields get defaults.
	assert.Equal(t, DefaultSnapshotName, cfg.Storage.SnapshotName)
	assert.Equal(t, DefaultExportQuality, cfg.Export.Quality)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := writeConfigFile(t, `
server:
  mode: staging
`)
	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.mode")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, DefaultSnapshotName, cfg.Storage.SnapshotName)
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	path := writeConfigFile(t, `
log:
  level: info
`)

	changed := make(chan *Config, 1)
	Watch(path, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})

	// Give the watcher goroutine time to register before the write.
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
`), 0o644))

	select {
	case cfg := <-changed:
		assert.Equal(t, "debug", cfg.Log.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
}

func TestLoadFromEnv_Override(t *testing.T) {
	t.Setenv("NEGOPREP_SERVER_PORT", "8181")
	t.Setenv("NEGOPREP_STORAGE_BACKEND", "file")
	t.Setenv("NEGOPREP_LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}
