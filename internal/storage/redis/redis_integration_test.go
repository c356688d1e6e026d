//go:build integration

// Integration tests for the redis snapshot backend. They require Docker and
// are gated behind the "integration" build tag:
//
//	go test -tags integration ./internal/storage/redis/...
package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/internal/storage/redis"
)

// startRedis launches a Redis 7 container and returns its address.
func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return host + ":" + port.Port()
}

func newStore(t *testing.T, addr, name string) *redis.Store {
	t.Helper()
	store, err := redis.New(context.Background(), config.RedisStorageConfig{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
		KeyPrefix:   "negoprep:",
	}, name, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, startRedis(t), "negotiation-data")

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, planning.ErrSnapshotNotFound)

	example, err := negotiation.NewExampleData(negotiation.VariantBuyer, time.Now())
	require.NoError(t, err)
	payload, err := planning.EncodeSnapshot(example)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, payload))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	restored, err := planning.DecodeSnapshot(got)
	require.NoError(t, err)
	assert.Len(t, restored.BatnaOptions, 3)
}

func TestRedisSnapshotOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, startRedis(t), "negotiation-data")

	first, err := planning.EncodeSnapshot(negotiation.NewDefaultData(time.Now()))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, first))

	example, err := negotiation.NewExampleData(negotiation.VariantRecipient, time.Now())
	require.NoError(t, err)
	second, err := planning.EncodeSnapshot(example)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

// The store under one snapshot name must not see another name's key.
func TestRedisSnapshotKeyIsolation(t *testing.T) {
	ctx := context.Background()
	addr := startRedis(t)
	a := newStore(t, addr, "plan-a")
	b := newStore(t, addr, "plan-b")

	payload, err := planning.EncodeSnapshot(negotiation.NewDefaultData(time.Now()))
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx, payload))

	_, err = b.Load(ctx)
	assert.ErrorIs(t, err, planning.ErrSnapshotNotFound)
}

// Hydrating a planning.Store straight from redis exercises the full
// write-through path end to end.
func TestRedisBackedStoreHydration(t *testing.T) {
	ctx := context.Background()
	snap := newStore(t, startRedis(t), "negotiation-data")

	first := planning.NewStore(ctx, snap, logging.NewNopLogger())
	require.NoError(t, first.LoadExample(ctx, negotiation.VariantBuyer))

	second := planning.NewStore(ctx, snap, logging.NewNopLogger())
	assert.Equal(t, "2", second.Get().BestBatnaID)
	assert.Len(t, second.Get().Issues, 5)
}
