// Package redis implements the redis snapshot backend: the aggregate is
// kept under a single fixed key with no expiry.
package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/pkg/errors"
)

// Store persists the snapshot under <key_prefix><snapshot_name>.
type Store struct {
	client *goredis.Client
	key    string
	log    logging.Logger
}

var _ planning.SnapshotStore = (*Store)(nil)

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, cfg config.RedisStorageConfig, name string, log logging.Logger) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to connect to redis")
	}

	return &Store{
		client: client,
		key:    cfg.KeyPrefix + name,
		log:    log.Named("storage.redis"),
	}, nil
}

// NewWithClient wraps an existing client; the caller keeps ownership of its
// lifecycle. Used by integration tests.
func NewWithClient(client *goredis.Client, key string, log logging.Logger) *Store {
	return &Store{client: client, key: key, log: log.Named("storage.redis")}
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, planning.ErrSnapshotNotFound
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to read snapshot key")
	}
	return payload, nil
}

func (s *Store) Save(ctx context.Context, payload []byte) error {
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageWriteFailed, "failed to write snapshot key")
	}
	s.log.Debug("snapshot written", logging.String("key", s.key), logging.Int("bytes", len(payload)))
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
