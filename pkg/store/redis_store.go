package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	errUtils "github.com/cloudposse/ticktock/errors"
)

const (
	defaultRedisPrefix = "ticktock"
	redisURLEnv        = "REDIS_URL"
	redisTimeout       = 5 * time.Second
)

// RedisClient is the subset of the go-redis client used by RedisStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisStoreOptions configures the Redis backend.
type RedisStoreOptions struct {
	// URL is a redis:// URL. Falls back to the REDIS_URL environment variable.
	URL *string `mapstructure:"url"`
	// Prefix namespaces keys. Defaults to "ticktock".
	Prefix *string `mapstructure:"prefix"`
}

// RedisStore shares preferences through a Redis server.
type RedisStore struct {
	prefix      string
	redisClient RedisClient
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects lazily; the first Get or Set reaches the server.
func NewRedisStore(opts RedisStoreOptions) (*RedisStore, error) {
	url := os.Getenv(redisURLEnv)
	if opts.URL != nil && *opts.URL != "" {
		url = *opts.URL
	}
	if url == "" {
		return nil, fmt.Errorf("%w: redis store requires options.url or %s", errUtils.ErrStoreOptions, redisURLEnv)
	}

	parsed, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUtils.ErrStoreOptions, err)
	}

	prefix := defaultRedisPrefix
	if opts.Prefix != nil {
		prefix = *opts.Prefix
	}

	return &RedisStore{
		prefix:      prefix,
		redisClient: redis.NewClient(parsed),
	}, nil
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	value, err := s.redisClient.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: failed to get key %s: %w", errUtils.ErrStoreRead, key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := s.redisClient.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: failed to set key %s: %w", errUtils.ErrStoreWrite, key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.redisClient.Close()
}
