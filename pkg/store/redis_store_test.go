package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/ticktock/errors"
)

// MockRedisClient is a mock implementation of the RedisClient interface.
type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewStatusResult(args.String(0), args.Error(1))
}

func (m *MockRedisClient) Close() error {
	return m.Called().Error(0)
}

func ptr(s string) *string {
	return &s
}

func TestRedisStore_Miniredis(t *testing.T) {
	server := miniredis.RunT(t)

	s, err := NewRedisStore(RedisStoreOptions{URL: ptr("redis://" + server.Addr())})
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("theme", "light"))

	value, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	raw, err := server.Get("ticktock:theme")
	require.NoError(t, err)
	assert.Equal(t, "light", raw)
}

func TestRedisStore_CustomPrefix(t *testing.T) {
	server := miniredis.RunT(t)

	s, err := NewRedisStore(RedisStoreOptions{URL: ptr("redis://" + server.Addr()), Prefix: ptr("")})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("theme", "dark"))
	assert.True(t, server.Exists("theme"))
}

func TestRedisStore_URLFromEnv(t *testing.T) {
	server := miniredis.RunT(t)
	t.Setenv("REDIS_URL", "redis://"+server.Addr())

	s, err := NewRedisStore(RedisStoreOptions{})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("theme", "dark"))
	assert.True(t, server.Exists("ticktock:theme"))
}

func TestNewRedisStore_MissingURL(t *testing.T) {
	t.Setenv("REDIS_URL", "")

	_, err := NewRedisStore(RedisStoreOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrStoreOptions)
}

func TestRedisStore_Get_Error(t *testing.T) {
	mockClient := new(MockRedisClient)
	s := &RedisStore{prefix: "ticktock", redisClient: mockClient}

	mockClient.On("Get", mock.Anything, "ticktock:theme").Return("", errors.New("connection refused"))

	_, ok, err := s.Get("theme")
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, errUtils.ErrStoreRead)
	assert.Contains(t, err.Error(), "failed to get key")
	mockClient.AssertExpectations(t)
}

func TestRedisStore_Set_Error(t *testing.T) {
	mockClient := new(MockRedisClient)
	s := &RedisStore{prefix: "ticktock", redisClient: mockClient}

	mockClient.On("Set", mock.Anything, "ticktock:theme", "light", time.Duration(0)).Return("", errors.New("READONLY"))

	err := s.Set("theme", "light")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrStoreWrite)
	mockClient.AssertExpectations(t)
}
