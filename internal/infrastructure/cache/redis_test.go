package cache

import (
	"context"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddr(t *testing.T) {
	assert.Equal(t, "localhost:6379", Addr(config.RedisConfig{}))
	assert.Equal(t, "cache:6380", Addr(config.RedisConfig{Host: " cache ", Port: "6380"}))
	assert.Equal(t, "[::1]:6379", Addr(config.RedisConfig{Host: "::1"}))
}

func TestRedis_UnavailableBypasses(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	hit, err := r.GetJSON(ctx, "k", &struct{}{})
	assert.False(t, hit)
	assert.NoError(t, err)
	assert.NoError(t, r.SetJSON(ctx, "k", 1, 0))
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.DeleteByPattern(ctx, "k*"))
	ok, err := r.SetIfNotExists(ctx, "k", "1", 0)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
	assert.False(t, r.Available())
	assert.NoError(t, r.Close())
}

func TestRedis_KeyPrefix(t *testing.T) {
	r := &Redis{prefix: "nexture:"}
	assert.Equal(t, "nexture:jobs:match:abc", r.key("jobs:match:abc"))
	assert.Equal(t, "analytics:u1", (&Redis{}).key("analytics:u1"))
}

// Runs against a live server when REDIS_TEST_HOST is set.
func TestRedis_RoundTrip(t *testing.T) {
	host := os.Getenv("REDIS_TEST_HOST")
	if host == "" {
		t.Skip("REDIS_TEST_HOST not set")
	}
	r := NewRedis(config.RedisConfig{Host: host, Port: os.Getenv("REDIS_TEST_PORT"), TTL: time.Minute, KeyPrefix: "nexture-test:"}, log.New(io.Discard, "", 0))
	require.True(t, r.Available())
	defer r.Close()

	ctx := context.Background()
	key := "test:cache:roundtrip"
	require.NoError(t, r.SetJSON(ctx, key, map[string]int{"n": 7}, 0))

	var got map[string]int
	hit, err := r.GetJSON(ctx, key, &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 7, got["n"])

	ok, err := r.SetIfNotExists(ctx, key+":lock", "1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.SetIfNotExists(ctx, key+":lock", "1", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.DeleteByPattern(ctx, "test:cache:*"))
	hit, err = r.GetJSON(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
