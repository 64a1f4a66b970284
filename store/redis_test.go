package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisRegion_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	r := NewRedisRegion(client, "storefront", 0)

	_, ok, err := r.Get(ctx, "bb_session")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Set(ctx, "bb_session", []byte("1")))
	assert.True(t, mr.Exists("storefront:bb_session"))

	v, ok, err := r.Get(ctx, "bb_session")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", string(v))

	require.NoError(t, r.Remove(ctx, "bb_session"))
	assert.False(t, mr.Exists("storefront:bb_session"))
}

func TestRedisRegion_NoPrefix(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	r := NewRedisRegion(client, "", 0)

	require.NoError(t, r.Set(ctx, "k", []byte("v")))
	assert.True(t, mr.Exists("k"))
}

func TestRedisRegion_SessionExpires(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	r := NewRedisRegion(client, "s", 30*time.Minute)

	require.NoError(t, r.Set(ctx, "bb_session", []byte("1")))
	mr.FastForward(31 * time.Minute)

	_, ok, err := r.Get(ctx, "bb_session")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRegion_ReadSlidesExpiry(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	r := NewRedisRegion(client, "s", 30*time.Minute)

	require.NoError(t, r.Set(ctx, "bb_session", []byte("1")))
	mr.FastForward(20 * time.Minute)

	_, ok, err := r.Get(ctx, "bb_session")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(20 * time.Minute)
	_, ok, err = r.Get(ctx, "bb_session")
	require.NoError(t, err)
	assert.True(t, ok, "read should have refreshed the TTL")
}

func TestRedisRegion_BackendDown(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	r := NewRedisRegion(client, "s", 0)
	mr.Close()

	_, _, err = r.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, r.Set(ctx, "k", []byte("v")))

	res := ReadJSON(ctx, r, "k", false)
	assert.Equal(t, StatusUnavailable, res.Status)
}

func TestDialRedis_InvalidURL(t *testing.T) {
	_, err := DialRedis(context.Background(), "::not a url", "s", 0)
	assert.Error(t, err)
}

func TestDialRedis_Connects(t *testing.T) {
	mr, _ := setupTestRedis(t)
	r, err := DialRedis(context.Background(), "redis://"+mr.Addr(), "s", time.Minute)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.Set(context.Background(), "k", []byte("v")))
	assert.True(t, mr.Exists("s:k"))
}
