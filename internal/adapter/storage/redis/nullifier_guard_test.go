package redis

import (
	"context"
	"crypto/rand"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func randomHash(t *testing.T) [32]byte {
	t.Helper()
	var h [32]byte
	_, err := rand.Read(h[:])
	require.NoError(t, err)
	return h
}

func TestNullifierGuard_AcquireOnce(t *testing.T) {
	_, client := setupRedis(t)
	guard := NewNullifierGuard(client)
	ctx := context.Background()
	hash := randomHash(t)

	ok, err := guard.Acquire(ctx, hash, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNullifierGuard_SecondAcquireRejected(t *testing.T) {
	_, client := setupRedis(t)
	guard := NewNullifierGuard(client)
	ctx := context.Background()
	hash := randomHash(t)

	ok, err := guard.Acquire(ctx, hash, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = guard.Acquire(ctx, hash, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire on the same nullifier must fail")
}

func TestNullifierGuard_DistinctNullifiersIndependent(t *testing.T) {
	_, client := setupRedis(t)
	guard := NewNullifierGuard(client)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, randomHash(t), time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = guard.Acquire(ctx, randomHash(t), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNullifierGuard_ReleaseAllowsReacquire(t *testing.T) {
	_, client := setupRedis(t)
	guard := NewNullifierGuard(client)
	ctx := context.Background()
	hash := randomHash(t)

	ok, err := guard.Acquire(ctx, hash, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, guard.Release(ctx, hash))

	ok, err = guard.Acquire(ctx, hash, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNullifierGuard_TTLExpiry(t *testing.T) {
	mr, client := setupRedis(t)
	guard := NewNullifierGuard(client)
	ctx := context.Background()
	hash := randomHash(t)

	ok, err := guard.Acquire(ctx, hash, 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(31 * time.Second)

	ok, err = guard.Acquire(ctx, hash, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "guard should expire after TTL")
}
