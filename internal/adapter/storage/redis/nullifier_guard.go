package redis

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NullifierGuard implements ports.NullifierGuard using Redis SET NX.
// It fences concurrent withdrawals on the same nullifier before any
// chain submission; the postgres unique constraint stays the durable
// arbiter.
type NullifierGuard struct {
	client *goredis.Client
	prefix string
}

// NewNullifierGuard creates a Redis-backed in-flight guard.
func NewNullifierGuard(client *goredis.Client) *NullifierGuard {
	return &NullifierGuard{
		client: client,
		prefix: "nullifier-inflight:",
	}
}

// Acquire atomically claims the guard for a nullifier hash. Returns
// true if this caller now holds it, false if another withdrawal for the
// same note is in flight.
func (g *NullifierGuard) Acquire(ctx context.Context, nullifierHash [32]byte, ttl time.Duration) (bool, error) {
	key := g.prefix + hex.EncodeToString(nullifierHash[:])
	result, err := g.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, another withdrawal holds the guard
			return false, nil
		}
		return false, fmt.Errorf("redis nullifier guard: %w", err)
	}
	return result == "OK", nil
}

// Release frees the guard after the withdrawal reaches a terminal
// outcome. Releasing an expired guard is a no-op.
func (g *NullifierGuard) Release(ctx context.Context, nullifierHash [32]byte) error {
	key := g.prefix + hex.EncodeToString(nullifierHash[:])
	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis nullifier guard release: %w", err)
	}
	return nil
}
