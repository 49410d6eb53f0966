package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RevokeInMemory(t *testing.T) {
	ctx := context.Background()
	m := NewManager(nil)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	revoked, err := m.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, m.Revoke(ctx, "jti-1", base.Add(time.Hour)))
	revoked, err = m.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// 令牌过期后记录不再生效
	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	revoked, err = m.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestManager_RevokeExpiredIsNoop(t *testing.T) {
	ctx := context.Background()
	m := NewManager(nil)

	require.NoError(t, m.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
	assert.Empty(t, m.memory)
}

func TestManager_Prune(t *testing.T) {
	ctx := context.Background()
	m := NewManager(nil)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	require.NoError(t, m.Revoke(ctx, "short", base.Add(time.Minute)))
	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	require.NoError(t, m.Revoke(ctx, "long", base.Add(time.Hour)))

	assert.Len(t, m.memory, 1)
	assert.Contains(t, m.memory, "long")
}

func TestManager_RedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	m := NewManager(client)

	assert.Error(t, m.Revoke(ctx, "jti", time.Now().Add(time.Hour)))
	// 内存记录仍然生效
	revoked, err := m.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = m.IsRevoked(ctx, "unknown")
	assert.Error(t, err)
}
