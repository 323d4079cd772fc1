package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisRevocationStore(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	store := NewRedisRevocationStore(rdb, time.Hour)
	ctx := context.Background()

	_, ok, err := store.RoleChangedAt(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Unix(1_780_000_000, 0)
	require.NoError(t, store.MarkRoleChanged(ctx, "ann@example.com", at))

	got, ok, err := store.RoleChangedAt(ctx, "ann@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, at.Add(time.Second).Equal(got))

	mr.FastForward(61 * time.Minute)
	_, ok, err = store.RoleChangedAt(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRevocationStoreCorruptValue(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	store := NewRedisRevocationStore(rdb, time.Hour)
	require.NoError(t, mr.Set(roleChangedKeyPrefix+"ann@example.com", "yesterday"))

	_, _, err := store.RoleChangedAt(context.Background(), "ann@example.com")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb, err := NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	_ = rdb.Close()

	_, err = NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 500, time.UTC)
	store.now = fixedClock(now)
	ctx := context.Background()

	require.NoError(t, store.MarkRoleChanged(ctx, "ann@example.com", now))
	got, ok, err := store.RoleChangedAt(ctx, "ann@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, now.Truncate(time.Second).Add(time.Second), got)

	store.now = fixedClock(now.Add(2 * time.Hour))
	_, ok, _ = store.RoleChangedAt(ctx, "ann@example.com")
	assert.False(t, ok)
}

func TestSameSecondTokenIsSuperseded(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokenService("s3cret", time.Hour)
	stores := map[string]RevocationStore{"memory": NewMemoryRevocationStore(time.Hour)}
	_, rdb := newMiniRedis(t)
	stores["redis"] = NewRedisRevocationStore(rdb, time.Hour)

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if m, ok := store.(*MemoryRevocationStore); ok {
				m.now = fixedClock(base)
			}
			ctx := context.Background()

			tokens.now = fixedClock(base.Add(200 * time.Millisecond))
			stale, err := tokens.Issue(map[string]any{"email": "ann@example.com"})
			require.NoError(t, err)

			require.NoError(t, store.MarkRoleChanged(ctx, "ann@example.com", base.Add(700*time.Millisecond)))
			changedAt, ok, err := store.RoleChangedAt(ctx, "ann@example.com")
			require.NoError(t, err)
			require.True(t, ok)

			claims, err := tokens.Verify(stale)
			require.NoError(t, err)
			assert.True(t, Superseded(claims, changedAt))

			tokens.now = fixedClock(base.Add(time.Second))
			fresh, err := tokens.Issue(map[string]any{"email": "ann@example.com"})
			require.NoError(t, err)
			claims, err = tokens.Verify(fresh)
			require.NoError(t, err)
			assert.False(t, Superseded(claims, changedAt))
		})
	}
}
