package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers when a user's role last changed so tokens minted
// before the change can be refused. Entries only need to outlive the token
// TTL.
type RevocationStore interface {
	MarkRoleChanged(ctx context.Context, email string, at time.Time) error
	// RoleChangedAt returns ok=false when no change is on record. Tokens issued
	// before the returned time are stale.
	RoleChangedAt(ctx context.Context, email string) (at time.Time, ok bool, err error)
}

const roleChangedKeyPrefix = "studyhive:role-changed:"

// revokedUntil rounds a role change up to the next whole second. iat only has
// second resolution, so every token minted in the second of the change is
// refused along with older ones.
func revokedUntil(at time.Time) time.Time {
	return at.Truncate(time.Second).Add(time.Second)
}

// Superseded reports whether claims were issued before the recorded role
// change.
func Superseded(claims jwt.MapClaims, changedAt time.Time) bool {
	return IssuedAt(claims).Before(changedAt)
}

type RedisRevocationStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRevocationStore(rdb *redis.Client, ttl time.Duration) *RedisRevocationStore {
	return &RedisRevocationStore{rdb: rdb, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (s *RedisRevocationStore) MarkRoleChanged(ctx context.Context, email string, at time.Time) error {
	return s.rdb.Set(ctx, roleChangedKeyPrefix+email, revokedUntil(at).Unix(), s.ttl).Err()
}

func (s *RedisRevocationStore) RoleChangedAt(ctx context.Context, email string) (time.Time, bool, error) {
	raw, err := s.rdb.Get(ctx, roleChangedKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.Unix(secs, 0), true, nil
}

// MemoryRevocationStore serves single-instance deployments without Redis.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	changed map[string]time.Time
}

func NewMemoryRevocationStore(ttl time.Duration) *MemoryRevocationStore {
	return &MemoryRevocationStore{ttl: ttl, now: time.Now, changed: map[string]time.Time{}}
}

func (s *MemoryRevocationStore) MarkRoleChanged(_ context.Context, email string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changed[email] = revokedUntil(at)
	return nil
}

func (s *MemoryRevocationStore) RoleChangedAt(_ context.Context, email string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.changed[email]
	if !ok {
		return time.Time{}, false, nil
	}
	if s.now().Sub(at) > s.ttl {
		delete(s.changed, email)
		return time.Time{}, false, nil
	}
	return at, true, nil
}
