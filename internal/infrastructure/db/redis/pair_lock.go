package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/core/ports"
)

const (
	defaultLockTTL = 5 * time.Second
	retryInterval  = 25 * time.Millisecond
	lockKeyPrefix  = "presensi:lock:"
)

// releaseScript deletes the lock only while it still holds our token, so an
// expired lock taken over by another instance is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// PairLock is an AdmissionGuard backed by a Redis lock per key. It serializes
// admissions for the same pair across every API instance sharing the Redis.
// Key format: presensi:lock:<jamaah_id>:<kajian_id>
type PairLock struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewPairLock creates a PairLock. If ttl <= 0, defaultLockTTL is used.
func NewPairLock(client *redis.Client, ttl time.Duration, log zerolog.Logger) *PairLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &PairLock{client: client, ttl: ttl, log: log}
}

// Do acquires the lock for key, runs fn and releases the lock. Failing to
// reach Redis or to acquire the lock within one TTL yields an error wrapping
// ports.ErrGuardUnavailable.
func (l *PairLock) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	lockKey := lockKeyPrefix + key
	token := uuid.NewString()

	if err := l.acquire(ctx, lockKey, token); err != nil {
		return err
	}
	defer l.release(lockKey, token)

	return fn(ctx)
}

func (l *PairLock) acquire(ctx context.Context, lockKey, token string) error {
	deadline := time.Now().Add(l.ttl)
	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("%w: lock %s: %v", ports.ErrGuardUnavailable, lockKey, err)
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: lock %s: held for longer than %s", ports.ErrGuardUnavailable, lockKey, l.ttl)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: lock %s: %v", ports.ErrGuardUnavailable, lockKey, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *PairLock) release(lockKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultDialTimeout)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		l.log.Warn().Err(err).Str("key", lockKey).Msg("admission lock release failed")
	}
}
