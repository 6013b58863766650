package cache

import (
	"context"
	"encoding/json"
	"time"

	"forthecos/internal/domain/service"
	"forthecos/internal/domain/studio"
	"forthecos/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "forthecos:"
	sessionLockTTL   = 30 * time.Second
	lockRetryDelay   = 25 * time.Millisecond
)

// releaseScript deletes a lock only if it still holds our token.
//
//nolint:gochecknoglobals
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a session store backed by Redis. Sessions are JSON
// values that expire after ttl; locks use SET NX with a random token.
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) service.SessionStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisStore{client: client, prefix: prefix, ttl: ttl}
}

func (r *redisStore) Get(ctx context.Context, id string) (*studio.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	var session studio.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &session, nil
}

func (r *redisStore) Put(ctx context.Context, session *studio.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := r.client.Set(ctx, r.sessionKey(session.ID), data, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	return errors.WithStack(r.client.Del(ctx, r.sessionKey(id)).Err())
}

// Lock polls SET NX until it wins or wait elapses.
func (r *redisStore) Lock(ctx context.Context, id string, wait time.Duration) (service.Unlock, error) {
	key := r.prefix + "lock:session:" + id
	deadline := time.Now().Add(wait)

	for {
		unlock, err := r.acquire(ctx, key, sessionLockTTL)
		if !errors.Is(err, service.ErrLockHeld) {
			return unlock, err
		}
		if time.Now().After(deadline) {
			return nil, service.ErrLockHeld
		}

		select {
		case <-time.After(lockRetryDelay):
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		}
	}
}

func (r *redisStore) TryLock(ctx context.Context, key string, ttl time.Duration) (service.Unlock, error) {
	return r.acquire(ctx, r.prefix+"lock:"+key, ttl)
}

func (r *redisStore) acquire(ctx context.Context, key string, ttl time.Duration) (service.Unlock, error) {
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to take lock")
	}
	if !ok {
		return nil, service.ErrLockHeld
	}

	return func() {
		// Released with a fresh context so a canceled request still frees the lock.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, r.client, []string{key}, token).Err()
	}, nil
}

func (r *redisStore) sessionKey(id string) string {
	return r.prefix + "session:" + id
}
