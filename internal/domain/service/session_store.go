package service

import (
	"context"
	"time"

	"forthecos/internal/domain/studio"
	"forthecos/internal/errors"
)

// Errors returned by session stores.
var (
	ErrSessionNotFound = errors.New("studio session not found")
	ErrLockHeld        = errors.New("lock is held")
)

// Unlock releases a lock taken from a SessionStore.
type Unlock func()

// SessionStore keeps studio sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*studio.Session, error)
	Put(ctx context.Context, session *studio.Session) error
	Delete(ctx context.Context, id string) error

	// Lock serializes read-modify-write on one session, waiting up to wait.
	Lock(ctx context.Context, id string, wait time.Duration) (Unlock, error)

	// TryLock takes a named lock without waiting and returns ErrLockHeld if taken.
	TryLock(ctx context.Context, key string, ttl time.Duration) (Unlock, error)
}
