// Package cache provides the studio session stores and their locks.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"forthecos/internal/domain/service"
	"forthecos/internal/domain/studio"
	"forthecos/internal/errors"
)

const pruneEvery = 128

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// sessionLock is a per-session mutex shared by its holder and waiters.
// It is dropped from the map once refs reaches zero.
type sessionLock struct {
	ch   chan struct{}
	refs int
}

type namedLock struct {
	token     uint64
	expiresAt time.Time
}

// memoryStore keeps sessions in process. Sessions are stored encoded so
// callers never share a *studio.Session.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	locks    map[string]*sessionLock
	named    map[string]namedLock
	ttl      time.Duration
	now      func() time.Time
	puts     int
	tokens   uint64
}

// NewMemoryStore creates an in-process session store.
func NewMemoryStore(ttl time.Duration) service.SessionStore {
	return &memoryStore{
		sessions: make(map[string]memoryEntry),
		locks:    make(map[string]*sessionLock),
		named:    make(map[string]namedLock),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *memoryStore) Get(_ context.Context, id string) (*studio.Session, error) {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	if ok && m.expired(entry.expiresAt) {
		delete(m.sessions, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, service.ErrSessionNotFound
	}

	var session studio.Session
	if err := json.Unmarshal(entry.data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &session, nil
}

func (m *memoryStore) Put(_ context.Context, session *studio.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID] = memoryEntry{data: data, expiresAt: m.expiry(m.ttl)}
	m.puts++
	if m.puts%pruneEvery == 0 {
		m.pruneLocked()
	}

	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)

	return nil
}

// Lock waits for the per-session mutex until wait elapses or ctx ends.
func (m *memoryStore) Lock(ctx context.Context, id string, wait time.Duration) (service.Unlock, error) {
	m.mu.Lock()
	lock, ok := m.locks[id]
	if !ok {
		lock = &sessionLock{ch: make(chan struct{}, 1)}
		m.locks[id] = lock
	}
	lock.refs++
	m.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case lock.ch <- struct{}{}:
	case <-timer.C:
		m.release(id, lock)

		return nil, service.ErrLockHeld
	case <-ctx.Done():
		m.release(id, lock)

		return nil, errors.WithStack(ctx.Err())
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			<-lock.ch
			m.release(id, lock)
		})
	}, nil
}

func (m *memoryStore) release(id string, lock *sessionLock) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock.refs--
	if lock.refs == 0 && m.locks[id] == lock {
		delete(m.locks, id)
	}
}

// TryLock takes a named lock that expires after ttl even if never released.
func (m *memoryStore) TryLock(_ context.Context, key string, ttl time.Duration) (service.Unlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if held, ok := m.named[key]; ok && !m.expired(held.expiresAt) {
		return nil, service.ErrLockHeld
	}

	m.tokens++
	token := m.tokens
	m.named[key] = namedLock{token: token, expiresAt: m.expiry(ttl)}

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if held, ok := m.named[key]; ok && held.token == token {
			delete(m.named, key)
		}
	}, nil
}

func (m *memoryStore) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}

	return m.now().Add(ttl)
}

func (m *memoryStore) expired(at time.Time) bool {
	return !at.IsZero() && !m.now().Before(at)
}

func (m *memoryStore) pruneLocked() {
	for id, entry := range m.sessions {
		if m.expired(entry.expiresAt) {
			delete(m.sessions, id)
		}
	}
	for key, held := range m.named {
		if m.expired(held.expiresAt) {
			delete(m.named, key)
		}
	}
}
