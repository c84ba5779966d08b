// Package keymutex provides mutual exclusion scoped to individual keys.
// Holders of different keys never block each other; lock state for a key
// is reclaimed as soon as nobody holds or waits for it.
package keymutex

import (
	"context"
	"sync"
)

type lock struct {
	sem  chan struct{}
	refs int
}

// KeyedMutex serializes critical sections per int64 key. The zero value is
// not usable; construct with New.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*lock
}

func New() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[int64]*lock),
	}
}

// Lock acquires the mutex for key, blocking until it is free or ctx is
// done. On success it returns the release function; the caller must invoke
// it exactly once. If ctx is done first, no lock is held and ctx.Err() is
// returned.
func (m *KeyedMutex) Lock(ctx context.Context, key int64) (func(), error) {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &lock{sem: make(chan struct{}, 1)}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	select {
	case l.sem <- struct{}{}:
		return func() {
			<-l.sem
			m.release(key, l)
		}, nil
	case <-ctx.Done():
		m.release(key, l)
		return nil, ctx.Err()
	}
}

func (m *KeyedMutex) release(key int64, l *lock) {
	m.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}

// Len reports how many keys currently have holders or waiters.
func (m *KeyedMutex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
