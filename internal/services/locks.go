package services

import (
	"sync"

	"github.com/google/uuid"
)

// sessionLocks hands out one mutex per session so commands for the same
// game run one at a time.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu      sync.Mutex
	waiters int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[uuid.UUID]*lockEntry)}
}

// lock blocks until the session is free and returns its unlock func.
func (l *sessionLocks) lock(id uuid.UUID) func() {
	l.mu.Lock()
	e, ok := l.locks[id]
	if !ok {
		e = &lockEntry{}
		l.locks[id] = e
	}
	e.waiters++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.waiters--
		if e.waiters == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
