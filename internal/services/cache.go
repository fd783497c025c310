package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// SessionCache is an in-memory LRU of recently played sessions in front of
// storage, with time-based expiry.
type SessionCache struct {
	lru *expirable.LRU[uuid.UUID, *state.Session]
}

// NewSessionCache creates a cache holding at most size sessions for ttl.
// A zero ttl disables expiry.
func NewSessionCache(size int, ttl time.Duration) *SessionCache {
	return &SessionCache{
		lru: expirable.NewLRU[uuid.UUID, *state.Session](size, nil, ttl),
	}
}

// Get returns the cached session for id.
func (c *SessionCache) Get(id uuid.UUID) (*state.Session, bool) {
	return c.lru.Get(id)
}

// Set stores s under its id.
func (c *SessionCache) Set(s *state.Session) {
	c.lru.Add(s.ID, s)
}

// Invalidate removes a session from the cache.
func (c *SessionCache) Invalidate(id uuid.UUID) {
	c.lru.Remove(id)
}

// Len reports the number of cached sessions.
func (c *SessionCache) Len() int {
	return c.lru.Len()
}
