package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/stretchr/testify/assert"
)

func TestSessionCache(t *testing.T) {
	c := NewSessionCache(2, time.Hour)
	a := &state.Session{ID: uuid.New()}
	b := &state.Session{ID: uuid.New()}
	d := &state.Session{ID: uuid.New()}

	c.Set(a)
	c.Set(b)
	got, ok := c.Get(a.ID)
	assert.True(t, ok)
	assert.Same(t, a, got)

	// a was used most recently, so b is evicted
	c.Set(d)
	_, ok = c.Get(b.ID)
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Invalidate(a.ID)
	_, ok = c.Get(a.ID)
	assert.False(t, ok)
}

func TestSessionCache_Expiry(t *testing.T) {
	c := NewSessionCache(4, 20*time.Millisecond)
	s := &state.Session{ID: uuid.New()}
	c.Set(s)

	assert.Eventually(t, func() bool {
		_, ok := c.Get(s.ID)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestSessionLocks(t *testing.T) {
	l := newSessionLocks()
	id := uuid.New()

	unlock := l.lock(id)
	acquired := make(chan struct{})
	go func() {
		release := l.lock(id)
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock should wait")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired")
	}

	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.locks) == 0
	}, time.Second, 5*time.Millisecond)
}
