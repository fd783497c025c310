package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// ErrCorruptSession is returned by LoadSession when a stored session
// exists but cannot be decoded.
var ErrCorruptSession = errors.New("corrupt session")

// Storage persists game sessions. Loading a missing session returns
// nil, nil.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Session operations
	SaveSession(ctx context.Context, s *state.Session) error
	LoadSession(ctx context.Context, id uuid.UUID) (*state.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	ListSessions(ctx context.Context) ([]uuid.UUID, error)
}
