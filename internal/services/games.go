package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// ErrGameNotFound is returned for ids with no stored session.
var ErrGameNotFound = errors.New("game not found")

// GameView is what the API returns after every call.
type GameView struct {
	ID       uuid.UUID      `json:"id"`
	Snapshot state.Snapshot `json:"state"`
	Outcome  string         `json:"outcome,omitempty"`
	Events   []state.Event  `json:"events"`
}

// GameService runs engine commands against stored sessions.
type GameService struct {
	engine  *state.Engine
	storage storage.Storage
	cache   *SessionCache
	locks   *sessionLocks
	logger  *slog.Logger
}

// NewGameService wires an engine to a session store. cache may be nil.
func NewGameService(engine *state.Engine, store storage.Storage, cache *SessionCache, logger *slog.Logger) *GameService {
	return &GameService{
		engine:  engine,
		storage: store,
		cache:   cache,
		locks:   newSessionLocks(),
		logger:  logger,
	}
}

// Create starts a new game and stores it.
func (s *GameService) Create(ctx context.Context) (*GameView, error) {
	gs, events, err := s.engine.NewGame()
	if err != nil {
		return nil, err
	}
	sess, err := state.NewSession(gs)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Info("Game created", "session_id", sess.ID)
	return &GameView{ID: sess.ID, Snapshot: gs.Snapshot(), Events: events}, nil
}

// Get returns the current view of a game.
func (s *GameService) Get(ctx context.Context, id uuid.UUID) (*GameView, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sess, gs, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GameView{ID: sess.ID, Snapshot: gs.Snapshot(), Events: []state.Event{}}, nil
}

// Delete removes a game. Deleting a missing game is not an error.
func (s *GameService) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if s.cache != nil {
		s.cache.Invalidate(id)
	}
	if err := s.storage.DeleteSession(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Game deleted", "session_id", id)
	return nil
}

// Execute applies one command and saves the result.
func (s *GameService) Execute(ctx context.Context, id uuid.UUID, cmd state.Command) (*GameView, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sess, gs, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Execute(gs, cmd)
	if err != nil {
		return nil, err
	}
	if err := sess.Update(gs); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Debug("Command executed",
		"session_id", id,
		"command", cmd.Type,
		"outcome", res.Outcome,
		"events", len(res.Events))
	return &GameView{
		ID:       sess.ID,
		Snapshot: gs.Snapshot(),
		Outcome:  res.Outcome.String(),
		Events:   res.Events,
	}, nil
}

func (s *GameService) load(ctx context.Context, id uuid.UUID) (*state.Session, *state.GameState, error) {
	var sess *state.Session
	if s.cache != nil {
		sess, _ = s.cache.Get(id)
	}
	if sess == nil {
		loaded, err := s.storage.LoadSession(ctx, id)
		if errors.Is(err, storage.ErrCorruptSession) {
			s.logger.Warn("Unreadable game, starting over", "session_id", id, "error", err)
			return s.startOver(ctx, id)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load game: %w", err)
		}
		if loaded == nil {
			return nil, nil, ErrGameNotFound
		}
		sess = loaded
	}

	gs, replaced, err := sess.Restore(s.engine.Catalog(), s.logger)
	if err != nil {
		return nil, nil, err
	}
	if !replaced {
		return sess, gs, nil
	}

	// Persist the replacement so later reads do not repeat it.
	if _, err := s.engine.Start(gs); err != nil {
		return nil, nil, err
	}
	if err := sess.Update(gs); err != nil {
		return nil, nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, nil, err
	}
	return sess, gs, nil
}

// startOver replaces an unreadable game with a new one under the same id.
func (s *GameService) startOver(ctx context.Context, id uuid.UUID) (*state.Session, *state.GameState, error) {
	gs, _, err := s.engine.NewGame()
	if err != nil {
		return nil, nil, err
	}
	sess, err := state.NewSessionWithID(id, gs)
	if err != nil {
		return nil, nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, nil, err
	}
	return sess, gs, nil
}

func (s *GameService) save(ctx context.Context, sess *state.Session) error {
	if err := s.storage.SaveSession(ctx, sess); err != nil {
		if s.cache != nil {
			s.cache.Invalidate(sess.ID)
		}
		return fmt.Errorf("failed to save game: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(sess)
	}
	return nil
}
