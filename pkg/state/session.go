package state

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Session is the persisted form of one game: the player record and the
// live encounter, if a fight was in progress.
type Session struct {
	ID        uuid.UUID       `json:"id"`
	Player    json.RawMessage `json:"player"`
	Encounter *actor.Monster  `json:"encounter,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewSession snapshots gs under a fresh id.
func NewSession(gs *GameState) (*Session, error) {
	return NewSessionWithID(uuid.New(), gs)
}

// NewSessionWithID snapshots gs under id. It is used to start over in
// place of a save that could not be read.
func NewSessionWithID(id uuid.UUID, gs *GameState) (*Session, error) {
	s := &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Update(gs); err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces the stored snapshot with gs.
func (s *Session) Update(gs *GameState) error {
	if gs == nil || gs.Player == nil {
		return ErrNoPlayer
	}
	data, err := json.Marshal(gs.Player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}
	s.Player = data
	s.Encounter = nil
	if gs.Encounter != nil {
		s.Encounter = cloneMonster(gs.Encounter)
	}
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Restore rebuilds the game. A malformed player record yields a fresh
// default player. An encounter that no longer matches the player's
// location is dropped. The bool reports whether the player was replaced.
func (s *Session) Restore(catalog world.Catalog, logger *slog.Logger) (*GameState, bool, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("session_id", s.ID)

	var (
		p   *actor.Player
		err error
		rec actor.Record
	)
	if json.Unmarshal(s.Player, &rec) == nil {
		p, err = actor.PlayerFromRecord(&rec, catalog)
	}
	replaced := p == nil || err != nil
	if replaced {
		p, err = actor.LoadPlayer(s.Player, catalog, logger)
		if err != nil {
			return nil, false, err
		}
	}

	gs := &GameState{Player: p}
	if s.Encounter == nil || replaced {
		return gs, replaced, nil
	}
	if p.Location != nil && p.Location.MonsterLivingHere == s.Encounter.TemplateID && !s.Encounter.IsDefeated() {
		gs.Encounter = cloneMonster(s.Encounter)
	} else {
		logger.Warn("Dropping stale encounter",
			"monster", s.Encounter.TemplateID,
			"location", p.LocationID())
	}
	return gs, false, nil
}

func cloneMonster(m *actor.Monster) *actor.Monster {
	c := *m
	c.LootTable = slices.Clone(m.LootTable)
	return &c
}
