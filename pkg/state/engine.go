// Package state is the game state engine: location transitions, quest
// progression and combat over a single player.
package state

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Caller misuse. These are returned before any state is touched.
var (
	ErrNoEncounter  = errors.New("no active encounter")
	ErrUnknownItem  = errors.New("unknown item")
	ErrNotAWeapon   = errors.New("item is not a weapon")
	ErrNotAPotion   = errors.New("item is not a healing potion")
	ErrItemNotOwned = errors.New("item not owned")
	ErrNoExit       = errors.New("no exit in that direction")
	ErrNoPlayer     = errors.New("game has no player")
)

// GameState is everything that changes while playing: the player and the
// monster currently being fought, if any.
type GameState struct {
	Player    *actor.Player
	Encounter *actor.Monster
}

// InCombat reports whether a monster is waiting to be fought.
func (gs *GameState) InCombat() bool {
	return gs.Encounter != nil
}

// Recorder receives gameplay counters. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	RecordMove(denied bool)
	RecordQuestCompleted(quest string)
	RecordMonsterDefeated(monster string)
	RecordPlayerDefeated(monster string)
}

type nopRecorder struct{}

func (nopRecorder) RecordMove(bool)              {}
func (nopRecorder) RecordQuestCompleted(string)  {}
func (nopRecorder) RecordMonsterDefeated(string) {}
func (nopRecorder) RecordPlayerDefeated(string)  {}

// Engine applies commands to a GameState. It holds no per-game state and
// may be shared by any number of games, as long as each game is driven by
// one caller at a time.
type Engine struct {
	catalog world.Catalog
	dice    dice.Source
	logger  *slog.Logger
	metrics Recorder
}

// NewEngine creates an engine over a read-only catalog and a random source.
func NewEngine(catalog world.Catalog, src dice.Source, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if src == nil {
		src = dice.NewRandomLocked()
	}
	return &Engine{
		catalog: catalog,
		dice:    src,
		logger:  logger,
		metrics: nopRecorder{},
	}
}

// WithMetrics sets the metrics recorder.
// Returns the Engine for method chaining
func (e *Engine) WithMetrics(r Recorder) *Engine {
	if r != nil {
		e.metrics = r
	}
	return e
}

// Catalog returns the world the engine plays in.
func (e *Engine) Catalog() world.Catalog {
	return e.catalog
}

// NewGame creates a default player and enters the home location.
func (e *Engine) NewGame() (*GameState, []Event, error) {
	p, err := actor.NewDefaultPlayer(e.catalog)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create player: %w", err)
	}
	gs := &GameState{Player: p}
	events, err := e.Start(gs)
	if err != nil {
		return nil, nil, err
	}
	return gs, events, nil
}

// resolveItem looks up an owned item and checks its kind.
func (e *Engine) resolveItem(gs *GameState, itemID int, kind world.ItemKind) (*world.Item, error) {
	item, ok := e.catalog.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownItem, itemID)
	}
	switch kind {
	case world.KindWeapon:
		if !item.IsWeapon() {
			return nil, fmt.Errorf("%w: %s", ErrNotAWeapon, item.Name)
		}
	case world.KindHealingPotion:
		if !item.IsPotion() {
			return nil, fmt.Errorf("%w: %s", ErrNotAPotion, item.Name)
		}
	}
	if !gs.Player.Inventory.HasAtLeast(itemID, 1) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotOwned, item.Name)
	}
	return item, nil
}
