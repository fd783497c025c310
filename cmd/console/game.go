package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

var errUnknownCommand = errors.New("unknown command")

// Game is one local play-through backed by a session store.
type Game struct {
	engine  *state.Engine
	store   storage.Storage
	session *state.Session
	gs      *state.GameState
	logger  *slog.Logger
}

// OpenGame resumes the most recently saved session, or starts a new game
// when there is none. The returned events describe where the player is.
func OpenGame(ctx context.Context, engine *state.Engine, store storage.Storage, logger *slog.Logger) (*Game, []state.Event, error) {
	g := &Game{engine: engine, store: store, logger: logger}

	sess, unreadable, err := latestSession(ctx, store, logger)
	if err != nil {
		return nil, nil, err
	}

	if sess == nil {
		gs, events, err := engine.NewGame()
		if err != nil {
			return nil, nil, err
		}
		// Reuse an unreadable save's id so the new game overwrites it.
		id := uuid.New()
		if len(unreadable) > 0 {
			id = unreadable[0]
		}
		if g.session, err = state.NewSessionWithID(id, gs); err != nil {
			return nil, nil, err
		}
		g.gs = gs
		logger.Info("Started new game", "session_id", g.session.ID)
		return g, events, g.Save(ctx)
	}

	gs, replaced, err := sess.Restore(engine.Catalog(), logger)
	if err != nil {
		return nil, nil, err
	}
	g.session = sess
	g.gs = gs

	var events []state.Event
	if replaced {
		events, err = engine.Start(gs)
	} else {
		var res *state.Result
		if res, err = engine.Execute(gs, state.Command{Type: state.CmdLook}); err == nil {
			events = res.Events
		}
	}
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Resumed game", "session_id", sess.ID, "replaced", replaced)
	return g, events, nil
}

// latestSession returns the session updated most recently, or nil, and
// the ids of saves that could not be read. Unreadable saves are skipped.
func latestSession(ctx context.Context, store storage.Storage, logger *slog.Logger) (*state.Session, []uuid.UUID, error) {
	ids, err := store.ListSessions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list saves: %w", err)
	}

	var (
		latest     *state.Session
		unreadable []uuid.UUID
	)
	for _, id := range ids {
		sess, err := store.LoadSession(ctx, id)
		if errors.Is(err, storage.ErrCorruptSession) {
			logger.Warn("Skipping unreadable save", "session_id", id, "error", err)
			unreadable = append(unreadable, id)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load save %s: %w", id, err)
		}
		if sess != nil && (latest == nil || sess.UpdatedAt.After(latest.UpdatedAt)) {
			latest = sess
		}
	}
	return latest, unreadable, nil
}

// Play parses and runs one line of input, then saves.
func (g *Game) Play(ctx context.Context, input string) ([]state.Event, error) {
	cmd := state.ParseCommand(input)
	if cmd.Type == state.CmdNone {
		return nil, errUnknownCommand
	}

	res, err := g.engine.Execute(g.gs, cmd)
	if err != nil {
		return nil, err
	}
	if err := g.Save(ctx); err != nil {
		return res.Events, err
	}
	return res.Events, nil
}

// Save writes the current state to the store.
func (g *Game) Save(ctx context.Context) error {
	if err := g.session.Update(g.gs); err != nil {
		return err
	}
	if err := g.store.SaveSession(ctx, g.session); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

func (g *Game) Snapshot() state.Snapshot {
	return g.gs.Snapshot()
}

// describeError turns engine errors into something a player can act on.
func describeError(err error) string {
	switch {
	case errors.Is(err, errUnknownCommand):
		return "I don't understand. Type /help for a list of commands."
	case errors.Is(err, state.ErrNoExit):
		return "You cannot go that way."
	case errors.Is(err, state.ErrNoEncounter):
		return "There is nothing here to fight."
	case errors.Is(err, state.ErrNotAWeapon):
		return "You cannot attack with that."
	case errors.Is(err, state.ErrNotAPotion):
		return "You cannot drink that."
	case errors.Is(err, state.ErrItemNotOwned):
		return "You do not have that."
	case errors.Is(err, state.ErrUnknownItem):
		return "There is no such item."
	default:
		return "Error: " + err.Error()
	}
}
