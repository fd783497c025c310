package state

import (
	"errors"
	"testing"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func TestEngine_Move_EntryDenied(t *testing.T) {
	e, _, rec := newTestEngine(t)
	gs := playerAt(t, e, locFarm, 4)
	gs.Player.Quests.Accept(mustQuest(t, e, 1))

	events, err := e.Move(gs, world.East)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	assertKinds(t, events, EventEntryDenied)
	if events[0].Message != "You must have a Pass to enter this location." {
		t.Errorf("message = %q", events[0].Message)
	}
	if gs.Player.LocationID() != locFarm {
		t.Errorf("location changed to %d", gs.Player.LocationID())
	}
	if gs.Player.HP != 4 {
		t.Errorf("denied entry should not heal, HP = %d", gs.Player.HP)
	}
	if rec.denied != 1 || rec.moves != 0 {
		t.Errorf("metrics = %+v", rec)
	}

	gs.Player.Inventory.Add(mustItem(t, e, itemPass))
	if _, err := e.Move(gs, world.East); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if gs.Player.LocationID() != locGate || gs.Player.HP != 10 {
		t.Errorf("expected healed arrival at gate, got %d HP at %d", gs.Player.HP, gs.Player.LocationID())
	}
}

func TestEngine_Move_NoExit(t *testing.T) {
	e, _, _ := newTestEngine(t)
	gs := playerAt(t, e, locHome, 10)

	_, err := e.Move(gs, world.West)
	if !errors.Is(err, ErrNoExit) {
		t.Fatalf("Move() error = %v, want ErrNoExit", err)
	}
	if gs.Player.LocationID() != locHome {
		t.Error("location should not change")
	}
}

func TestEngine_QuestLifecycle(t *testing.T) {
	e, _, rec := newTestEngine(t)
	gs, _, err := e.NewGame()
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	p := gs.Player

	// First visit offers the quest.
	events, err := e.Move(gs, world.North)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	assertKinds(t, events, EventArrived, EventQuestReceived)
	want := "You receive the Snake hunt quest.\nKill the snakes in the pit.\nTo complete the quest, return here with:\n3 Snake fangs"
	if events[1].Message != want {
		t.Errorf("quest message = %q, want %q", events[1].Message, want)
	}
	if !p.Quests.Has(1) || p.Quests.IsCompleted(1) {
		t.Fatal("quest should be accepted and pending")
	}

	// Returning without the fangs does nothing.
	mustMove(t, e, gs, world.South)
	events = mustMove(t, e, gs, world.North)
	assertKinds(t, events, EventArrived)

	for range 3 {
		p.Inventory.Add(mustItem(t, e, itemSnakeFang))
	}
	mustMove(t, e, gs, world.South)
	events = mustMove(t, e, gs, world.North)

	assertKinds(t, events, EventArrived, EventQuestCompleted, EventReward, EventReward, EventReward)
	if events[1].Message != "You complete the Snake hunt quest." {
		t.Errorf("completion message = %q", events[1].Message)
	}
	if !p.Quests.IsCompleted(1) {
		t.Error("quest should be completed")
	}
	if p.Inventory.Quantity(itemSnakeFang) != 0 {
		t.Errorf("fangs = %d, want 0", p.Inventory.Quantity(itemSnakeFang))
	}
	if p.XP != 120 || p.Gold != 40 {
		t.Errorf("xp/gold = %d/%d, want 120/40", p.XP, p.Gold)
	}
	if p.Level() != 2 {
		t.Errorf("Level() = %d, want 2", p.Level())
	}
	if p.Inventory.Quantity(itemPotion) != 1 {
		t.Error("reward potion missing")
	}

	// Completed quests are neither re-offered nor re-granted.
	for range 3 {
		p.Inventory.Add(mustItem(t, e, itemSnakeFang))
	}
	mustMove(t, e, gs, world.South)
	events = mustMove(t, e, gs, world.North)
	assertKinds(t, events, EventArrived)
	if p.XP != 120 || p.Inventory.Quantity(itemSnakeFang) != 3 {
		t.Error("completed quest should not pay out twice")
	}
	if rec.quests != 1 {
		t.Errorf("quest metric = %d, want 1", rec.quests)
	}
}

func TestEngine_MoveTo_EncounterSetup(t *testing.T) {
	e, _, _ := newTestEngine(t)
	gs := playerAt(t, e, locFarm, 10)
	gs.Player.Quests.Accept(mustQuest(t, e, 1))

	events := mustMove(t, e, gs, world.North)
	assertKinds(t, events, EventArrived, EventMonsterSighted)
	if events[1].Message != "You see a Snake." {
		t.Errorf("message = %q", events[1].Message)
	}
	if gs.Encounter == nil || gs.Encounter.HP != 5 || len(gs.Encounter.LootTable) != 2 {
		t.Fatalf("unexpected encounter %+v", gs.Encounter)
	}

	mustMove(t, e, gs, world.South)
	if gs.Encounter != nil {
		t.Error("leaving should clear the encounter")
	}
}

func mustMove(t *testing.T, e *Engine, gs *GameState, dir world.Direction) []Event {
	t.Helper()
	events, err := e.Move(gs, dir)
	if err != nil {
		t.Fatalf("Move(%s) error = %v", dir, err)
	}
	return events
}

func mustItem(t *testing.T, e *Engine, id int) *world.Item {
	t.Helper()
	item, ok := e.catalog.Item(id)
	if !ok {
		t.Fatalf("unknown item %d", id)
	}
	return item
}

func mustQuest(t *testing.T, e *Engine, id int) *world.Quest {
	t.Helper()
	q, ok := e.catalog.Quest(id)
	if !ok {
		t.Fatalf("unknown quest %d", id)
	}
	return q
}
