package actor

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestPlayer_RecordRoundTrip(t *testing.T) {
	w := testWorld()
	p, err := NewDefaultPlayer(w)
	if err != nil {
		t.Fatalf("NewDefaultPlayer() error = %v", err)
	}
	p.HP = 7
	p.XP = 130
	p.Gold = 55
	p.Location, _ = w.Location(2)
	for range 3 {
		p.Inventory.Add(mustItem(w, 2))
	}
	p.Quests.Accept(mustQuest(w, 1))
	p.Quests.Accept(mustQuest(w, 2))
	p.Quests.Complete(2)

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	restored, err := LoadPlayer(data, w, quietLogger)
	if err != nil {
		t.Fatalf("LoadPlayer() error = %v", err)
	}

	if restored.HP != 7 || restored.MaxHP != 10 || restored.Gold != 55 || restored.XP != 130 {
		t.Errorf("stats = %d/%d gold %d xp %d", restored.HP, restored.MaxHP, restored.Gold, restored.XP)
	}
	if restored.Level() != 2 {
		t.Errorf("Level() = %d, want 2", restored.Level())
	}
	if restored.LocationID() != 2 {
		t.Errorf("location = %d, want 2", restored.LocationID())
	}
	if restored.Inventory.Quantity(2) != 3 || restored.Inventory.Quantity(1) != 1 {
		t.Errorf("inventory not restored: %+v", restored.Record().Inventory)
	}
	if !restored.Quests.Has(1) || restored.Quests.IsCompleted(1) {
		t.Error("quest 1 should be accepted and pending")
	}
	if !restored.Quests.IsCompleted(2) {
		t.Error("quest 2 should be completed")
	}
}

func TestLoadPlayer_FallsBackToDefault(t *testing.T) {
	w := testWorld()

	tests := []struct {
		name string
		data string
	}{
		{"not json", "<player/>"},
		{"empty", ""},
		{"unknown location", `{"hp":5,"max_hp":10,"location_id":77}`},
		{"unknown item", `{"hp":5,"max_hp":10,"location_id":1,"inventory":[{"item_id":99,"quantity":1}]}`},
		{"unknown quest", `{"hp":5,"max_hp":10,"location_id":1,"quests":[{"quest_id":42}]}`},
		{"zero max hp", `{"hp":0,"max_hp":0,"location_id":1}`},
		{"negative quantity", `{"hp":5,"max_hp":10,"location_id":1,"inventory":[{"item_id":2,"quantity":-1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LoadPlayer([]byte(tt.data), w, quietLogger)
			if err != nil {
				t.Fatalf("LoadPlayer() error = %v", err)
			}
			if p.HP != DefaultHP || p.Gold != DefaultGold || p.XP != 0 {
				t.Errorf("expected a default player, got hp %d gold %d xp %d", p.HP, p.Gold, p.XP)
			}
			if p.LocationID() != w.HomeLocationID() {
				t.Errorf("expected home location, got %d", p.LocationID())
			}
		})
	}
}

func TestPlayerFromRecord_ReplaysZeroQuantity(t *testing.T) {
	w := testWorld()
	rec := &Record{HP: 4, MaxHP: 10, LocationID: 1, Inventory: []RecordItem{{ItemID: 2, Quantity: 0}}}

	p, err := PlayerFromRecord(rec, w)
	if err != nil {
		t.Fatalf("PlayerFromRecord() error = %v", err)
	}
	if p.Inventory.HasItem(2) {
		t.Error("replaying zero additions should not create an entry")
	}
}
