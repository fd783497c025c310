package actor

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// RecordItem is one persisted inventory entry.
type RecordItem struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// RecordQuest is one persisted quest entry.
type RecordQuest struct {
	QuestID   int  `json:"quest_id"`
	Completed bool `json:"completed"`
}

// Record is the flat, serializable form of a Player. Everything is
// referenced by catalog id.
type Record struct {
	HP         int           `json:"hp"`
	MaxHP      int           `json:"max_hp"`
	Gold       int           `json:"gold"`
	XP         int           `json:"xp"`
	LocationID int           `json:"location_id"`
	Inventory  []RecordItem  `json:"inventory"`
	Quests     []RecordQuest `json:"quests"`
}

// Record flattens the player for persistence.
func (p *Player) Record() Record {
	rec := Record{
		HP:         p.HP,
		MaxHP:      p.MaxHP,
		Gold:       p.Gold,
		XP:         p.XP,
		LocationID: p.LocationID(),
		Inventory:  make([]RecordItem, 0),
		Quests:     make([]RecordQuest, 0),
	}
	for _, e := range p.Inventory.Entries() {
		rec.Inventory = append(rec.Inventory, RecordItem{ItemID: e.Item.ID, Quantity: e.Quantity})
	}
	for _, pq := range p.Quests.Entries() {
		rec.Quests = append(rec.Quests, RecordQuest{QuestID: pq.Quest.ID, Completed: pq.Completed})
	}
	return rec
}

// MarshalJSON encodes the player as its Record.
func (p *Player) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return json.Marshal(p.Record())
}

// PlayerFromRecord rebuilds a player from rec, resolving ids through
// catalog. Inventory is rebuilt by replaying one Add per unit.
func PlayerFromRecord(rec *Record, catalog world.Catalog) (*Player, error) {
	if rec == nil {
		return nil, errors.New("record cannot be nil")
	}
	if rec.MaxHP <= 0 {
		return nil, fmt.Errorf("invalid max hp %d", rec.MaxHP)
	}
	if rec.HP > rec.MaxHP {
		return nil, fmt.Errorf("hp %d exceeds max hp %d", rec.HP, rec.MaxHP)
	}

	p := NewPlayer(rec.HP, rec.MaxHP, rec.Gold, rec.XP)

	loc, ok := catalog.Location(rec.LocationID)
	if !ok {
		return nil, fmt.Errorf("unknown location %d", rec.LocationID)
	}
	p.Location = loc

	for _, ri := range rec.Inventory {
		item, ok := catalog.Item(ri.ItemID)
		if !ok {
			return nil, fmt.Errorf("unknown item %d", ri.ItemID)
		}
		if ri.Quantity < 0 {
			return nil, fmt.Errorf("item %d: negative quantity %d", ri.ItemID, ri.Quantity)
		}
		for range ri.Quantity {
			p.Inventory.Add(item)
		}
	}

	for _, rq := range rec.Quests {
		quest, ok := catalog.Quest(rq.QuestID)
		if !ok {
			return nil, fmt.Errorf("unknown quest %d", rq.QuestID)
		}
		if p.Quests.Has(quest.ID) {
			return nil, fmt.Errorf("duplicate quest %d", quest.ID)
		}
		p.Quests.Accept(quest)
		if rq.Completed {
			p.Quests.Complete(quest.ID)
		}
	}

	return p, nil
}

// LoadPlayer decodes a persisted record. Malformed input is not an error:
// it is logged and replaced by a fresh default player. The returned error
// is only non-nil when the catalog cannot produce a default player.
func LoadPlayer(data []byte, catalog world.Catalog, logger *slog.Logger) (*Player, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		logger.Warn("Malformed player record, starting a new player", "error", err)
		return NewDefaultPlayer(catalog)
	}

	p, err := PlayerFromRecord(&rec, catalog)
	if err != nil {
		logger.Warn("Invalid player record, starting a new player", "error", err)
		return NewDefaultPlayer(catalog)
	}
	return p, nil
}
