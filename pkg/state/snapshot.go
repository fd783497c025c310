package state

import (
	"maps"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Snapshot is the read-only view of a game handed to presentation layers.
type Snapshot struct {
	Player    PlayerView     `json:"player"`
	Location  LocationView   `json:"location"`
	Encounter *actor.Monster `json:"encounter,omitempty"`
}

type PlayerView struct {
	HP        int             `json:"hp"`
	MaxHP     int             `json:"max_hp"`
	Gold      int             `json:"gold"`
	XP        int             `json:"xp"`
	Level     int             `json:"level"`
	Inventory []InventoryView `json:"inventory"`
	Quests    []QuestView     `json:"quests"`
}

type InventoryView struct {
	ItemID   int            `json:"item_id"`
	Name     string         `json:"name"`
	Kind     world.ItemKind `json:"kind"`
	Quantity int            `json:"quantity"`
}

type QuestView struct {
	QuestID   int    `json:"quest_id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type LocationView struct {
	ID          int                     `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Exits       map[world.Direction]int `json:"exits,omitempty"`
}

// Snapshot builds the presentation view of gs. Empty inventory entries
// are left out.
func (gs *GameState) Snapshot() Snapshot {
	p := gs.Player
	snap := Snapshot{
		Player: PlayerView{
			HP:        p.HP,
			MaxHP:     p.MaxHP,
			Gold:      p.Gold,
			XP:        p.XP,
			Level:     p.Level(),
			Inventory: make([]InventoryView, 0),
			Quests:    make([]QuestView, 0),
		},
	}
	for _, e := range p.Inventory.Visible() {
		snap.Player.Inventory = append(snap.Player.Inventory, InventoryView{
			ItemID:   e.Item.ID,
			Name:     e.Item.NameFor(e.Quantity),
			Kind:     e.Item.Kind,
			Quantity: e.Quantity,
		})
	}
	for _, pq := range p.Quests.Entries() {
		snap.Player.Quests = append(snap.Player.Quests, QuestView{
			QuestID:   pq.Quest.ID,
			Name:      pq.Quest.Name,
			Completed: pq.Completed,
		})
	}
	if loc := p.Location; loc != nil {
		snap.Location = LocationView{
			ID:          loc.ID,
			Name:        loc.Name,
			Description: loc.Description,
			Exits:       maps.Clone(loc.Exits),
		}
	}
	if gs.Encounter != nil {
		snap.Encounter = cloneMonster(gs.Encounter)
	}
	return snap
}
