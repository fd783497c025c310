package actor

import (
	"fmt"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const (
	DefaultHP   = 10
	DefaultGold = 20

	// XPPerLevel is the experience needed for each level after the first.
	XPPerLevel = 100
)

// Player is the aggregate for the single player of a game. It owns its
// inventory and quest log; Location points into the shared world catalog.
type Player struct {
	HP       int
	MaxHP    int
	Gold     int
	XP       int
	Location *world.Location

	Inventory *Inventory
	Quests    *QuestLog
}

// NewPlayer creates a player with empty ledgers and no location.
func NewPlayer(hp, maxHP, gold, xp int) *Player {
	return &Player{
		HP:        hp,
		MaxHP:     maxHP,
		Gold:      gold,
		XP:        xp,
		Inventory: NewInventory(),
		Quests:    NewQuestLog(),
	}
}

// NewDefaultPlayer creates a fresh player at the catalog's home location
// holding one starting item.
func NewDefaultPlayer(catalog world.Catalog) (*Player, error) {
	p := NewPlayer(DefaultHP, DefaultHP, DefaultGold, 0)

	home, ok := catalog.Location(catalog.HomeLocationID())
	if !ok {
		return nil, fmt.Errorf("home location %d not found", catalog.HomeLocationID())
	}
	p.Location = home

	item, ok := catalog.Item(catalog.StartingItemID())
	if !ok {
		return nil, fmt.Errorf("starting item %d not found", catalog.StartingItemID())
	}
	p.Inventory.Add(item)
	return p, nil
}

// Level is derived from experience and never stored.
func (p *Player) Level() int {
	return p.XP/XPPerLevel + 1
}

// HasRequiredItemToEnter reports whether the player may enter loc.
func (p *Player) HasRequiredItemToEnter(loc *world.Location) bool {
	if loc.ItemRequiredToEnter == 0 {
		return true
	}
	return p.Inventory.HasItem(loc.ItemRequiredToEnter)
}

// Heal adds n HP, never beyond MaxHP.
func (p *Player) Heal(n int) {
	p.HP += n
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// HealFully restores HP to MaxHP.
func (p *Player) HealFully() {
	p.HP = p.MaxHP
}

// TakeDamage subtracts n HP. HP may go negative.
func (p *Player) TakeDamage(n int) {
	p.HP -= n
}

// IsDead reports whether HP has dropped to zero or below.
func (p *Player) IsDead() bool {
	return p.HP <= 0
}

// AddRewards grants experience and gold.
func (p *Player) AddRewards(xp, gold int) {
	p.XP += xp
	p.Gold += gold
}

// LocationID returns the current location id, zero when unplaced.
func (p *Player) LocationID() int {
	if p.Location == nil {
		return 0
	}
	return p.Location.ID
}
