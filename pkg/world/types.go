package world

// ItemKind is the closed set of item variants. Consumers switch on it
// instead of inspecting payloads.
type ItemKind string

const (
	KindPlain         ItemKind = "item"
	KindWeapon        ItemKind = "weapon"
	KindHealingPotion ItemKind = "healing_potion"
)

// WeaponStats is the payload of a KindWeapon item.
type WeaponStats struct {
	MinDamage int `json:"min_damage" validate:"gte=0"`
	MaxDamage int `json:"max_damage" validate:"gtefield=MinDamage"`
}

// PotionStats is the payload of a KindHealingPotion item.
type PotionStats struct {
	HealAmount int `json:"heal_amount" validate:"gt=0"`
}

// Item is a read-only catalog entry.
type Item struct {
	ID         int          `json:"id" validate:"gt=0"`
	Name       string       `json:"name" validate:"required"`
	NamePlural string       `json:"name_plural" validate:"required"`
	Kind       ItemKind     `json:"kind" validate:"oneof=item weapon healing_potion"`
	Weapon     *WeaponStats `json:"weapon,omitempty" validate:"omitempty"`
	Potion     *PotionStats `json:"potion,omitempty" validate:"omitempty"`
}

// IsWeapon reports whether the item can be used to attack.
func (i *Item) IsWeapon() bool {
	return i != nil && i.Kind == KindWeapon && i.Weapon != nil
}

// IsPotion reports whether the item can be drunk to heal.
func (i *Item) IsPotion() bool {
	return i != nil && i.Kind == KindHealingPotion && i.Potion != nil
}

// NameFor returns the singular name for a quantity of 1 and the plural otherwise.
func (i *Item) NameFor(quantity int) string {
	if quantity == 1 {
		return i.Name
	}
	return i.NamePlural
}

// Direction names an exit out of a location.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists every direction in display order.
var Directions = []Direction{North, South, East, West}

// ParseDirection accepts full names and single-letter abbreviations.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	}
	return "", false
}

// Location is a node of the world graph. Zero ids mean "none".
type Location struct {
	ID                  int               `json:"id" validate:"gt=0"`
	Name                string            `json:"name" validate:"required"`
	Description         string            `json:"description,omitempty"`
	Exits               map[Direction]int `json:"exits,omitempty" validate:"dive,keys,oneof=north south east west,endkeys,gt=0"`
	ItemRequiredToEnter int               `json:"item_required_to_enter,omitempty" validate:"gte=0"`
	QuestAvailableHere  int               `json:"quest_available_here,omitempty" validate:"gte=0"`
	MonsterLivingHere   int               `json:"monster_living_here,omitempty" validate:"gte=0"`
}

// Exit returns the id of the neighbour in the given direction.
func (l *Location) Exit(dir Direction) (int, bool) {
	id, ok := l.Exits[dir]
	return id, ok && id != 0
}

// QuestCompletionItem is one (item, quantity) requirement of a quest.
type QuestCompletionItem struct {
	ItemID   int `json:"item_id" validate:"gt=0"`
	Quantity int `json:"quantity" validate:"gt=0"`
}

// Quest is a read-only quest definition.
type Quest struct {
	ID              int                   `json:"id" validate:"gt=0"`
	Name            string                `json:"name" validate:"required"`
	Description     string                `json:"description,omitempty"`
	CompletionItems []QuestCompletionItem `json:"completion_items" validate:"dive"`
	RewardXP        int                   `json:"reward_xp" validate:"gte=0"`
	RewardGold      int                   `json:"reward_gold" validate:"gte=0"`
	RewardItemID    int                   `json:"reward_item_id,omitempty" validate:"gte=0"`
}

// LootItem is one loot table entry.
type LootItem struct {
	ItemID         int  `json:"item_id" validate:"gt=0"`
	DropPercentage int  `json:"drop_percentage" validate:"min=1,max=100"`
	IsDefault      bool `json:"is_default,omitempty"`
}

// Monster is a monster template. Live fights work on copies.
type Monster struct {
	ID         int        `json:"id" validate:"gt=0"`
	Name       string     `json:"name" validate:"required"`
	MaxDamage  int        `json:"max_damage" validate:"gte=0"`
	RewardXP   int        `json:"reward_xp" validate:"gte=0"`
	RewardGold int        `json:"reward_gold" validate:"gte=0"`
	HP         int        `json:"hp,omitempty" validate:"gte=0,ltefield=MaxHP"`
	MaxHP      int        `json:"max_hp" validate:"gt=0"`
	LootTable  []LootItem `json:"loot_table,omitempty" validate:"dive"`
}
