package actor

import "github.com/jwebster45206/adventure-engine/pkg/world"

// InventoryItem pairs a catalog item with the quantity the player owns.
// Quantity can reach zero; such entries stay in the ledger and are hidden
// by Visible.
type InventoryItem struct {
	Item     *world.Item `json:"-"`
	Quantity int         `json:"quantity"`
}

// Inventory is the player's item ledger. It keeps at most one entry per
// item id, in the order items were first acquired.
type Inventory struct {
	entries []*InventoryItem
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

func (inv *Inventory) find(itemID int) *InventoryItem {
	for _, e := range inv.entries {
		if e.Item.ID == itemID {
			return e
		}
	}
	return nil
}

// Add adds exactly one unit of item.
func (inv *Inventory) Add(item *world.Item) {
	if e := inv.find(item.ID); e != nil {
		e.Quantity++
		return
	}
	inv.entries = append(inv.entries, &InventoryItem{Item: item, Quantity: 1})
}

// HasItem reports whether an entry exists for itemID, regardless of quantity.
func (inv *Inventory) HasItem(itemID int) bool {
	return inv.find(itemID) != nil
}

// HasAtLeast reports whether the entry for itemID holds at least quantity units.
func (inv *Inventory) HasAtLeast(itemID, quantity int) bool {
	e := inv.find(itemID)
	return e != nil && e.Quantity >= quantity
}

// Quantity returns the owned quantity of itemID, zero when absent.
func (inv *Inventory) Quantity(itemID int) int {
	if e := inv.find(itemID); e != nil {
		return e.Quantity
	}
	return 0
}

// Deduct subtracts quantity from the entry for itemID. Missing entries are
// ignored. The result is not clamped: callers check HasAtLeast first.
func (inv *Inventory) Deduct(itemID, quantity int) {
	if e := inv.find(itemID); e != nil {
		e.Quantity -= quantity
	}
}

// Entries returns a copy of every entry, including empty ones.
func (inv *Inventory) Entries() []InventoryItem {
	out := make([]InventoryItem, 0, len(inv.entries))
	for _, e := range inv.entries {
		out = append(out, *e)
	}
	return out
}

// Visible returns the entries with a positive quantity.
func (inv *Inventory) Visible() []InventoryItem {
	var out []InventoryItem
	for _, e := range inv.entries {
		if e.Quantity > 0 {
			out = append(out, *e)
		}
	}
	return out
}

// Weapons returns the owned weapons.
func (inv *Inventory) Weapons() []*world.Item {
	var out []*world.Item
	for _, e := range inv.entries {
		if e.Quantity > 0 && e.Item.IsWeapon() {
			out = append(out, e.Item)
		}
	}
	return out
}

// Potions returns the owned healing potions.
func (inv *Inventory) Potions() []*world.Item {
	var out []*world.Item
	for _, e := range inv.entries {
		if e.Quantity > 0 && e.Item.IsPotion() {
			out = append(out, e.Item)
		}
	}
	return out
}
