package actor

import "testing"

func TestInventory_Add(t *testing.T) {
	w := testWorld()
	fang := mustItem(w, 2)

	t.Run("quantity equals the number of adds", func(t *testing.T) {
		inv := NewInventory()
		for i := 1; i <= 7; i++ {
			inv.Add(fang)
			if got := inv.Quantity(fang.ID); got != i {
				t.Fatalf("after %d adds quantity = %d", i, got)
			}
		}
		if len(inv.Entries()) != 1 {
			t.Errorf("expected a single entry, got %d", len(inv.Entries()))
		}
	})

	t.Run("distinct items get distinct entries in order", func(t *testing.T) {
		inv := NewInventory()
		inv.Add(mustItem(w, 1))
		inv.Add(fang)
		inv.Add(mustItem(w, 1))

		entries := inv.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Item.ID != 1 || entries[0].Quantity != 2 {
			t.Errorf("first entry = %d x%d, want 1 x2", entries[0].Item.ID, entries[0].Quantity)
		}
		if entries[1].Item.ID != 2 || entries[1].Quantity != 1 {
			t.Errorf("second entry = %d x%d, want 2 x1", entries[1].Item.ID, entries[1].Quantity)
		}
	})
}

func TestInventory_Queries(t *testing.T) {
	w := testWorld()
	inv := NewInventory()
	inv.Add(mustItem(w, 2))
	inv.Add(mustItem(w, 2))

	if !inv.HasItem(2) {
		t.Error("HasItem(2) should be true")
	}
	if inv.HasItem(4) {
		t.Error("HasItem(4) should be false")
	}
	if !inv.HasAtLeast(2, 2) {
		t.Error("HasAtLeast(2, 2) should be true")
	}
	if inv.HasAtLeast(2, 3) {
		t.Error("HasAtLeast(2, 3) should be false")
	}
	if inv.HasAtLeast(4, 1) {
		t.Error("HasAtLeast on a missing item should be false")
	}
}

func TestInventory_Deduct(t *testing.T) {
	w := testWorld()

	t.Run("deducts to zero and keeps the entry", func(t *testing.T) {
		inv := NewInventory()
		for range 3 {
			inv.Add(mustItem(w, 2))
		}
		inv.Deduct(2, 3)

		if inv.Quantity(2) != 0 {
			t.Errorf("quantity = %d, want 0", inv.Quantity(2))
		}
		if !inv.HasItem(2) {
			t.Error("entry should remain after reaching zero")
		}
		if len(inv.Visible()) != 0 {
			t.Errorf("Visible() should hide empty entries, got %d", len(inv.Visible()))
		}
	})

	t.Run("missing item is a no-op", func(t *testing.T) {
		inv := NewInventory()
		inv.Deduct(4, 1)
		if len(inv.Entries()) != 0 {
			t.Error("Deduct should not create entries")
		}
	})

	t.Run("does not clamp below zero", func(t *testing.T) {
		inv := NewInventory()
		inv.Add(mustItem(w, 2))
		inv.Deduct(2, 3)
		if inv.Quantity(2) != -2 {
			t.Errorf("quantity = %d, want -2", inv.Quantity(2))
		}
	})
}

func TestInventory_WeaponsAndPotions(t *testing.T) {
	w := testWorld()
	inv := NewInventory()
	inv.Add(mustItem(w, 1))
	inv.Add(mustItem(w, 2))
	inv.Add(mustItem(w, 3))

	weapons := inv.Weapons()
	if len(weapons) != 1 || weapons[0].ID != 1 {
		t.Errorf("Weapons() = %v, want only item 1", weapons)
	}
	potions := inv.Potions()
	if len(potions) != 1 || potions[0].ID != 3 {
		t.Errorf("Potions() = %v, want only item 3", potions)
	}

	inv.Deduct(3, 1)
	if len(inv.Potions()) != 0 {
		t.Error("Potions() should skip entries with zero quantity")
	}
}
