package state

import (
	"errors"
	"testing"
)

func TestEngine_UseWeapon_DefeatsMonster(t *testing.T) {
	// damage 5, fang roll 50 (drops), skin roll 100 (misses)
	e, seq, rec := newTestEngine(t, 5, 50, 100)
	gs := playerAt(t, e, locPit, 10, itemFiveSword)
	gs.Player.Gold = 20

	outcome, events, err := e.UseWeapon(gs, itemFiveSword)
	if err != nil {
		t.Fatalf("UseWeapon() error = %v", err)
	}

	if outcome != MonsterDefeated {
		t.Fatalf("outcome = %v, want MonsterDefeated", outcome)
	}
	assertKinds(t, events,
		EventPlayerAttack, EventMonsterDefeated, EventReward, EventReward, EventLoot,
		EventArrived, EventMonsterSighted)

	msgs := Messages(events)
	if msgs[0] != "You hit the Snake for 5 points." {
		t.Errorf("attack message = %q", msgs[0])
	}
	if msgs[1] != "You defeated the Snake." || msgs[2] != "You receive 10 XP." || msgs[3] != "You receive 5 gold." {
		t.Errorf("reward messages = %q", msgs[1:4])
	}
	if msgs[4] != "You loot 1 Snake fang." {
		t.Errorf("loot message = %q", msgs[4])
	}

	p := gs.Player
	if p.XP != 10 || p.Gold != 25 {
		t.Errorf("xp/gold = %d/%d, want 10/25 (rewards once)", p.XP, p.Gold)
	}
	if p.Inventory.Quantity(itemSnakeFang) != 1 || p.Inventory.HasItem(itemSnakeskin) {
		t.Error("expected exactly one fang looted")
	}
	if seq.Calls() != 3 {
		t.Errorf("draws = %d, want 3", seq.Calls())
	}
	if rec.monsters != 1 {
		t.Errorf("monster metric = %d, want 1", rec.monsters)
	}

	// The location is re-entered, so a fresh snake is waiting.
	if gs.Encounter == nil || gs.Encounter.HP != 5 {
		t.Errorf("expected a respawned snake, got %+v", gs.Encounter)
	}
	template, _ := e.catalog.Monster(monSnake)
	if template.HP != 5 {
		t.Errorf("template HP changed to %d", template.HP)
	}
}

func TestEngine_UseWeapon_LootFallsBackToDefaults(t *testing.T) {
	e, _, _ := newTestEngine(t, 5, 100, 100)
	gs := playerAt(t, e, locPit, 10, itemFiveSword)

	_, events, err := e.UseWeapon(gs, itemFiveSword)
	if err != nil {
		t.Fatalf("UseWeapon() error = %v", err)
	}

	if gs.Player.Inventory.Quantity(itemSnakeFang) != 1 {
		t.Error("default loot should drop when nothing else does")
	}
	if gs.Player.Inventory.HasItem(itemSnakeskin) {
		t.Error("non-default loot should not drop")
	}
	loots := 0
	for _, ev := range events {
		if ev.Kind == EventLoot {
			loots++
		}
	}
	if loots != 1 {
		t.Errorf("loot events = %d, want 1", loots)
	}
}

func TestEngine_UseWeapon_MonsterRetaliates(t *testing.T) {
	e, _, _ := newTestEngine(t, 2, 4)
	gs := playerAt(t, e, locPit, 10)

	outcome, events, err := e.UseWeapon(gs, itemRustySword)
	if !errors.Is(err, ErrItemNotOwned) {
		t.Fatalf("UseWeapon() error = %v, want ErrItemNotOwned", err)
	}

	gs.Player.Inventory.Add(mustItem(t, e, itemRustySword))
	outcome, events, err = e.UseWeapon(gs, itemRustySword)
	if err != nil {
		t.Fatalf("UseWeapon() error = %v", err)
	}
	if outcome != Ongoing {
		t.Errorf("outcome = %v, want Ongoing", outcome)
	}
	assertKinds(t, events, EventPlayerAttack, EventMonsterAttack)
	if events[1].Message != "The Snake dealt 4 points of damage." {
		t.Errorf("message = %q", events[1].Message)
	}
	if gs.Encounter.HP != 3 || gs.Player.HP != 6 {
		t.Errorf("monster/player HP = %d/%d, want 3/6", gs.Encounter.HP, gs.Player.HP)
	}
}

func TestEngine_PlayerDefeated(t *testing.T) {
	e, _, rec := newTestEngine(t, 0, 3)
	gs := playerAt(t, e, locPit, 3, itemRustySword)
	gs.Player.Gold = 50

	outcome, events, err := e.UseWeapon(gs, itemRustySword)
	if err != nil {
		t.Fatalf("UseWeapon() error = %v", err)
	}

	if outcome != PlayerDefeated {
		t.Fatalf("outcome = %v, want PlayerDefeated", outcome)
	}
	assertKinds(t, events, EventPlayerAttack, EventMonsterAttack, EventPlayerDefeated, EventArrived)
	if events[2].Message != "The Snake killed you." {
		t.Errorf("message = %q", events[2].Message)
	}
	p := gs.Player
	if p.LocationID() != locHome {
		t.Errorf("location = %d, want home", p.LocationID())
	}
	if p.HP != p.MaxHP {
		t.Errorf("HP = %d, want full", p.HP)
	}
	if p.Gold != 50 || !p.Inventory.HasAtLeast(itemRustySword, 1) {
		t.Error("death should carry no penalty")
	}
	if gs.Encounter != nil {
		t.Error("encounter should end")
	}
	if rec.deaths != 1 {
		t.Errorf("death metric = %d, want 1", rec.deaths)
	}
}

func TestEngine_UsePotion(t *testing.T) {
	t.Run("heal clamps at max and consumes one unit", func(t *testing.T) {
		e, _, _ := newTestEngine(t, 0)
		gs := playerAt(t, e, locPit, 8, itemBigPotion, itemBigPotion)

		outcome, events, err := e.UsePotion(gs, itemBigPotion)
		if err != nil {
			t.Fatalf("UsePotion() error = %v", err)
		}
		if outcome != Ongoing {
			t.Errorf("outcome = %v, want Ongoing", outcome)
		}
		assertKinds(t, events, EventPotionUsed, EventMonsterAttack)
		if events[0].Message != "You drink a Giant potion." || events[0].Amount != 2 {
			t.Errorf("potion event = %+v", events[0])
		}
		if gs.Player.HP != 10 {
			t.Errorf("HP = %d, want 10", gs.Player.HP)
		}
		if gs.Player.Inventory.Quantity(itemBigPotion) != 1 {
			t.Errorf("potions = %d, want 1", gs.Player.Inventory.Quantity(itemBigPotion))
		}
	})

	t.Run("retaliation can kill", func(t *testing.T) {
		e, _, _ := newTestEngine(t, 10)
		gs := playerAt(t, e, locPit, 1, itemPotion)

		outcome, _, err := e.UsePotion(gs, itemPotion)
		if err != nil {
			t.Fatalf("UsePotion() error = %v", err)
		}
		if outcome != PlayerDefeated {
			t.Errorf("outcome = %v, want PlayerDefeated", outcome)
		}
		if gs.Player.LocationID() != locHome || gs.Player.HP != 10 {
			t.Error("player should respawn at home with full HP")
		}
		if gs.Player.Inventory.Quantity(itemPotion) != 0 {
			t.Error("potion should be consumed")
		}
	})
}

func TestEngine_CombatMisuse(t *testing.T) {
	tests := []struct {
		name    string
		locID   int
		potion  bool
		itemID  int
		wantErr error
	}{
		{"no encounter", locHome, false, itemRustySword, ErrNoEncounter},
		{"potion without encounter", locHome, true, itemPotion, ErrNoEncounter},
		{"unknown item", locPit, false, 99, ErrUnknownItem},
		{"plain item as weapon", locPit, false, itemSnakeFang, ErrNotAWeapon},
		{"weapon as potion", locPit, true, itemRustySword, ErrNotAPotion},
		{"weapon not owned", locPit, false, itemFiveSword, ErrItemNotOwned},
		{"potion not owned", locPit, true, itemBigPotion, ErrItemNotOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, seq, _ := newTestEngine(t, 5, 5, 5)
			gs := playerAt(t, e, tt.locID, 7, itemRustySword, itemSnakeFang, itemPotion)

			var err error
			if tt.potion {
				_, _, err = e.UsePotion(gs, tt.itemID)
			} else {
				_, _, err = e.UseWeapon(gs, tt.itemID)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if seq.Calls() != 0 {
				t.Error("misuse should not draw")
			}
			if gs.Player.HP != 7 || gs.Player.Inventory.Quantity(itemPotion) != 1 {
				t.Error("misuse should not change the player")
			}
			if gs.Encounter != nil && gs.Encounter.HP != 5 {
				t.Error("misuse should not change the monster")
			}
		})
	}
}

func TestOutcome_String(t *testing.T) {
	tests := map[Outcome]string{
		Ongoing:         "ongoing",
		MonsterDefeated: "monster_defeated",
		PlayerDefeated:  "player_defeated",
		Outcome(9):      "unknown",
	}
	for o, want := range tests {
		if o.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(o), o.String(), want)
		}
	}
}
