package state

import (
	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Outcome is the state of an encounter after a combat action.
type Outcome int

const (
	Ongoing Outcome = iota
	MonsterDefeated
	PlayerDefeated
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case MonsterDefeated:
		return "monster_defeated"
	case PlayerDefeated:
		return "player_defeated"
	}
	return "unknown"
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UseWeapon attacks the active encounter with an owned weapon. A defeated
// monster pays out its rewards and loot, then the current location is
// entered again. Otherwise the monster strikes back.
func (e *Engine) UseWeapon(gs *GameState, weaponID int) (Outcome, []Event, error) {
	if err := e.checkCombat(gs); err != nil {
		return Ongoing, nil, err
	}
	weapon, err := e.resolveItem(gs, weaponID, world.KindWeapon)
	if err != nil {
		return Ongoing, nil, err
	}

	m := gs.Encounter
	damage := e.dice.IntBetween(weapon.Weapon.MinDamage, weapon.Weapon.MaxDamage)
	m.TakeDamage(damage)
	events := []Event{playerAttack(m.TemplateID, m.Name, damage)}

	e.logger.Debug("Player attacked",
		"monster", m.Name,
		"weapon", weapon.ID,
		"damage", damage,
		"monster_hp", m.HP)

	if m.IsDefeated() {
		events = append(events, e.defeatMonster(gs, m)...)
		return MonsterDefeated, events, nil
	}

	outcome, retaliation := e.retaliate(gs, m)
	return outcome, append(events, retaliation...), nil
}

// UsePotion drinks one owned healing potion, then the monster strikes back.
func (e *Engine) UsePotion(gs *GameState, potionID int) (Outcome, []Event, error) {
	if err := e.checkCombat(gs); err != nil {
		return Ongoing, nil, err
	}
	potion, err := e.resolveItem(gs, potionID, world.KindHealingPotion)
	if err != nil {
		return Ongoing, nil, err
	}

	p := gs.Player
	before := p.HP
	p.Heal(potion.Potion.HealAmount)
	p.Inventory.Deduct(potion.ID, 1)
	events := []Event{potionUsed(potion, p.HP-before)}

	e.logger.Debug("Potion used",
		"potion", potion.ID,
		"hp", p.HP)

	outcome, retaliation := e.retaliate(gs, gs.Encounter)
	return outcome, append(events, retaliation...), nil
}

func (e *Engine) checkCombat(gs *GameState) error {
	if gs == nil || gs.Player == nil {
		return ErrNoPlayer
	}
	if gs.Encounter == nil {
		return ErrNoEncounter
	}
	return nil
}

// retaliate lets the monster hit the player. A dead player is sent home.
func (e *Engine) retaliate(gs *GameState, m *actor.Monster) (Outcome, []Event) {
	damage := e.dice.IntBetween(0, m.MaxDamage)
	gs.Player.TakeDamage(damage)
	events := []Event{monsterAttack(m.TemplateID, m.Name, damage)}

	if !gs.Player.IsDead() {
		return Ongoing, events
	}

	e.logger.Info("Player defeated",
		"monster", m.Name,
		"hp", gs.Player.HP)
	e.metrics.RecordPlayerDefeated(m.Name)
	events = append(events, playerDefeated(m.TemplateID, m.Name))

	gs.Encounter = nil
	if home, ok := e.catalog.Location(e.catalog.HomeLocationID()); ok {
		events = append(events, e.MoveTo(gs, home)...)
	} else {
		e.logger.Error("Home location not found", "location", e.catalog.HomeLocationID())
	}
	return PlayerDefeated, events
}

// defeatMonster grants rewards and loot, then refreshes the current location.
func (e *Engine) defeatMonster(gs *GameState, m *actor.Monster) []Event {
	p := gs.Player
	p.AddRewards(m.RewardXP, m.RewardGold)
	events := []Event{
		monsterDefeated(m.TemplateID, m.Name),
		rewardXP(m.RewardXP),
		rewardGold(m.RewardGold),
	}

	for _, item := range e.rollLoot(m.LootTable) {
		p.Inventory.Add(item)
		events = append(events, loot(item, 1))
	}

	e.logger.Info("Monster defeated",
		"monster", m.Name,
		"xp", p.XP,
		"gold", p.Gold)
	e.metrics.RecordMonsterDefeated(m.Name)

	gs.Encounter = nil
	if p.Location != nil {
		events = append(events, e.MoveTo(gs, p.Location)...)
	}
	return events
}

// rollLoot draws once per loot entry. When nothing drops, every default
// entry drops instead. One item per looted unit.
func (e *Engine) rollLoot(table []world.LootItem) []*world.Item {
	var looted []*world.Item
	for _, li := range table {
		if e.dice.IntBetween(1, 100) <= li.DropPercentage {
			if item, ok := e.catalog.Item(li.ItemID); ok {
				looted = append(looted, item)
			}
		}
	}
	if len(looted) > 0 {
		return looted
	}
	for _, li := range table {
		if li.IsDefault {
			if item, ok := e.catalog.Item(li.ItemID); ok {
				looted = append(looted, item)
			}
		}
	}
	return looted
}
