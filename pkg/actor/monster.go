package actor

import (
	"slices"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Monster is a live, per-encounter copy of a monster template. Combat
// mutates the copy only.
type Monster struct {
	TemplateID int              `json:"template_id"`
	Name       string           `json:"name"`
	MaxDamage  int              `json:"max_damage"`
	RewardXP   int              `json:"reward_xp"`
	RewardGold int              `json:"reward_gold"`
	HP         int              `json:"hp"`
	MaxHP      int              `json:"max_hp"`
	LootTable  []world.LootItem `json:"loot_table,omitempty"`
}

// NewMonster instantiates a fresh live monster from template. The loot
// table is cloned so the template is never aliased.
func NewMonster(template *world.Monster) *Monster {
	if template == nil {
		return nil
	}

	m := &Monster{
		TemplateID: template.ID,
		Name:       template.Name,
		MaxDamage:  template.MaxDamage,
		RewardXP:   template.RewardXP,
		RewardGold: template.RewardGold,
		HP:         template.HP,
		MaxHP:      template.MaxHP,
		LootTable:  slices.Clone(template.LootTable),
	}
	if m.MaxHP > 0 && m.HP == 0 {
		m.HP = m.MaxHP
	}
	return m
}

// TakeDamage reduces the monster's HP. HP is not floored; IsDefeated
// checks for zero or below.
func (m *Monster) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	m.HP -= n
}

// IsDefeated returns true if the monster's HP is 0 or less.
func (m *Monster) IsDefeated() bool {
	return m.HP <= 0
}
