package actor

import "github.com/jwebster45206/adventure-engine/pkg/world"

func testWorld() *world.World {
	w, err := world.New(&world.File{
		StartingItemID: 1,
		HomeLocationID: 1,
		Items: []world.Item{
			{ID: 1, Name: "Rusty sword", NamePlural: "Rusty swords", Kind: world.KindWeapon, Weapon: &world.WeaponStats{MinDamage: 0, MaxDamage: 5}},
			{ID: 2, Name: "Snake fang", NamePlural: "Snake fangs", Kind: world.KindPlain},
			{ID: 3, Name: "Healing potion", NamePlural: "Healing potions", Kind: world.KindHealingPotion, Potion: &world.PotionStats{HealAmount: 5}},
			{ID: 4, Name: "Rat tail", NamePlural: "Rat tails", Kind: world.KindPlain},
		},
		Quests: []world.Quest{
			{ID: 1, Name: "Clear the field", CompletionItems: []world.QuestCompletionItem{{ItemID: 2, Quantity: 3}}, RewardXP: 20, RewardGold: 20, RewardItemID: 3},
			{ID: 2, Name: "Two kinds", CompletionItems: []world.QuestCompletionItem{{ItemID: 2, Quantity: 1}, {ItemID: 4, Quantity: 2}}},
		},
		Monsters: []world.Monster{
			{ID: 1, Name: "Snake", MaxDamage: 5, RewardXP: 3, RewardGold: 10, MaxHP: 3, LootTable: []world.LootItem{
				{ItemID: 2, DropPercentage: 75, IsDefault: true},
			}},
		},
		Locations: []world.Location{
			{ID: 1, Name: "Home", Exits: map[world.Direction]int{world.North: 2}},
			{ID: 2, Name: "Farmhouse", Exits: map[world.Direction]int{world.South: 1}, QuestAvailableHere: 1},
			{ID: 3, Name: "Guard post", ItemRequiredToEnter: 3},
		},
	})
	if err != nil {
		panic(err)
	}
	return w
}

func mustItem(w *world.World, id int) *world.Item {
	item, ok := w.Item(id)
	if !ok {
		panic("missing item")
	}
	return item
}

func mustQuest(w *world.World, id int) *world.Quest {
	q, ok := w.Quest(id)
	if !ok {
		panic("missing quest")
	}
	return q
}
