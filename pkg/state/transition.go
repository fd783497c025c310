package state

import (
	"fmt"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Start re-enters the player's current location, or home when the player
// has none. Used for new games and after loading a save.
func (e *Engine) Start(gs *GameState) ([]Event, error) {
	if gs == nil || gs.Player == nil {
		return nil, ErrNoPlayer
	}
	loc := gs.Player.Location
	if loc == nil {
		home, ok := e.catalog.Location(e.catalog.HomeLocationID())
		if !ok {
			return nil, fmt.Errorf("home location %d not found", e.catalog.HomeLocationID())
		}
		loc = home
	}
	return e.MoveTo(gs, loc), nil
}

// Move follows the exit of the current location in the given direction.
func (e *Engine) Move(gs *GameState, dir world.Direction) ([]Event, error) {
	if gs == nil || gs.Player == nil {
		return nil, ErrNoPlayer
	}
	if gs.Player.Location == nil {
		return nil, fmt.Errorf("%w: player has no location", ErrNoExit)
	}
	id, ok := gs.Player.Location.Exit(dir)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoExit, dir)
	}
	dest, ok := e.catalog.Location(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s leads to unknown location %d", ErrNoExit, dir, id)
	}
	return e.MoveTo(gs, dest), nil
}

// MoveTo runs a location transition: entry gate, move, full heal, quest
// evaluation, then monster setup. A denied entry leaves the state untouched
// apart from the returned event.
func (e *Engine) MoveTo(gs *GameState, dest *world.Location) []Event {
	p := gs.Player

	if !p.HasRequiredItemToEnter(dest) {
		required, _ := e.catalog.Item(dest.ItemRequiredToEnter)
		e.logger.Debug("Entry denied",
			"location", dest.ID,
			"required_item", dest.ItemRequiredToEnter)
		e.metrics.RecordMove(true)
		return []Event{entryDenied(dest, required)}
	}

	from := p.LocationID()
	p.Location = dest
	p.HealFully()
	e.metrics.RecordMove(false)

	events := []Event{arrived(dest)}

	if dest.QuestAvailableHere != 0 {
		if quest, ok := e.catalog.Quest(dest.QuestAvailableHere); ok {
			events = append(events, e.evaluateQuest(p, quest)...)
		} else {
			e.logger.Warn("Quest not found in catalog",
				"location", dest.ID,
				"quest", dest.QuestAvailableHere)
		}
	}

	gs.Encounter = nil
	if dest.MonsterLivingHere != 0 {
		if template, ok := e.catalog.Monster(dest.MonsterLivingHere); ok {
			gs.Encounter = actor.NewMonster(template)
			events = append(events, monsterSighted(template))
		} else {
			e.logger.Warn("Monster not found in catalog",
				"location", dest.ID,
				"monster", dest.MonsterLivingHere)
		}
	}

	e.logger.Debug("Player moved",
		"from", from,
		"location", dest.ID,
		"encounter", gs.Encounter != nil)
	return events
}

// evaluateQuest offers the quest once, or completes it when the player
// returns with every completion item.
func (e *Engine) evaluateQuest(p *actor.Player, quest *world.Quest) []Event {
	if !p.Quests.Has(quest.ID) {
		p.Quests.Accept(quest)
		e.logger.Info("Quest accepted", "quest", quest.ID)
		return []Event{questReceived(quest, e.catalog)}
	}
	if p.Quests.IsCompleted(quest.ID) || !p.Quests.HasAllCompletionItems(quest, p.Inventory) {
		return nil
	}

	for _, ci := range quest.CompletionItems {
		p.Inventory.Deduct(ci.ItemID, ci.Quantity)
	}

	events := []Event{questCompleted(quest), rewardXP(quest.RewardXP), rewardGold(quest.RewardGold)}
	p.AddRewards(quest.RewardXP, quest.RewardGold)
	if quest.RewardItemID != 0 {
		if item, ok := e.catalog.Item(quest.RewardItemID); ok {
			p.Inventory.Add(item)
			events = append(events, rewardItem(item))
		}
	}
	p.Quests.Complete(quest.ID)

	e.logger.Info("Quest completed",
		"quest", quest.ID,
		"xp", p.XP,
		"level", p.Level())
	e.metrics.RecordQuestCompleted(quest.Name)
	return events
}
