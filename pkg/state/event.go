package state

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/textfilter"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// EventKind identifies what happened during a transition.
type EventKind string

const (
	EventEntryDenied     EventKind = "entry_denied"
	EventArrived         EventKind = "arrived"
	EventQuestReceived   EventKind = "quest_received"
	EventQuestCompleted  EventKind = "quest_completed"
	EventReward          EventKind = "reward"
	EventMonsterSighted  EventKind = "monster_sighted"
	EventPlayerAttack    EventKind = "player_attack"
	EventMonsterAttack   EventKind = "monster_attack"
	EventPotionUsed      EventKind = "potion_used"
	EventMonsterDefeated EventKind = "monster_defeated"
	EventLoot            EventKind = "loot"
	EventPlayerDefeated  EventKind = "player_defeated"
)

// Event is one narrative line produced by the engine. Presentation layers
// render Message verbatim and in order; the id fields let them do more.
type Event struct {
	Kind       EventKind `json:"kind"`
	Message    string    `json:"message"`
	LocationID int       `json:"location_id,omitempty"`
	ItemID     int       `json:"item_id,omitempty"`
	QuestID    int       `json:"quest_id,omitempty"`
	MonsterID  int       `json:"monster_id,omitempty"`
	Amount     int       `json:"amount,omitempty"`
}

func (e Event) String() string {
	return e.Message
}

// Messages flattens events into their rendered text.
func Messages(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Message)
	}
	return out
}

func entryDenied(loc *world.Location, required *world.Item) Event {
	name := "key"
	if required != nil {
		name = required.Name
	}
	return Event{
		Kind:       EventEntryDenied,
		Message:    fmt.Sprintf("You must have %s to enter this location.", textfilter.Article(name)),
		LocationID: loc.ID,
		ItemID:     loc.ItemRequiredToEnter,
	}
}

func arrived(loc *world.Location) Event {
	return Event{
		Kind:       EventArrived,
		Message:    textfilter.Lines(loc.Name, loc.Description),
		LocationID: loc.ID,
	}
}

func questReceived(q *world.Quest, catalog world.Catalog) Event {
	var b strings.Builder
	fmt.Fprintf(&b, "You receive the %s quest.\n", q.Name)
	if q.Description != "" {
		b.WriteString(q.Description + "\n")
	}
	b.WriteString("To complete the quest, return here with:")
	for _, ci := range q.CompletionItems {
		b.WriteString("\n")
		if item, ok := catalog.Item(ci.ItemID); ok {
			b.WriteString(textfilter.Count(ci.Quantity, item.Name, item.NamePlural))
		} else {
			fmt.Fprintf(&b, "%d x item %d", ci.Quantity, ci.ItemID)
		}
	}
	return Event{Kind: EventQuestReceived, Message: b.String(), QuestID: q.ID}
}

func questCompleted(q *world.Quest) Event {
	return Event{
		Kind:    EventQuestCompleted,
		Message: fmt.Sprintf("You complete the %s quest.", q.Name),
		QuestID: q.ID,
	}
}

func rewardXP(n int) Event {
	return Event{Kind: EventReward, Message: fmt.Sprintf("You receive %d XP.", n), Amount: n}
}

func rewardGold(n int) Event {
	return Event{Kind: EventReward, Message: fmt.Sprintf("You receive %d gold.", n), Amount: n}
}

func rewardItem(item *world.Item) Event {
	return Event{
		Kind:    EventReward,
		Message: fmt.Sprintf("You receive %s.", textfilter.Count(1, item.Name, item.NamePlural)),
		ItemID:  item.ID,
		Amount:  1,
	}
}

func monsterSighted(m *world.Monster) Event {
	return Event{
		Kind:      EventMonsterSighted,
		Message:   fmt.Sprintf("You see %s.", textfilter.Article(m.Name)),
		MonsterID: m.ID,
	}
}

func playerAttack(monsterID int, name string, damage int) Event {
	return Event{
		Kind:      EventPlayerAttack,
		Message:   fmt.Sprintf("You hit the %s for %d points.", name, damage),
		MonsterID: monsterID,
		Amount:    damage,
	}
}

func monsterAttack(monsterID int, name string, damage int) Event {
	return Event{
		Kind:      EventMonsterAttack,
		Message:   fmt.Sprintf("The %s dealt %d points of damage.", name, damage),
		MonsterID: monsterID,
		Amount:    damage,
	}
}

func potionUsed(item *world.Item, healed int) Event {
	return Event{
		Kind:    EventPotionUsed,
		Message: fmt.Sprintf("You drink %s.", textfilter.Article(item.Name)),
		ItemID:  item.ID,
		Amount:  healed,
	}
}

func monsterDefeated(monsterID int, name string) Event {
	return Event{
		Kind:      EventMonsterDefeated,
		Message:   fmt.Sprintf("You defeated the %s.", name),
		MonsterID: monsterID,
	}
}

func loot(item *world.Item, quantity int) Event {
	return Event{
		Kind:    EventLoot,
		Message: "You loot " + textfilter.Count(quantity, item.Name, item.NamePlural) + ".",
		ItemID:  item.ID,
		Amount:  quantity,
	}
}

func playerDefeated(monsterID int, name string) Event {
	return Event{
		Kind:      EventPlayerDefeated,
		Message:   fmt.Sprintf("The %s killed you.", name),
		MonsterID: monsterID,
	}
}
