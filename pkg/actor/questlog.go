package actor

import "github.com/jwebster45206/adventure-engine/pkg/world"

// PlayerQuest records that the player accepted a quest and whether it is done.
type PlayerQuest struct {
	Quest     *world.Quest
	Completed bool
}

// QuestLog is the player's quest ledger. Entries are never removed, which is
// what keeps a quest from being offered twice.
type QuestLog struct {
	entries []*PlayerQuest
}

// NewQuestLog creates an empty quest log.
func NewQuestLog() *QuestLog {
	return &QuestLog{}
}

func (ql *QuestLog) find(questID int) *PlayerQuest {
	for _, pq := range ql.entries {
		if pq.Quest.ID == questID {
			return pq
		}
	}
	return nil
}

// Has reports whether the quest was ever accepted.
func (ql *QuestLog) Has(questID int) bool {
	return ql.find(questID) != nil
}

// IsCompleted reports whether the quest is accepted and completed. Unknown
// quests are simply not completed.
func (ql *QuestLog) IsCompleted(questID int) bool {
	pq := ql.find(questID)
	return pq != nil && pq.Completed
}

// Accept records quest as accepted and not completed. Callers check Has first.
func (ql *QuestLog) Accept(quest *world.Quest) {
	ql.entries = append(ql.entries, &PlayerQuest{Quest: quest})
}

// Complete marks the quest completed. Unknown quests are ignored.
func (ql *QuestLog) Complete(questID int) {
	if pq := ql.find(questID); pq != nil {
		pq.Completed = true
	}
}

// Entries returns a copy of every quest record in acceptance order.
func (ql *QuestLog) Entries() []PlayerQuest {
	out := make([]PlayerQuest, 0, len(ql.entries))
	for _, pq := range ql.entries {
		out = append(out, *pq)
	}
	return out
}

// HasAllCompletionItems reports whether inv holds every completion item of
// quest in the required quantity. It has no side effects.
func (ql *QuestLog) HasAllCompletionItems(quest *world.Quest, inv *Inventory) bool {
	for _, ci := range quest.CompletionItems {
		if !inv.HasAtLeast(ci.ItemID, ci.Quantity) {
			return false
		}
	}
	return true
}
