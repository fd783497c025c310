package actor

import "testing"

func TestQuestLog(t *testing.T) {
	w := testWorld()
	quest := mustQuest(w, 1)

	t.Run("unknown quest is neither held nor completed", func(t *testing.T) {
		ql := NewQuestLog()
		if ql.Has(quest.ID) {
			t.Error("Has() should be false")
		}
		if ql.IsCompleted(quest.ID) {
			t.Error("IsCompleted() should be false for an unknown quest")
		}
	})

	t.Run("accept then complete", func(t *testing.T) {
		ql := NewQuestLog()
		ql.Accept(quest)
		if !ql.Has(quest.ID) {
			t.Fatal("Has() should be true after Accept")
		}
		if ql.IsCompleted(quest.ID) {
			t.Error("accepted quest should not be completed")
		}

		ql.Complete(quest.ID)
		ql.Complete(quest.ID)
		if !ql.IsCompleted(quest.ID) {
			t.Error("IsCompleted() should be true after Complete")
		}
		if len(ql.Entries()) != 1 {
			t.Errorf("expected 1 entry, got %d", len(ql.Entries()))
		}
	})

	t.Run("complete on unknown quest is a no-op", func(t *testing.T) {
		ql := NewQuestLog()
		ql.Complete(99)
		if len(ql.Entries()) != 0 {
			t.Error("Complete should not create entries")
		}
	})
}

func TestQuestLog_HasAllCompletionItems(t *testing.T) {
	w := testWorld()
	ql := NewQuestLog()

	t.Run("single requirement", func(t *testing.T) {
		quest := mustQuest(w, 1)
		inv := NewInventory()
		for i := range 3 {
			if ql.HasAllCompletionItems(quest, inv) {
				t.Fatalf("should be false with %d fangs", i)
			}
			inv.Add(mustItem(w, 2))
		}
		if !ql.HasAllCompletionItems(quest, inv) {
			t.Error("should be true with 3 fangs")
		}
		if inv.Quantity(2) != 3 {
			t.Error("query must not change the inventory")
		}
	})

	t.Run("every requirement must hold", func(t *testing.T) {
		quest := mustQuest(w, 2)
		inv := NewInventory()
		inv.Add(mustItem(w, 2))
		inv.Add(mustItem(w, 4))
		if ql.HasAllCompletionItems(quest, inv) {
			t.Error("should be false with 1 of 2 rat tails")
		}
		inv.Add(mustItem(w, 4))
		if !ql.HasAllCompletionItems(quest, inv) {
			t.Error("should be true once both requirements hold")
		}
	})
}
