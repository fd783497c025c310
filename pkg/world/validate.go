package world

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints with struct tags, then every id
// reference across the file.
func Validate(f *File) error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]error, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid world: %w", errors.Join(msgs...))
		}
		return fmt.Errorf("invalid world: %w", err)
	}

	var errs []error
	items := make(map[int]*Item, len(f.Items))
	for i := range f.Items {
		item := &f.Items[i]
		if _, dup := items[item.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate item id %d", item.ID))
		}
		items[item.ID] = item
		switch item.Kind {
		case KindWeapon:
			if item.Weapon == nil {
				errs = append(errs, fmt.Errorf("item %d: weapon is missing weapon stats", item.ID))
			}
		case KindHealingPotion:
			if item.Potion == nil {
				errs = append(errs, fmt.Errorf("item %d: healing potion is missing potion stats", item.ID))
			}
		}
	}

	hasItem := func(id int) bool {
		_, ok := items[id]
		return ok
	}

	quests := make(map[int]bool, len(f.Quests))
	for _, q := range f.Quests {
		if quests[q.ID] {
			errs = append(errs, fmt.Errorf("duplicate quest id %d", q.ID))
		}
		quests[q.ID] = true
		for _, ci := range q.CompletionItems {
			if !hasItem(ci.ItemID) {
				errs = append(errs, fmt.Errorf("quest %d: unknown completion item %d", q.ID, ci.ItemID))
			}
		}
		if q.RewardItemID != 0 && !hasItem(q.RewardItemID) {
			errs = append(errs, fmt.Errorf("quest %d: unknown reward item %d", q.ID, q.RewardItemID))
		}
	}

	monsters := make(map[int]bool, len(f.Monsters))
	for _, m := range f.Monsters {
		if monsters[m.ID] {
			errs = append(errs, fmt.Errorf("duplicate monster id %d", m.ID))
		}
		monsters[m.ID] = true
		for _, li := range m.LootTable {
			if !hasItem(li.ItemID) {
				errs = append(errs, fmt.Errorf("monster %d: unknown loot item %d", m.ID, li.ItemID))
			}
		}
	}

	locations := make(map[int]bool, len(f.Locations))
	for _, l := range f.Locations {
		if locations[l.ID] {
			errs = append(errs, fmt.Errorf("duplicate location id %d", l.ID))
		}
		locations[l.ID] = true
	}
	for _, l := range f.Locations {
		for dir, to := range l.Exits {
			if !locations[to] {
				errs = append(errs, fmt.Errorf("location %d: %s exit to unknown location %d", l.ID, dir, to))
			}
		}
		if l.ItemRequiredToEnter != 0 && !hasItem(l.ItemRequiredToEnter) {
			errs = append(errs, fmt.Errorf("location %d: unknown required item %d", l.ID, l.ItemRequiredToEnter))
		}
		if l.QuestAvailableHere != 0 && !quests[l.QuestAvailableHere] {
			errs = append(errs, fmt.Errorf("location %d: unknown quest %d", l.ID, l.QuestAvailableHere))
		}
		if l.MonsterLivingHere != 0 && !monsters[l.MonsterLivingHere] {
			errs = append(errs, fmt.Errorf("location %d: unknown monster %d", l.ID, l.MonsterLivingHere))
		}
	}

	if !hasItem(f.StartingItemID) {
		errs = append(errs, fmt.Errorf("unknown starting item %d", f.StartingItemID))
	}
	if !locations[f.HomeLocationID] {
		errs = append(errs, fmt.Errorf("unknown home location %d", f.HomeLocationID))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid world: %w", errors.Join(errs...))
	}
	return nil
}
