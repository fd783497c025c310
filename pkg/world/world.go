// Package world holds the static, read-only world definition: items,
// locations, quests and monster templates, plus the two distinguished ids
// the engine needs (starting item and home location).
package world

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

//go:embed data/world.json
var defaultWorld []byte

// Catalog is the read-only lookup surface the engine consumes.
type Catalog interface {
	Item(id int) (*Item, bool)
	Location(id int) (*Location, bool)
	Quest(id int) (*Quest, bool)
	Monster(id int) (*Monster, bool)
	StartingItemID() int
	HomeLocationID() int
}

// File is the on-disk shape of a world definition.
type File struct {
	Name           string     `json:"name"`
	StartingItemID int        `json:"starting_item_id" validate:"gt=0"`
	HomeLocationID int        `json:"home_location_id" validate:"gt=0"`
	Items          []Item     `json:"items" validate:"required,dive"`
	Locations      []Location `json:"locations" validate:"required,dive"`
	Quests         []Quest    `json:"quests,omitempty" validate:"dive"`
	Monsters       []Monster  `json:"monsters,omitempty" validate:"dive"`
}

// World is an immutable, validated Catalog.
type World struct {
	name           string
	startingItemID int
	homeLocationID int
	items          map[int]*Item
	locations      map[int]*Location
	quests         map[int]*Quest
	monsters       map[int]*Monster
}

var _ Catalog = (*World)(nil)

// Default returns the embedded village world.
func Default() *World {
	w, err := Parse(defaultWorld)
	if err != nil {
		panic(fmt.Sprintf("world: embedded world is invalid: %v", err))
	}
	return w
}

// LoadFile reads and validates a world definition from disk.
func LoadFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("world file %s: %w", path, err)
	}
	return w, nil
}

// Parse decodes and validates a world definition.
func Parse(data []byte) (*World, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal world: %w", err)
	}
	return New(&f)
}

// New validates f and indexes it by id.
func New(f *File) (*World, error) {
	if f == nil {
		return nil, fmt.Errorf("world file cannot be nil")
	}
	if err := Validate(f); err != nil {
		return nil, err
	}

	w := &World{
		name:           f.Name,
		startingItemID: f.StartingItemID,
		homeLocationID: f.HomeLocationID,
		items:          make(map[int]*Item, len(f.Items)),
		locations:      make(map[int]*Location, len(f.Locations)),
		quests:         make(map[int]*Quest, len(f.Quests)),
		monsters:       make(map[int]*Monster, len(f.Monsters)),
	}
	for i := range f.Items {
		item := f.Items[i]
		w.items[item.ID] = &item
	}
	for i := range f.Locations {
		loc := f.Locations[i]
		w.locations[loc.ID] = &loc
	}
	for i := range f.Quests {
		q := f.Quests[i]
		w.quests[q.ID] = &q
	}
	for i := range f.Monsters {
		m := f.Monsters[i]
		if m.HP == 0 {
			m.HP = m.MaxHP
		}
		w.monsters[m.ID] = &m
	}
	return w, nil
}

func (w *World) Name() string { return w.name }

func (w *World) Item(id int) (*Item, bool) {
	i, ok := w.items[id]
	return i, ok
}

func (w *World) Location(id int) (*Location, bool) {
	l, ok := w.locations[id]
	return l, ok
}

func (w *World) Quest(id int) (*Quest, bool) {
	q, ok := w.quests[id]
	return q, ok
}

func (w *World) Monster(id int) (*Monster, bool) {
	m, ok := w.monsters[id]
	return m, ok
}

func (w *World) StartingItemID() int { return w.startingItemID }

func (w *World) HomeLocationID() int { return w.homeLocationID }

// Locations returns every location ordered by id.
func (w *World) Locations() []*Location {
	out := make([]*Location, 0, len(w.locations))
	for _, l := range w.locations {
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b *Location) int { return a.ID - b.ID })
	return out
}

// Items returns every item ordered by id.
func (w *World) Items() []*Item {
	out := make([]*Item, 0, len(w.items))
	for _, i := range w.items {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Item) int { return a.ID - b.ID })
	return out
}
