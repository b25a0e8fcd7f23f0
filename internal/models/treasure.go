package models

import (
	"sort"

	"github.com/napolitain/autoresolve/internal/dice"
)

// Treasure is the read-only catalog of equipment. Items are shared by pointer.
type Treasure struct {
	items  []*Equipment
	byID   map[int]*Equipment
	byType map[EquipmentType][]*Equipment
}

// NewTreasure indexes the given items, ordered by id
func NewTreasure(items []*Equipment) *Treasure {
	sorted := make([]*Equipment, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	t := &Treasure{
		items:  sorted,
		byID:   make(map[int]*Equipment, len(sorted)),
		byType: make(map[EquipmentType][]*Equipment),
	}
	for _, e := range sorted {
		t.byID[e.ID] = e
		t.byType[e.Type] = append(t.byType[e.Type], e)
	}
	return t
}

// Item returns the item with the given id
func (t *Treasure) Item(id int) (*Equipment, bool) {
	e, ok := t.byID[id]
	return e, ok
}

// ItemsOfType returns every item fitting the slot, ordered by id
func (t *Treasure) ItemsOfType(et EquipmentType) []*Equipment {
	return append([]*Equipment(nil), t.byType[et]...)
}

// RandomItemOfType returns a uniformly chosen item of the type, nil if there is none
func (t *Treasure) RandomItemOfType(et EquipmentType, src dice.Source) *Equipment {
	items := t.byType[et]
	if len(items) == 0 {
		return nil
	}
	return items[src.IntN(len(items))]
}

// RandomItem picks a category uniformly among the non-empty ones, then an item in it.
// Categories weigh the same regardless of how many items they hold.
func (t *Treasure) RandomItem(src dice.Source) *Equipment {
	return t.RandomItemFrom(AllEquipmentTypes(), src)
}

// RandomItemFrom is RandomItem restricted to the given categories
func (t *Treasure) RandomItemFrom(types []EquipmentType, src dice.Source) *Equipment {
	var stocked []EquipmentType
	for _, et := range types {
		if len(t.byType[et]) > 0 {
			stocked = append(stocked, et)
		}
	}
	if len(stocked) == 0 {
		return nil
	}
	return t.RandomItemOfType(stocked[src.IntN(len(stocked))], src)
}

// All returns every item, ordered by id
func (t *Treasure) All() []*Equipment {
	return append([]*Equipment(nil), t.items...)
}

// Len returns the number of items
func (t *Treasure) Len() int {
	return len(t.items)
}

// Clone returns an independent index over the same immutable items
func (t *Treasure) Clone() *Treasure {
	return NewTreasure(t.items)
}
