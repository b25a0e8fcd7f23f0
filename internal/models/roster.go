package models

import "sort"

// Roster is the read-only catalog of recruitable sub-units.
// Lookups hand out copies so battles never mutate the catalog.
type Roster struct {
	units     []*Unit
	byID      map[int]*Unit
	byFaction map[Faction][]*Unit
}

// NewRoster indexes the given unit templates, ordered by id
func NewRoster(units []*Unit) *Roster {
	sorted := make([]*Unit, len(units))
	copy(sorted, units)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	r := &Roster{
		units:     sorted,
		byID:      make(map[int]*Unit, len(sorted)),
		byFaction: make(map[Faction][]*Unit),
	}
	for _, u := range sorted {
		r.byID[u.ID] = u
		r.byFaction[u.Faction] = append(r.byFaction[u.Faction], u)
	}
	return r
}

// Unit returns a fresh copy of the unit template with the given id
func (r *Roster) Unit(id int) (*Unit, bool) {
	u, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}

// UnitsForFaction returns fresh copies of every unit the faction can field
func (r *Roster) UnitsForFaction(f Faction) []*Unit {
	templates := r.byFaction[f]
	units := make([]*Unit, len(templates))
	for i, u := range templates {
		units[i] = u.Clone()
	}
	return units
}

// All returns fresh copies of every unit, ordered by id
func (r *Roster) All() []*Unit {
	units := make([]*Unit, len(r.units))
	for i, u := range r.units {
		units[i] = u.Clone()
	}
	return units
}

// Len returns the number of unit templates
func (r *Roster) Len() int {
	return len(r.units)
}

// Clone returns an independent copy of the catalog
func (r *Roster) Clone() *Roster {
	return NewRoster(r.All())
}
