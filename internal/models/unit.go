package models

// Unit is a sub-unit of a force: a group of soldiers of one combat class
type Unit struct {
	ID      int
	Faction Faction
	Name    string
	Type    UnitType
	Bonus   int // autoresolve bonus, fixed per unit
	Size    int // remaining soldiers, only ever decreases during a battle
}

// AssignCasualties removes cas soldiers from the unit.
// Returns false without touching the unit if cas is negative or larger than its size.
func (u *Unit) AssignCasualties(cas int) bool {
	if cas < 0 || cas > u.Size {
		return false
	}
	u.Size -= cas
	return true
}

// IsWiped reports whether no soldiers remain
func (u *Unit) IsWiped() bool {
	return u.Size == 0
}

// Clone returns a copy of the unit
func (u *Unit) Clone() *Unit {
	c := *u
	return &c
}
