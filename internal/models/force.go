package models

// Flat bonuses added to a force's leader bonus
const (
	ReinforcementBonus  = 2 // per reinforcement card
	AdvancedCombatBonus = 5 // advanced combat deck in play
)

// Force is one side of a battle: its sub-units, general and derived bonuses.
// Bonus fields are recomputed by UpdateBonuses and never set directly.
type Force struct {
	Faction Faction
	Units   []*Unit
	General *General

	reinforcements int
	advCombat      bool

	melee   int
	cavalry int
	ranged  int
}

// NewForce creates a force and computes its bonuses
func NewForce(faction Faction, units []*Unit, general *General) *Force {
	if general == nil {
		general = NewGeneral(0)
	}
	f := &Force{
		Faction: faction,
		Units:   units,
		General: general,
	}
	f.UpdateBonuses()
	return f
}

// DefaultForce returns a Rebel force with no sub-units and an unequipped general
func DefaultForce() *Force {
	return NewForce(Rebel, nil, nil)
}

// AddUnit appends a sub-unit
func (f *Force) AddUnit(u *Unit) {
	f.Units = append(f.Units, u)
	f.UpdateBonuses()
}

// SetGeneral replaces the general
func (f *Force) SetGeneral(g *General) {
	f.General = g
	f.UpdateBonuses()
}

// SetEquipment equips the force's general
func (f *Force) SetEquipment(item *Equipment) {
	f.General.SetEquipment(item)
}

// SetReinforcements sets the number of reinforcement cards
func (f *Force) SetReinforcements(n int) {
	f.reinforcements = n
	f.UpdateBonuses()
}

// SetAdvancedCombat sets whether the advanced combat deck is used
func (f *Force) SetAdvancedCombat(adv bool) {
	f.advCombat = adv
	f.UpdateBonuses()
}

// Reinforcements returns the number of reinforcement cards
func (f *Force) Reinforcements() int { return f.reinforcements }

// AdvancedCombat reports whether the advanced combat deck is used
func (f *Force) AdvancedCombat() bool { return f.advCombat }

// MeleeBonus returns the summed bonus of surviving melee sub-units
func (f *Force) MeleeBonus() int { return f.melee }

// CavalryBonus returns the summed bonus of surviving cavalry sub-units
func (f *Force) CavalryBonus() int { return f.cavalry }

// RangedBonus returns the summed bonus of surviving ranged sub-units
func (f *Force) RangedBonus() int { return f.ranged }

// LeaderBonus returns the general's bonus plus reinforcement and deck bonuses.
// Read through the general so equipment changes show up immediately.
func (f *Force) LeaderBonus() int {
	leader := f.reinforcements * ReinforcementBonus
	if f.General != nil {
		leader += f.General.Bonus()
	}
	if f.advCombat {
		leader += AdvancedCombatBonus
	}
	return leader
}

// TotalBonus returns leader + melee + cavalry + ranged
func (f *Force) TotalBonus() int {
	return f.LeaderBonus() + f.melee + f.cavalry + f.ranged
}

// UpdateBonuses recomputes the per-class bonuses from the current sub-units
func (f *Force) UpdateBonuses() {
	f.melee, f.cavalry, f.ranged = 0, 0, 0
	for _, u := range f.Units {
		if u.Size == 0 {
			continue
		}
		switch u.Type {
		case Melee:
			f.melee += u.Bonus
		case Cavalry:
			f.cavalry += u.Bonus
		case Ranged:
			f.ranged += u.Bonus
		}
	}
}

// TotalSoldiers returns the number of soldiers across all sub-units
func (f *Force) TotalSoldiers() int {
	total := 0
	for _, u := range f.Units {
		total += u.Size
	}
	return total
}

// UnitCount returns the number of sub-units, wiped ones included
func (f *Force) UnitCount() int {
	return len(f.Units)
}

// WipedUnits returns the number of sub-units with no soldiers left
func (f *Force) WipedUnits() int {
	n := 0
	for _, u := range f.Units {
		if u.IsWiped() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy; equipment items stay shared
func (f *Force) Clone() *Force {
	units := make([]*Unit, len(f.Units))
	for i, u := range f.Units {
		units[i] = u.Clone()
	}
	c := &Force{
		Faction:        f.Faction,
		Units:          units,
		reinforcements: f.reinforcements,
		advCombat:      f.advCombat,
	}
	if f.General != nil {
		c.General = f.General.Clone()
	}
	c.UpdateBonuses()
	return c
}
