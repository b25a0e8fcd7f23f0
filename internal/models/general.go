package models

// General commands a force. Equipment slots are nil when empty.
type General struct {
	State GeneralState

	armor    *Equipment
	weapon   *Equipment
	banner   *Equipment
	follower *Equipment
	trinket  *Equipment
	rank     int
	bonus    int
}

// NewGeneral creates an unequipped general of the given rank
func NewGeneral(rank int) *General {
	g := &General{rank: rank}
	g.updateBonus()
	return g
}

// SetEquipment puts an item in the slot matching its type, replacing what was there
func (g *General) SetEquipment(item *Equipment) {
	if item == nil {
		return
	}
	switch item.Type {
	case Armor:
		g.armor = item
	case Weapon:
		g.weapon = item
	case Banner:
		g.banner = item
	case Trinket:
		g.trinket = item
	case Follower:
		g.follower = item
	}
	g.updateBonus()
}

// Unequip empties a slot
func (g *General) Unequip(slot EquipmentType) {
	switch slot {
	case Armor:
		g.armor = nil
	case Weapon:
		g.weapon = nil
	case Banner:
		g.banner = nil
	case Trinket:
		g.trinket = nil
	case Follower:
		g.follower = nil
	}
	g.updateBonus()
}

// Equipment returns the item in a slot, nil if empty
func (g *General) Equipment(slot EquipmentType) *Equipment {
	switch slot {
	case Armor:
		return g.armor
	case Weapon:
		return g.weapon
	case Banner:
		return g.banner
	case Trinket:
		return g.trinket
	case Follower:
		return g.follower
	}
	return nil
}

// EquipmentID returns the id of the item in a slot, 0 if empty
func (g *General) EquipmentID(slot EquipmentType) int {
	if e := g.Equipment(slot); e != nil {
		return e.ID
	}
	return 0
}

// Rank returns the general's rank
func (g *General) Rank() int {
	return g.rank
}

// SetRank changes the rank and the derived bonus with it
func (g *General) SetRank(rank int) {
	g.rank = rank
	g.updateBonus()
}

// Bonus returns the combat bonus: armor, weapon, banner and trinket plus rank.
// The follower only helps finding treasure.
func (g *General) Bonus() int {
	return g.bonus
}

// FollowerBonus returns the follower's bonus, 0 without a follower
func (g *General) FollowerBonus() int {
	if g.follower == nil {
		return 0
	}
	return g.follower.Bonus
}

// Clone returns a copy sharing the same equipment items
func (g *General) Clone() *General {
	c := *g
	return &c
}

func (g *General) updateBonus() {
	g.bonus = g.rank
	for _, e := range []*Equipment{g.armor, g.weapon, g.banner, g.trinket} {
		if e != nil {
			g.bonus += e.Bonus
		}
	}
}
