package models

import "fmt"

// Faction represents the playable factions of the game
type Faction string

const (
	Rebel     Faction = "Rebel"
	Beladimir Faction = "Beladimir"
	Lerastir  Faction = "Lerastir"
	Menoriad  Faction = "Menoriad"
)

// AllFactions returns all factions in deterministic order
func AllFactions() []Faction {
	return []Faction{Rebel, Beladimir, Lerastir, Menoriad}
}

// FactionFromIndex converts the 1-based faction index used by the data files
func FactionFromIndex(i int) (Faction, error) {
	all := AllFactions()
	if i < 1 || i > len(all) {
		return "", fmt.Errorf("invalid faction index %d", i)
	}
	return all[i-1], nil
}

// ParseFaction converts a faction name, case-sensitive
func ParseFaction(s string) (Faction, error) {
	for _, f := range AllFactions() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown faction %q", s)
}

// UnitType is the combat class of a sub-unit
type UnitType int

const (
	Melee UnitType = iota + 1
	Cavalry
	Ranged
)

// AllUnitTypes returns all combat classes in deterministic order
func AllUnitTypes() []UnitType {
	return []UnitType{Melee, Cavalry, Ranged}
}

// UnitTypeFromIndex converts the 1-based unit type index used by the data files
func UnitTypeFromIndex(i int) (UnitType, error) {
	if i < int(Melee) || i > int(Ranged) {
		return 0, fmt.Errorf("invalid unit type index %d", i)
	}
	return UnitType(i), nil
}

func (t UnitType) String() string {
	switch t {
	case Melee:
		return "Melee"
	case Cavalry:
		return "Cavalry"
	case Ranged:
		return "Ranged"
	}
	return fmt.Sprintf("UnitType(%d)", int(t))
}

// EquipmentType is the general's equipment slot an item fits in
type EquipmentType int

const (
	Armor EquipmentType = iota + 1
	Weapon
	Trinket
	Banner
	Follower
)

// AllEquipmentTypes returns all equipment slots in deterministic order
func AllEquipmentTypes() []EquipmentType {
	return []EquipmentType{Armor, Weapon, Trinket, Banner, Follower}
}

// ParseEquipmentType converts the slot name used by the treasure file
func ParseEquipmentType(s string) (EquipmentType, error) {
	for _, et := range AllEquipmentTypes() {
		if et.String() == s {
			return et, nil
		}
	}
	return 0, fmt.Errorf("unable to convert %q to EquipmentType", s)
}

func (t EquipmentType) String() string {
	switch t {
	case Armor:
		return "Armor"
	case Weapon:
		return "Weapon"
	case Trinket:
		return "Trinket"
	case Banner:
		return "Banner"
	case Follower:
		return "Follower"
	}
	return fmt.Sprintf("EquipmentType(%d)", int(t))
}

// GeneralState is the condition of a general after a battle
type GeneralState int

const (
	Unharmed GeneralState = iota
	Wounded
	Slain
)

func (s GeneralState) String() string {
	switch s {
	case Unharmed:
		return "Unharmed"
	case Wounded:
		return "Wounded"
	case Slain:
		return "Slain"
	}
	return fmt.Sprintf("GeneralState(%d)", int(s))
}
