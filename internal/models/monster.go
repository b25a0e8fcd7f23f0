package models

import "fmt"

// MonsterKind is the monster fought in a monster hunt, weakest first
type MonsterKind int

const (
	Minotaur MonsterKind = iota + 1
	Hobgoblin
	Troll
	Giant
	Demon
	Dragon
)

// AllMonsterKinds returns all monsters, weakest first
func AllMonsterKinds() []MonsterKind {
	return []MonsterKind{Minotaur, Hobgoblin, Troll, Giant, Demon, Dragon}
}

// ParseMonsterKind converts the lowercase name used by battle files
func ParseMonsterKind(s string) (MonsterKind, error) {
	for _, m := range AllMonsterKinds() {
		if m.Key() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown monster %q", s)
}

func (m MonsterKind) String() string {
	switch m {
	case Minotaur:
		return "Minotaur"
	case Hobgoblin:
		return "Hobgoblin"
	case Troll:
		return "Troll"
	case Giant:
		return "Giant"
	case Demon:
		return "Demon"
	case Dragon:
		return "Dragon"
	}
	return fmt.Sprintf("MonsterKind(%d)", int(m))
}

// Key returns the lowercase name used in battle files
func (m MonsterKind) Key() string {
	switch m {
	case Minotaur:
		return "minotaur"
	case Hobgoblin:
		return "hobgoblin"
	case Troll:
		return "troll"
	case Giant:
		return "giant"
	case Demon:
		return "demon"
	case Dragon:
		return "dragon"
	}
	return ""
}

// AutoresolveValue returns the monster's strength in the outcome score
func (m MonsterKind) AutoresolveValue() int {
	switch m {
	case Minotaur:
		return 20
	case Hobgoblin:
		return 30
	case Troll:
		return 40
	case Giant:
		return 50
	case Demon:
		return 60
	case Dragon:
		return 70
	}
	return 0
}

// CoinReward returns the coins paid out for slaying the monster
func (m MonsterKind) CoinReward() int {
	switch m {
	case Minotaur:
		return 200
	case Hobgoblin:
		return 300
	case Troll:
		return 400
	case Giant:
		return 500
	case Demon:
		return 700
	case Dragon:
		return 1400
	}
	return 0
}

// RewardTypes returns the equipment types the monster's hoard can hold.
// The dragon's hoard is coins only.
func (m MonsterKind) RewardTypes() []EquipmentType {
	switch m {
	case Minotaur:
		return []EquipmentType{Weapon}
	case Hobgoblin:
		return []EquipmentType{Weapon, Armor}
	case Troll:
		return []EquipmentType{Weapon, Trinket}
	case Giant:
		return []EquipmentType{Weapon, Trinket, Armor}
	case Demon:
		return []EquipmentType{Armor, Banner}
	}
	return nil
}
