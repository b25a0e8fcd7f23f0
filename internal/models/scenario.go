package models

import "fmt"

// ScenarioKind tags the battle type
type ScenarioKind int

const (
	Normal ScenarioKind = iota + 1
	Siege
	Raid
	Naval
	MonsterHunt
)

// AllScenarioKinds returns all battle types in CLI order (1..5)
func AllScenarioKinds() []ScenarioKind {
	return []ScenarioKind{Normal, Siege, Raid, Naval, MonsterHunt}
}

// ScenarioKindFromIndex converts the 1-based CLI battle type
func ScenarioKindFromIndex(i int) (ScenarioKind, error) {
	if i < int(Normal) || i > int(MonsterHunt) {
		return 0, fmt.Errorf("invalid battle type %d (want 1..5)", i)
	}
	return ScenarioKind(i), nil
}

// ParseScenarioKind converts the lowercase name used by battle files
func ParseScenarioKind(s string) (ScenarioKind, error) {
	for _, k := range AllScenarioKinds() {
		if k.Key() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown battle type %q", s)
}

func (k ScenarioKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Siege:
		return "Siege"
	case Raid:
		return "Raid"
	case Naval:
		return "Naval"
	case MonsterHunt:
		return "Monster"
	}
	return fmt.Sprintf("ScenarioKind(%d)", int(k))
}

// Key returns the lowercase name used in battle files and API requests
func (k ScenarioKind) Key() string {
	switch k {
	case Normal:
		return "normal"
	case Siege:
		return "siege"
	case Raid:
		return "raid"
	case Naval:
		return "naval"
	case MonsterHunt:
		return "monster"
	}
	return ""
}

// DataPath returns the default telemetry file name for the battle type
func (k ScenarioKind) DataPath() string {
	if k.Key() == "" {
		return "random_battles.csv"
	}
	return k.Key() + "_battles.csv"
}

// WallTier is the fortification level of a town. Ordinals start at 1.
type WallTier int

const (
	NoWalls WallTier = iota + 1
	WoodenWall
	WoodenWallAndMoat
	StoneWall
	StoneWallAndMoat
)

// AllWallTiers returns all wall tiers, weakest first
func AllWallTiers() []WallTier {
	return []WallTier{NoWalls, WoodenWall, WoodenWallAndMoat, StoneWall, StoneWallAndMoat}
}

// ParseWallTier converts the lowercase name used by battle files
func ParseWallTier(s string) (WallTier, error) {
	for _, w := range AllWallTiers() {
		if w.Key() == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown wall tier %q", s)
}

func (w WallTier) String() string {
	switch w {
	case NoWalls:
		return "None"
	case WoodenWall:
		return "Wooden Wall"
	case WoodenWallAndMoat:
		return "Wooden Wall & Moat"
	case StoneWall:
		return "Stone Wall"
	case StoneWallAndMoat:
		return "Stone Wall & Moat"
	}
	return fmt.Sprintf("WallTier(%d)", int(w))
}

// Key returns the lowercase name used in battle files
func (w WallTier) Key() string {
	switch w {
	case NoWalls:
		return "none"
	case WoodenWall:
		return "wooden_wall"
	case WoodenWallAndMoat:
		return "wooden_wall_moat"
	case StoneWall:
		return "stone_wall"
	case StoneWallAndMoat:
		return "stone_wall_moat"
	}
	return ""
}

// TownStats describes a defended town
type TownStats struct {
	Supplies int
	Walls    WallTier
}

// DefaultTownStats returns an unwalled town with no supplies
func DefaultTownStats() TownStats {
	return TownStats{Walls: NoWalls}
}

// SiegeParams is the payload of a siege
type SiegeParams struct {
	Rams        int
	Catapults   int
	SiegeTowers int
	Defenses    TownStats
}

// RaidParams is the payload of a raid
type RaidParams struct {
	Defenses TownStats
}

// NavalParams is the payload of a naval battle
type NavalParams struct {
	AttackerShips int
	DefenderShips int
}

// MonsterParams is the payload of a monster hunt
type MonsterParams struct {
	Monster MonsterKind
}

// Scenario is the battle-type context. Exactly the payload matching Kind is set.
type Scenario struct {
	Kind    ScenarioKind
	Siege   *SiegeParams
	Raid    *RaidParams
	Naval   *NavalParams
	Monster *MonsterParams
}

// NormalBattle returns a field battle with no modifiers
func NormalBattle() Scenario {
	return Scenario{Kind: Normal}
}

// SiegeBattle returns a siege against a defended town
func SiegeBattle(rams, catapults, siegeTowers int, defenses TownStats) Scenario {
	return Scenario{Kind: Siege, Siege: &SiegeParams{
		Rams:        rams,
		Catapults:   catapults,
		SiegeTowers: siegeTowers,
		Defenses:    defenses,
	}}
}

// RaidBattle returns a raid against a defended town
func RaidBattle(defenses TownStats) Scenario {
	return Scenario{Kind: Raid, Raid: &RaidParams{Defenses: defenses}}
}

// NavalBattle returns a battle at sea
func NavalBattle(attackerShips, defenderShips int) Scenario {
	return Scenario{Kind: Naval, Naval: &NavalParams{
		AttackerShips: attackerShips,
		DefenderShips: defenderShips,
	}}
}

// MonsterBattle returns a hunt against a single monster
func MonsterBattle(kind MonsterKind) Scenario {
	return Scenario{Kind: MonsterHunt, Monster: &MonsterParams{Monster: kind}}
}

// DefaultScenario returns the kind with zeroed parameters, as selected from the CLI
func DefaultScenario(kind ScenarioKind) Scenario {
	switch kind {
	case Siege:
		return SiegeBattle(0, 0, 0, DefaultTownStats())
	case Raid:
		return RaidBattle(DefaultTownStats())
	case Naval:
		return NavalBattle(0, 0)
	case MonsterHunt:
		return MonsterBattle(Minotaur)
	}
	return NormalBattle()
}

// Name returns the display name of the battle type
func (s Scenario) Name() string {
	return s.Kind.String()
}

// Defenses returns the town defended in a siege or raid
func (s Scenario) Defenses() (TownStats, bool) {
	switch {
	case s.Kind == Siege && s.Siege != nil:
		return s.Siege.Defenses, true
	case s.Kind == Raid && s.Raid != nil:
		return s.Raid.Defenses, true
	}
	return TownStats{}, false
}

// IsMonster reports whether the defender is a monster rather than a force
func (s Scenario) IsMonster() bool {
	return s.Kind == MonsterHunt
}

// Clone returns a copy with its own payload
func (s Scenario) Clone() Scenario {
	c := Scenario{Kind: s.Kind}
	if s.Siege != nil {
		p := *s.Siege
		c.Siege = &p
	}
	if s.Raid != nil {
		p := *s.Raid
		c.Raid = &p
	}
	if s.Naval != nil {
		p := *s.Naval
		c.Naval = &p
	}
	if s.Monster != nil {
		p := *s.Monster
		c.Monster = &p
	}
	return c
}
