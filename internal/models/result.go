package models

import "github.com/google/uuid"

// CasualtyReport is what one side lost and earned in a battle
type CasualtyReport struct {
	General      GeneralState
	SoldiersLost int
	UnitsLost    int
	Upgrades     int
}

// ScoreBreakdown records every term of the outcome score
type ScoreBreakdown struct {
	AttackerBonus    int
	DefenderBonus    int
	AttackerRandom   int
	DefenderRandom   int
	CavalryVsRanged  float32 // 1.5 * (attacker cavalry - defender ranged)
	MeleeVsCavalry   float32 // 1.5 * (attacker melee - defender cavalry)
	RangedVsMelee    float32 // 1.5 * (attacker ranged - defender melee)
	ScenarioModifier int
	Score            float32
}

// SideSnapshot captures a force as it entered the battle
type SideSnapshot struct {
	Faction        Faction
	Rank           int
	Armor          int // equipment ids, 0 when the slot is empty
	Weapon         int
	Banner         int
	Follower       int
	Trinket        int
	Melee          int
	Cavalry        int
	Ranged         int
	Leader         int
	Soldiers       int
	Units          int
	Reinforcements int
	AdvancedCombat bool
}

// Snapshot captures the force's current composition and bonuses
func Snapshot(f *Force) SideSnapshot {
	if f == nil {
		return SideSnapshot{}
	}
	s := SideSnapshot{
		Faction:        f.Faction,
		Melee:          f.MeleeBonus(),
		Cavalry:        f.CavalryBonus(),
		Ranged:         f.RangedBonus(),
		Leader:         f.LeaderBonus(),
		Soldiers:       f.TotalSoldiers(),
		Units:          f.UnitCount(),
		Reinforcements: f.Reinforcements(),
		AdvancedCombat: f.AdvancedCombat(),
	}
	if g := f.General; g != nil {
		s.Rank = g.Rank()
		s.Armor = g.EquipmentID(Armor)
		s.Weapon = g.EquipmentID(Weapon)
		s.Banner = g.EquipmentID(Banner)
		s.Follower = g.EquipmentID(Follower)
		s.Trinket = g.EquipmentID(Trinket)
	}
	return s
}

// MonsterSpoils is the hoard claimed after slaying a monster
type MonsterSpoils struct {
	Monster MonsterKind
	Coins   int
	Item    *Equipment
}

// BattleResult is the immutable record of one resolved battle
type BattleResult struct {
	id       uuid.UUID
	scenario Scenario
	outcome  Outcome
	score    ScoreBreakdown
	sides    [2]SideSnapshot
	reports  [2]CasualtyReport
	rewards  [2]*Equipment
	spoils   *MonsterSpoils
}

// ResultParams carries everything a BattleResult is built from
type ResultParams struct {
	Scenario       Scenario
	Outcome        Outcome
	Score          ScoreBreakdown
	Attacker       SideSnapshot
	Defender       SideSnapshot
	AttackerReport CasualtyReport
	DefenderReport CasualtyReport
	AttackerReward *Equipment
	DefenderReward *Equipment
	Spoils         *MonsterSpoils
}

// NewBattleResult freezes a resolved battle under a fresh id
func NewBattleResult(p ResultParams) *BattleResult {
	var spoils *MonsterSpoils
	if p.Spoils != nil {
		s := *p.Spoils
		spoils = &s
	}
	return &BattleResult{
		id:       uuid.New(),
		scenario: p.Scenario.Clone(),
		outcome:  p.Outcome,
		score:    p.Score,
		sides:    [2]SideSnapshot{p.Attacker, p.Defender},
		reports:  [2]CasualtyReport{p.AttackerReport, p.DefenderReport},
		rewards:  [2]*Equipment{p.AttackerReward, p.DefenderReward},
		spoils:   spoils,
	}
}

// ID returns the unique id of the battle
func (r *BattleResult) ID() uuid.UUID { return r.id }

// Scenario returns a copy of the battle's scenario
func (r *BattleResult) Scenario() Scenario { return r.scenario.Clone() }

// Outcome returns the attacker-relative outcome
func (r *BattleResult) Outcome() Outcome { return r.outcome }

// Score returns the score breakdown
func (r *BattleResult) Score() ScoreBreakdown { return r.score }

// Attacker returns the attacker as it entered the battle
func (r *BattleResult) Attacker() SideSnapshot { return r.sides[0] }

// Defender returns the defender as it entered the battle
func (r *BattleResult) Defender() SideSnapshot { return r.sides[1] }

// AttackerReport returns the attacker's casualties
func (r *BattleResult) AttackerReport() CasualtyReport { return r.reports[0] }

// DefenderReport returns the defender's casualties
func (r *BattleResult) DefenderReport() CasualtyReport { return r.reports[1] }

// AttackerReward returns the item found by the attacker, nil if none
func (r *BattleResult) AttackerReward() *Equipment { return r.rewards[0] }

// DefenderReward returns the item found by the defender, nil if none
func (r *BattleResult) DefenderReward() *Equipment { return r.rewards[1] }

// Spoils returns the monster hoard claimed, nil unless a monster was slain
func (r *BattleResult) Spoils() *MonsterSpoils {
	if r.spoils == nil {
		return nil
	}
	s := *r.spoils
	return &s
}
