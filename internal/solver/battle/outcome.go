// Package battle resolves a single battle: outcome score, casualties and rewards.
package battle

import (
	"github.com/napolitain/autoresolve/internal/dice"
	"github.com/napolitain/autoresolve/internal/models"
)

// Score thresholds, attacker-relative
const (
	DecisiveThreshold = 20
	HeroicThreshold   = 10
	DrawMargin        = 2
)

// rpsWeight scales the rock-paper-scissors matchup terms
const rpsWeight = 1.5

// RandomFactor sums ten d10 rolls (10..100, mean 55). Every call rolls fresh dice.
func RandomFactor(src dice.Source) int {
	return dice.Sum(src, 10, 1, 10)
}

// DefenseBonus returns the score penalty of a town's walls: 0 without walls, +10 per tier
func DefenseBonus(town models.TownStats) int {
	return 10*int(town.Walls) - 10
}

// ScenarioModifier returns the attacker-relative score adjustment of a battle type
func ScenarioModifier(sc models.Scenario) int {
	switch sc.Kind {
	case models.Siege:
		if p := sc.Siege; p != nil {
			return 2*p.Rams + 3*p.Catapults + 4*p.SiegeTowers - DefenseBonus(p.Defenses)
		}
	case models.Raid:
		if p := sc.Raid; p != nil {
			return -DefenseBonus(p.Defenses)
		}
	case models.Naval:
		if p := sc.Naval; p != nil {
			return 3 * (p.AttackerShips - p.DefenderShips)
		}
	case models.MonsterHunt:
		if p := sc.Monster; p != nil {
			return -p.Monster.AutoresolveValue()
		}
	}
	return 0
}

// Score computes the outcome score and all of its terms.
// In a monster hunt the defender is ignored: only the attacker's bonus, one pair of
// random factors and the monster's value count.
func Score(attacker, defender *models.Force, sc models.Scenario, src dice.Source) models.ScoreBreakdown {
	var b models.ScoreBreakdown

	b.AttackerBonus = attacker.TotalBonus()
	b.AttackerRandom = RandomFactor(src)
	b.DefenderRandom = RandomFactor(src)
	b.ScenarioModifier = ScenarioModifier(sc)

	if !sc.IsMonster() && defender != nil {
		b.DefenderBonus = defender.TotalBonus()
		b.CavalryVsRanged = rpsWeight * float32(attacker.CavalryBonus()-defender.RangedBonus())
		b.MeleeVsCavalry = rpsWeight * float32(attacker.MeleeBonus()-defender.CavalryBonus())
		b.RangedVsMelee = rpsWeight * float32(attacker.RangedBonus()-defender.MeleeBonus())
	}

	b.Score = float32(b.AttackerBonus-b.DefenderBonus) +
		float32(b.AttackerRandom-b.DefenderRandom) +
		b.CavalryVsRanged + b.MeleeVsCavalry + b.RangedVsMelee +
		float32(b.ScenarioModifier)

	return b
}

// ResolveOutcome scores the battle and classifies the score
func ResolveOutcome(attacker, defender *models.Force, sc models.Scenario, src dice.Source) (models.Outcome, float32) {
	b := Score(attacker, defender, sc, src)
	return Classify(b.Score), b.Score
}

// Classify maps a score to an outcome. Draw covers [-2, 2] inclusive.
func Classify(score float32) models.Outcome {
	switch {
	case score >= DecisiveThreshold:
		return models.DecisiveVictory
	case score >= HeroicThreshold:
		return models.HeroicVictory
	case score > DrawMargin:
		return models.CloseVictory
	case score >= -DrawMargin:
		return models.Draw
	case score > -HeroicThreshold:
		return models.CloseDefeat
	case score > -DecisiveThreshold:
		return models.ValiantDefeat
	}
	return models.CrushingDefeat
}
