package battle

import (
	"github.com/napolitain/autoresolve/internal/dice"
	"github.com/napolitain/autoresolve/internal/models"
)

// Autoresolve fights the battle to completion and returns its record.
// The battle's forces are consumed: casualties and general states are applied to them.
func Autoresolve(b *models.Battle, t *models.Treasure, src dice.Source) *models.BattleResult {
	defender := b.Defender
	if b.Scenario.IsMonster() {
		defender = nil
	}

	attackerSnap := models.Snapshot(b.Attacker)
	defenderSnap := models.Snapshot(defender)

	score := Score(b.Attacker, defender, b.Scenario, src)
	outcome := Classify(score.Score)

	attReport, defReport := Inflict(b.Attacker, defender, outcome, src)

	params := models.ResultParams{
		Scenario:       b.Scenario,
		Outcome:        outcome,
		Score:          score,
		Attacker:       attackerSnap,
		Defender:       defenderSnap,
		AttackerReport: attReport,
		DefenderReport: defReport,
		AttackerReward: FindReward(b.Attacker, t, src),
		DefenderReward: FindReward(defender, t, src),
	}
	if b.Scenario.IsMonster() && b.Scenario.Monster != nil {
		params.Spoils = ClaimSpoils(b.Scenario.Monster.Monster, outcome, t, src)
	}

	return models.NewBattleResult(params)
}
