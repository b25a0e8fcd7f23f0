package battle

import (
	"github.com/napolitain/autoresolve/internal/dice"
	"github.com/napolitain/autoresolve/internal/models"
)

// Treasure finding: roll 1d8, add the follower's bonus, find something on FindThreshold or more
const (
	FindFaces     = 8
	FindThreshold = 5
)

// FindReward checks whether a force finds treasure after the battle.
// Returns nil when nothing is found.
func FindReward(f *models.Force, t *models.Treasure, src dice.Source) *models.Equipment {
	if f == nil || t == nil {
		return nil
	}
	roll := dice.Roll(src, 1, FindFaces)
	if f.General != nil {
		roll += f.General.FollowerBonus()
	}
	if roll < FindThreshold {
		return nil
	}
	return t.RandomItem(src)
}

// ClaimSpoils returns the hoard of a slain monster, nil unless the attacker won
func ClaimSpoils(kind models.MonsterKind, outcome models.Outcome, t *models.Treasure, src dice.Source) *models.MonsterSpoils {
	if !outcome.IsVictory() {
		return nil
	}
	spoils := &models.MonsterSpoils{
		Monster: kind,
		Coins:   kind.CoinReward(),
	}
	if types := kind.RewardTypes(); len(types) > 0 && t != nil {
		spoils.Item = t.RandomItemFrom(types, src)
	}
	return spoils
}
