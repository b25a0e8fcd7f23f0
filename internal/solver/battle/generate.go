package battle

import (
	"github.com/napolitain/autoresolve/internal/dice"
	"github.com/napolitain/autoresolve/internal/models"
)

// Bounds for random scenario parameters
const (
	maxSiegeEngines = 3
	maxSupplies     = 5
	maxShips        = 6
)

// GenerateRandomBattle builds a battle between two random forces.
// A nil kind picks the battle type at random as well.
func GenerateRandomBattle(r *models.Roster, t *models.Treasure, caps models.GenerationCaps, kind *models.ScenarioKind, src dice.Source) *models.Battle {
	var sc models.Scenario
	if kind != nil {
		sc = RandomScenario(*kind, src)
	} else {
		kinds := models.AllScenarioKinds()
		sc = RandomScenario(kinds[src.IntN(len(kinds))], src)
	}

	attacker := RandomForce(r, t, caps, src)
	var defender *models.Force
	if !sc.IsMonster() {
		defender = RandomForce(r, t, caps, src)
	}

	return models.NewBattle(attacker, defender, sc)
}

// RandomForce builds a force of a random faction within the caps
func RandomForce(r *models.Roster, t *models.Treasure, caps models.GenerationCaps, src dice.Source) *models.Force {
	factions := models.AllFactions()
	faction := factions[src.IntN(len(factions))]

	general := models.NewGeneral(dice.Roll(src, 0, caps.MaxRank))
	if t != nil {
		for _, et := range models.AllEquipmentTypes() {
			if dice.Chance(src, 2) {
				general.SetEquipment(t.RandomItemOfType(et, src))
			}
		}
	}

	var units []*models.Unit
	if pool := r.UnitsForFaction(faction); len(pool) > 0 {
		count := dice.Roll(src, 1, max(1, caps.MaxUnits))
		for i := 0; i < count; i++ {
			units = append(units, pool[src.IntN(len(pool))].Clone())
		}
	}

	f := models.NewForce(faction, units, general)
	f.SetReinforcements(dice.Roll(src, 0, caps.MaxReinforcements))
	f.SetAdvancedCombat(dice.Chance(src, 2))
	return f
}

// RandomScenario returns a scenario of the given kind with random parameters
func RandomScenario(kind models.ScenarioKind, src dice.Source) models.Scenario {
	switch kind {
	case models.Siege:
		return models.SiegeBattle(
			dice.Roll(src, 0, maxSiegeEngines),
			dice.Roll(src, 0, maxSiegeEngines),
			dice.Roll(src, 0, maxSiegeEngines),
			randomTown(src),
		)
	case models.Raid:
		return models.RaidBattle(randomTown(src))
	case models.Naval:
		return models.NavalBattle(dice.Roll(src, 1, maxShips), dice.Roll(src, 1, maxShips))
	case models.MonsterHunt:
		monsters := models.AllMonsterKinds()
		return models.MonsterBattle(monsters[src.IntN(len(monsters))])
	}
	return models.NormalBattle()
}

func randomTown(src dice.Source) models.TownStats {
	walls := models.AllWallTiers()
	return models.TownStats{
		Supplies: dice.Roll(src, 0, maxSupplies),
		Walls:    walls[src.IntN(len(walls))],
	}
}
