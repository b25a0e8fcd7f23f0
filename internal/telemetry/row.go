// Package telemetry flattens battle results into rows and persists them.
package telemetry

import (
	"strconv"

	"github.com/napolitain/autoresolve/internal/models"
)

// Sink persists battle results
type Sink interface {
	Write(results []*models.BattleResult) error
	Close() error
}

// Columns lists the row fields in the order Row emits them
var Columns = buildColumns()

func buildColumns() []string {
	cols := []string{"id", "battle_type", "attacker_random", "defender_random", "score", "outcome"}
	for _, side := range []string{"attacker", "defender"} {
		for _, c := range []string{
			"general", "armor", "weapon", "banner", "follower", "trinket", "rank",
			"melee", "cavalry", "ranged", "leader",
			"soldiers_lost", "units_lost", "upgrades", "reward", "faction",
		} {
			cols = append(cols, side+"_"+c)
		}
	}
	return append(cols,
		"rams", "catapults", "siege_towers", "walls", "supplies",
		"attacker_ships", "defender_ships", "monster", "spoils_coins",
	)
}

// Row flattens a result, one value per entry of Columns
func Row(r *models.BattleResult) []string {
	sc := r.Scenario()
	score := r.Score()

	row := make([]string, 0, len(Columns))
	row = append(row,
		r.ID().String(),
		sc.Name(),
		strconv.Itoa(score.AttackerRandom),
		strconv.Itoa(score.DefenderRandom),
		strconv.FormatFloat(float64(score.Score), 'f', 1, 32),
		r.Outcome().String(),
	)
	row = appendSide(row, r.Attacker(), r.AttackerReport(), r.AttackerReward())
	row = appendSide(row, r.Defender(), r.DefenderReport(), r.DefenderReward())

	var (
		rams, catapults, towers, supplies int
		attShips, defShips, coins         int
		walls, monster                    string
	)
	if town, ok := sc.Defenses(); ok {
		walls = town.Walls.Key()
		supplies = town.Supplies
	}
	if p := sc.Siege; p != nil {
		rams, catapults, towers = p.Rams, p.Catapults, p.SiegeTowers
	}
	if p := sc.Naval; p != nil {
		attShips, defShips = p.AttackerShips, p.DefenderShips
	}
	if p := sc.Monster; p != nil {
		monster = p.Monster.Key()
	}
	if s := r.Spoils(); s != nil {
		coins = s.Coins
	}

	return append(row,
		strconv.Itoa(rams),
		strconv.Itoa(catapults),
		strconv.Itoa(towers),
		walls,
		strconv.Itoa(supplies),
		strconv.Itoa(attShips),
		strconv.Itoa(defShips),
		monster,
		strconv.Itoa(coins),
	)
}

func appendSide(row []string, s models.SideSnapshot, rep models.CasualtyReport, reward *models.Equipment) []string {
	return append(row,
		rep.General.String(),
		strconv.Itoa(s.Armor),
		strconv.Itoa(s.Weapon),
		strconv.Itoa(s.Banner),
		strconv.Itoa(s.Follower),
		strconv.Itoa(s.Trinket),
		strconv.Itoa(s.Rank),
		strconv.Itoa(s.Melee),
		strconv.Itoa(s.Cavalry),
		strconv.Itoa(s.Ranged),
		strconv.Itoa(s.Leader),
		strconv.Itoa(rep.SoldiersLost),
		strconv.Itoa(rep.UnitsLost),
		strconv.Itoa(rep.Upgrades),
		strconv.FormatBool(reward != nil),
		string(s.Faction),
	)
}
