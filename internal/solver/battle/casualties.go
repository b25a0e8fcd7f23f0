package battle

import (
	"fmt"

	"github.com/napolitain/autoresolve/internal/dice"
	"github.com/napolitain/autoresolve/internal/models"
)

// Casualty rules
const (
	SoldiersPerRoll    = 10 // one casualty roll per this many soldiers
	SoldiersPerUnit    = 7  // casualties that make up one lost sub-unit estimate
	CasualtiesPerToken = 6  // inflicted casualties per upgrade token
	GeneralInjuryFaces = 8
	GeneralInjuryRoll  = 2 // a roll at or under this wounds, then slays
)

// CasualtyCounts are the casualty targets for one side before distribution
type CasualtyCounts struct {
	General      models.GeneralState
	SoldiersLost int
	UnitsLost    int
	Upgrades     int
}

// AssignResult is what distribution actually removed from a force
type AssignResult struct {
	SoldiersLost int
	UnitsLost    int // census of wiped sub-units after distribution
	Wiped        bool
}

// ComputeCasualties rolls the casualty targets for both sides.
// Both sides roll against the same weight, the attacker-relative outcome ordinal, so
// worse results for the attacker cost both armies more.
func ComputeCasualties(attackerSoldiers, defenderSoldiers int, outcome models.Outcome, src dice.Source) (CasualtyCounts, CasualtyCounts) {
	weight := outcome.Ordinal()

	att := CasualtyCounts{SoldiersLost: rollLosses(attackerSoldiers, weight, src)}
	def := CasualtyCounts{SoldiersLost: rollLosses(defenderSoldiers, weight, src)}

	att.UnitsLost = estimateUnitsLost(att.SoldiersLost)
	def.UnitsLost = estimateUnitsLost(def.SoldiersLost)

	// Upgrades are earned for casualties inflicted
	att.Upgrades = def.SoldiersLost / CasualtiesPerToken
	def.Upgrades = att.SoldiersLost / CasualtiesPerToken

	att.General = RollGeneralState(src)
	def.General = RollGeneralState(src)

	return att, def
}

func rollLosses(soldiers, weight int, src dice.Source) int {
	lost := 0
	for i := 0; i < soldiers/SoldiersPerRoll; i++ {
		lost += dice.Roll(src, 0, weight)
	}
	return lost
}

func estimateUnitsLost(soldiersLost int) int {
	return max(0, soldiersLost/SoldiersPerUnit-1)
}

// RollGeneralState rolls whether a general is wounded, and if so whether the wound is fatal
func RollGeneralState(src dice.Source) models.GeneralState {
	if dice.Roll(src, 1, GeneralInjuryFaces) > GeneralInjuryRoll {
		return models.Unharmed
	}
	if dice.Roll(src, 1, GeneralInjuryFaces) > GeneralInjuryRoll {
		return models.Wounded
	}
	return models.Slain
}

// Assign distributes the casualty targets over the force's sub-units in order.
//
// If the targets reach the whole force every sub-unit is wiped. Otherwise sub-units are
// scanned in repeated passes, each taking a random share of the remaining casualties; once
// as many sub-units are wiped as the target allows, the rest must keep at least one soldier.
// Exactly counts.SoldiersLost soldiers are removed in that case.
//
// Panics if a sub-unit refuses its share, which means the bookkeeping here is broken.
func Assign(counts CasualtyCounts, f *models.Force, src dice.Source) AssignResult {
	defer f.UpdateBonuses()

	total := f.TotalSoldiers()
	if counts.SoldiersLost >= total || counts.UnitsLost >= f.UnitCount() {
		for _, u := range f.Units {
			if !u.AssignCasualties(u.Size) {
				panic(fmt.Sprintf("battle: unit %d refused wipe of %d", u.ID, u.Size))
			}
		}
		return AssignResult{SoldiersLost: total, UnitsLost: f.UnitCount(), Wiped: true}
	}

	target := max(0, counts.SoldiersLost)
	assigned := 0
	wiped := 0
	// Lifted when a full pass cannot place a single casualty: every survivor is down
	// to one soldier and the wipe allowance is spent.
	mustSurvive := true

	for assigned < target {
		progress := false
		for _, u := range f.Units {
			if assigned == target {
				break
			}
			if u.Size == 0 {
				continue
			}

			top := u.Size
			if mustSurvive && wiped >= counts.UnitsLost {
				top = u.Size - 1
			}
			if top > 0 {
				progress = true
			}

			cas := min(dice.Roll(src, 0, top), target-assigned)
			if !u.AssignCasualties(cas) {
				panic(fmt.Sprintf("battle: unit %d of size %d refused %d casualties", u.ID, u.Size, cas))
			}
			assigned += cas
			if cas > 0 && u.Size == 0 {
				wiped++
			}
		}
		if !progress {
			mustSurvive = false
		}
	}

	return AssignResult{
		SoldiersLost: assigned,
		UnitsLost:    f.WipedUnits(),
		Wiped:        f.TotalSoldiers() == 0,
	}
}

// Inflict rolls and distributes casualties for both sides and sets the generals' fate.
// In a monster hunt there is no defending force and the defender report stays empty.
func Inflict(attacker, defender *models.Force, outcome models.Outcome, src dice.Source) (models.CasualtyReport, models.CasualtyReport) {
	defenderSoldiers := 0
	if defender != nil {
		defenderSoldiers = defender.TotalSoldiers()
	}

	attCounts, defCounts := ComputeCasualties(attacker.TotalSoldiers(), defenderSoldiers, outcome, src)

	attReport := apply(attCounts, attacker, src)
	var defReport models.CasualtyReport
	if defender != nil {
		defReport = apply(defCounts, defender, src)
	}

	return attReport, defReport
}

func apply(counts CasualtyCounts, f *models.Force, src dice.Source) models.CasualtyReport {
	res := Assign(counts, f, src)
	if f.General != nil {
		f.General.State = counts.General
	}
	return models.CasualtyReport{
		General:      counts.General,
		SoldiersLost: res.SoldiersLost,
		UnitsLost:    res.UnitsLost,
		Upgrades:     counts.Upgrades,
	}
}
