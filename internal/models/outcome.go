package models

import "fmt"

// Outcome is the result of a battle from the attacker's point of view, best first.
// The ordinal (1..7) doubles as the casualty weight of the battle.
type Outcome int

const (
	DecisiveVictory Outcome = iota + 1
	HeroicVictory
	CloseVictory
	Draw
	CloseDefeat
	ValiantDefeat
	CrushingDefeat
)

// OutcomeCount is the number of distinct outcomes
const OutcomeCount = 7

// AllOutcomes returns all outcomes, best first
func AllOutcomes() []Outcome {
	return []Outcome{
		DecisiveVictory, HeroicVictory, CloseVictory,
		Draw,
		CloseDefeat, ValiantDefeat, CrushingDefeat,
	}
}

// Ordinal returns the 1-based position of the outcome
func (o Outcome) Ordinal() int {
	return int(o)
}

// IsVictory reports whether the attacker won
func (o Outcome) IsVictory() bool {
	return o >= DecisiveVictory && o <= CloseVictory
}

// IsDefeat reports whether the attacker lost
func (o Outcome) IsDefeat() bool {
	return o >= CloseDefeat && o <= CrushingDefeat
}

func (o Outcome) String() string {
	switch o {
	case DecisiveVictory:
		return "Decisive Victory"
	case HeroicVictory:
		return "Heroic Victory"
	case CloseVictory:
		return "Close Victory"
	case Draw:
		return "Draw"
	case CloseDefeat:
		return "Close Defeat"
	case ValiantDefeat:
		return "Valiant Defeat"
	case CrushingDefeat:
		return "Crushing Defeat"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Tally counts battles per outcome, indexed by ordinal-1
type Tally [OutcomeCount]int

// Add counts one battle
func (t *Tally) Add(o Outcome) {
	t[o.Ordinal()-1]++
}

// Merge adds another tally element-wise
func (t *Tally) Merge(other Tally) {
	for i := range t {
		t[i] += other[i]
	}
}

// Count returns the number of battles with the given outcome
func (t *Tally) Count(o Outcome) int {
	return t[o.Ordinal()-1]
}

// Total returns the number of battles counted
func (t *Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}
