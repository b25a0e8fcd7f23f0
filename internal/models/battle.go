package models

// Battle pairs two forces with a scenario.
// In a monster hunt Defender is nil: the monster stands in for it.
type Battle struct {
	Attacker *Force
	Defender *Force
	Scenario Scenario
}

// NewBattle creates a battle
func NewBattle(attacker, defender *Force, scenario Scenario) *Battle {
	return &Battle{Attacker: attacker, Defender: defender, Scenario: scenario}
}

// DefaultBattle returns two default forces fighting the given kind of battle
func DefaultBattle(kind ScenarioKind) *Battle {
	sc := DefaultScenario(kind)
	var defender *Force
	if !sc.IsMonster() {
		defender = DefaultForce()
	}
	return NewBattle(DefaultForce(), defender, sc)
}

// Clone returns a deep copy for an independent run
func (b *Battle) Clone() *Battle {
	c := &Battle{Scenario: b.Scenario.Clone()}
	if b.Attacker != nil {
		c.Attacker = b.Attacker.Clone()
	}
	if b.Defender != nil {
		c.Defender = b.Defender.Clone()
	}
	return c
}
