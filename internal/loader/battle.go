package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/napolitain/autoresolve/internal/models"
)

// SideJSON describes one force of a battle file. Equipment fields hold treasure ids, 0 for an empty slot.
type SideJSON struct {
	Faction        string `json:"faction"`
	Rank           int    `json:"rank"`
	Armor          int    `json:"armor"`
	Weapon         int    `json:"weapon"`
	Banner         int    `json:"banner"`
	Follower       int    `json:"follower"`
	Trinket        int    `json:"trinket"`
	Units          []int  `json:"units"`
	Reinforcements int    `json:"reinforcements"`
	AdvancedCombat bool   `json:"advanced_combat"`
}

// DefensesJSON describes a defended town
type DefensesJSON struct {
	Supplies int    `json:"supplies"`
	Walls    string `json:"walls"`
}

// ScenarioJSON describes the battle type and its parameters
type ScenarioJSON struct {
	Type          string        `json:"type"`
	Rams          int           `json:"rams,omitempty"`
	Catapults     int           `json:"catapults,omitempty"`
	SiegeTowers   int           `json:"siege_towers,omitempty"`
	Defenses      *DefensesJSON `json:"defenses,omitempty"`
	AttackerShips int           `json:"attacker_ships,omitempty"`
	DefenderShips int           `json:"defender_ships,omitempty"`
	Monster       string        `json:"monster,omitempty"`
}

// BattleFile is a pre-built battle. The defender is omitted in a monster hunt.
type BattleFile struct {
	Attacker SideJSON     `json:"attacker"`
	Defender *SideJSON    `json:"defender,omitempty"`
	Battle   ScenarioJSON `json:"battle"`
}

// LoadBattle reads a battle file
func LoadBattle(path string) (*BattleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read battle file: %w", err)
	}
	return ParseBattle(data)
}

// ParseBattle decodes a battle document
func ParseBattle(data []byte) (*BattleFile, error) {
	var bf BattleFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("failed to parse battle file: %w", err)
	}
	return &bf, nil
}

// Produce builds the battle against the catalogs. Unknown unit or item ids are errors.
func (bf *BattleFile) Produce(roster *models.Roster, treasure *models.Treasure) (*models.Battle, error) {
	if roster == nil || treasure == nil {
		return nil, errors.New("battle file needs a roster and a treasure catalog")
	}

	sc, err := bf.Battle.scenario()
	if err != nil {
		return nil, fmt.Errorf("battle: %w", err)
	}

	attacker, err := bf.Attacker.force(roster, treasure)
	if err != nil {
		return nil, fmt.Errorf("attacker: %w", err)
	}

	var defender *models.Force
	if !sc.IsMonster() {
		if bf.Defender == nil {
			return nil, fmt.Errorf("defender: missing in a %s battle", sc.Kind)
		}
		if defender, err = bf.Defender.force(roster, treasure); err != nil {
			return nil, fmt.Errorf("defender: %w", err)
		}
	}

	return models.NewBattle(attacker, defender, sc), nil
}

func (s SideJSON) force(roster *models.Roster, treasure *models.Treasure) (*models.Force, error) {
	faction, err := parseFactionField(s.Faction)
	if err != nil {
		return nil, err
	}
	if s.Rank < 0 {
		return nil, fmt.Errorf("negative rank %d", s.Rank)
	}
	if s.Reinforcements < 0 {
		return nil, fmt.Errorf("negative reinforcements %d", s.Reinforcements)
	}

	general := models.NewGeneral(s.Rank)
	slots := []struct {
		slot models.EquipmentType
		id   int
	}{
		{models.Armor, s.Armor},
		{models.Weapon, s.Weapon},
		{models.Banner, s.Banner},
		{models.Follower, s.Follower},
		{models.Trinket, s.Trinket},
	}
	for _, sl := range slots {
		if sl.id == 0 {
			continue
		}
		item, ok := treasure.Item(sl.id)
		if !ok {
			return nil, fmt.Errorf("unknown %s id %d", sl.slot, sl.id)
		}
		if item.Type != sl.slot {
			return nil, fmt.Errorf("item %d (%s) is a %s, not a %s", item.ID, item.Name, item.Type, sl.slot)
		}
		general.SetEquipment(item)
	}

	units := make([]*models.Unit, 0, len(s.Units))
	for _, id := range s.Units {
		u, ok := roster.Unit(id)
		if !ok {
			return nil, fmt.Errorf("unknown unit id %d", id)
		}
		units = append(units, u)
	}

	f := models.NewForce(faction, units, general)
	f.SetReinforcements(s.Reinforcements)
	f.SetAdvancedCombat(s.AdvancedCombat)
	return f, nil
}

func (s ScenarioJSON) scenario() (models.Scenario, error) {
	kind := models.Normal
	if s.Type != "" {
		var err error
		if kind, err = models.ParseScenarioKind(s.Type); err != nil {
			return models.Scenario{}, err
		}
	}

	switch kind {
	case models.Siege:
		town, err := s.town()
		if err != nil {
			return models.Scenario{}, err
		}
		if s.Rams < 0 || s.Catapults < 0 || s.SiegeTowers < 0 {
			return models.Scenario{}, errors.New("negative siege engine count")
		}
		return models.SiegeBattle(s.Rams, s.Catapults, s.SiegeTowers, town), nil
	case models.Raid:
		town, err := s.town()
		if err != nil {
			return models.Scenario{}, err
		}
		return models.RaidBattle(town), nil
	case models.Naval:
		if s.AttackerShips < 0 || s.DefenderShips < 0 {
			return models.Scenario{}, errors.New("negative ship count")
		}
		return models.NavalBattle(s.AttackerShips, s.DefenderShips), nil
	case models.MonsterHunt:
		if s.Monster == "" {
			return models.Scenario{}, errors.New("monster hunt without a monster")
		}
		monster, err := models.ParseMonsterKind(s.Monster)
		if err != nil {
			return models.Scenario{}, err
		}
		return models.MonsterBattle(monster), nil
	}
	return models.NormalBattle(), nil
}

func (s ScenarioJSON) town() (models.TownStats, error) {
	town := models.DefaultTownStats()
	if s.Defenses == nil {
		return town, nil
	}
	if s.Defenses.Supplies < 0 {
		return town, fmt.Errorf("negative supplies %d", s.Defenses.Supplies)
	}
	town.Supplies = s.Defenses.Supplies
	if s.Defenses.Walls != "" {
		walls, err := models.ParseWallTier(s.Defenses.Walls)
		if err != nil {
			return town, err
		}
		town.Walls = walls
	}
	return town, nil
}

// NewBattleFile describes a battle as a battle file, the inverse of Produce
func NewBattleFile(b *models.Battle) *BattleFile {
	bf := &BattleFile{
		Attacker: sideOf(b.Attacker),
		Battle:   scenarioOf(b.Scenario),
	}
	if b.Defender != nil && !b.Scenario.IsMonster() {
		d := sideOf(b.Defender)
		bf.Defender = &d
	}
	return bf
}

func sideOf(f *models.Force) SideJSON {
	s := SideJSON{
		Faction:        string(f.Faction),
		Reinforcements: f.Reinforcements(),
		AdvancedCombat: f.AdvancedCombat(),
		Units:          make([]int, 0, len(f.Units)),
	}
	if g := f.General; g != nil {
		s.Rank = g.Rank()
		s.Armor = g.EquipmentID(models.Armor)
		s.Weapon = g.EquipmentID(models.Weapon)
		s.Banner = g.EquipmentID(models.Banner)
		s.Follower = g.EquipmentID(models.Follower)
		s.Trinket = g.EquipmentID(models.Trinket)
	}
	for _, u := range f.Units {
		s.Units = append(s.Units, u.ID)
	}
	return s
}

func scenarioOf(sc models.Scenario) ScenarioJSON {
	s := ScenarioJSON{Type: sc.Kind.Key()}
	switch {
	case sc.Siege != nil:
		s.Rams, s.Catapults, s.SiegeTowers = sc.Siege.Rams, sc.Siege.Catapults, sc.Siege.SiegeTowers
		s.Defenses = defensesOf(sc.Siege.Defenses)
	case sc.Raid != nil:
		s.Defenses = defensesOf(sc.Raid.Defenses)
	case sc.Naval != nil:
		s.AttackerShips, s.DefenderShips = sc.Naval.AttackerShips, sc.Naval.DefenderShips
	case sc.Monster != nil:
		s.Monster = sc.Monster.Monster.Key()
	}
	return s
}

func defensesOf(t models.TownStats) *DefensesJSON {
	return &DefensesJSON{Supplies: t.Supplies, Walls: t.Walls.Key()}
}
