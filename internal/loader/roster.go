package loader

import (
	"fmt"
	"strconv"

	"github.com/napolitain/autoresolve/internal/models"
)

// Columns of the roster file
const (
	rosterID = iota
	rosterFaction
	rosterName
	rosterType
	rosterBonus
	rosterSize
	rosterColumns
)

// LoadRoster loads the unit roster from a CSV file with columns
// id,faction,name,type,bonus,size. Faction is 1..4 or a faction name, type is 1..3.
func LoadRoster(path string) (*models.Roster, error) {
	records, err := readCSV(path, rosterColumns)
	if err != nil {
		return nil, err
	}

	units := make([]*models.Unit, 0, len(records))
	seen := make(map[int]bool, len(records))
	for _, rec := range records {
		u, err := parseUnit(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to load roster: %w", err)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("failed to load roster: line %d: duplicate unit id %d", rec.line, u.ID)
		}
		seen[u.ID] = true
		units = append(units, u)
	}

	return models.NewRoster(units), nil
}

func parseUnit(rec record) (*models.Unit, error) {
	id, err := rec.int(rosterID, "id")
	if err != nil {
		return nil, err
	}

	faction, err := parseFactionField(rec.fields[rosterFaction])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.line, err)
	}

	typeIndex, err := rec.int(rosterType, "type")
	if err != nil {
		return nil, err
	}
	unitType, err := models.UnitTypeFromIndex(typeIndex)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.line, err)
	}

	bonus, err := rec.int(rosterBonus, "bonus")
	if err != nil {
		return nil, err
	}
	size, err := rec.int(rosterSize, "size")
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, fmt.Errorf("line %d: negative size %d", rec.line, size)
	}

	return &models.Unit{
		ID:      id,
		Faction: faction,
		Name:    rec.fields[rosterName],
		Type:    unitType,
		Bonus:   bonus,
		Size:    size,
	}, nil
}

func parseFactionField(s string) (models.Faction, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return models.FactionFromIndex(i)
	}
	return models.ParseFaction(s)
}
