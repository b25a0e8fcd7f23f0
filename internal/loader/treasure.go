package loader

import (
	"fmt"
	"strconv"

	"github.com/napolitain/autoresolve/internal/models"
)

// Columns of the treasure file
const (
	treasureType = iota
	treasureName
	treasureEffect
	treasureCoinValue
	treasureID
	treasureBonus
	treasureRange
	treasureDragon
	treasureColumns
)

// LoadTreasure loads the equipment catalog from a CSV file with columns
// type,name,effect,coin_value,id,bonus,range,dragon
func LoadTreasure(path string) (*models.Treasure, error) {
	records, err := readCSV(path, treasureColumns)
	if err != nil {
		return nil, err
	}

	items := make([]*models.Equipment, 0, len(records))
	seen := make(map[int]bool, len(records))
	for _, rec := range records {
		e, err := parseEquipment(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to load treasure: %w", err)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("failed to load treasure: line %d: duplicate item id %d", rec.line, e.ID)
		}
		seen[e.ID] = true
		items = append(items, e)
	}

	return models.NewTreasure(items), nil
}

func parseEquipment(rec record) (*models.Equipment, error) {
	et, err := models.ParseEquipmentType(rec.fields[treasureType])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.line, err)
	}

	coins, err := rec.int(treasureCoinValue, "coin value")
	if err != nil {
		return nil, err
	}
	id, err := rec.int(treasureID, "id")
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, fmt.Errorf("line %d: item id must be positive, got %d", rec.line, id)
	}
	bonus, err := rec.int(treasureBonus, "bonus")
	if err != nil {
		return nil, err
	}
	rng, err := rec.int(treasureRange, "range")
	if err != nil {
		return nil, err
	}
	dragon, err := strconv.ParseBool(rec.fields[treasureDragon])
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid dragon flag %q", rec.line, rec.fields[treasureDragon])
	}

	return &models.Equipment{
		Type:      et,
		Name:      rec.fields[treasureName],
		Effect:    rec.fields[treasureEffect],
		CoinValue: coins,
		ID:        id,
		Bonus:     bonus,
		Range:     rng,
		Dragon:    dragon,
	}, nil
}
