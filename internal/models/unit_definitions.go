package models

// DefaultRoster returns the built-in unit roster, used when no roster file is given.
// Columns follow data/units.csv: id, faction, name, type, bonus, size.
func DefaultRoster() *Roster {
	return NewRoster([]*Unit{
		// Rebel
		{ID: 1, Faction: Rebel, Name: "Militia", Type: Melee, Bonus: 1, Size: 40},
		{ID: 2, Faction: Rebel, Name: "Partisans", Type: Melee, Bonus: 2, Size: 30},
		{ID: 3, Faction: Rebel, Name: "Outriders", Type: Cavalry, Bonus: 2, Size: 20},
		{ID: 4, Faction: Rebel, Name: "Slingers", Type: Ranged, Bonus: 1, Size: 30},
		{ID: 5, Faction: Rebel, Name: "Hunters", Type: Ranged, Bonus: 2, Size: 20},

		// Beladimir
		{ID: 6, Faction: Beladimir, Name: "Pikemen", Type: Melee, Bonus: 2, Size: 40},
		{ID: 7, Faction: Beladimir, Name: "Royal Guard", Type: Melee, Bonus: 3, Size: 30},
		{ID: 8, Faction: Beladimir, Name: "Knights", Type: Cavalry, Bonus: 4, Size: 20},
		{ID: 9, Faction: Beladimir, Name: "Crossbowmen", Type: Ranged, Bonus: 2, Size: 30},

		// Lerastir
		{ID: 10, Faction: Lerastir, Name: "Spearmen", Type: Melee, Bonus: 2, Size: 40},
		{ID: 11, Faction: Lerastir, Name: "Horse Archers", Type: Cavalry, Bonus: 3, Size: 20},
		{ID: 12, Faction: Lerastir, Name: "Lancers", Type: Cavalry, Bonus: 3, Size: 20},
		{ID: 13, Faction: Lerastir, Name: "Longbowmen", Type: Ranged, Bonus: 3, Size: 30},

		// Menoriad
		{ID: 14, Faction: Menoriad, Name: "Swordsmen", Type: Melee, Bonus: 3, Size: 30},
		{ID: 15, Faction: Menoriad, Name: "Axemen", Type: Melee, Bonus: 2, Size: 40},
		{ID: 16, Faction: Menoriad, Name: "Raiders", Type: Cavalry, Bonus: 2, Size: 20},
		{ID: 17, Faction: Menoriad, Name: "Archers", Type: Ranged, Bonus: 2, Size: 30},
	})
}

// DefaultTreasure returns the built-in equipment catalog, used when no treasure file is given
func DefaultTreasure() *Treasure {
	return NewTreasure([]*Equipment{
		{ID: 1, Type: Armor, Name: "Leather Jerkin", Effect: "+1 autoresolve", CoinValue: 50, Bonus: 1},
		{ID: 2, Type: Armor, Name: "Chainmail", Effect: "+2 autoresolve", CoinValue: 120, Bonus: 2},
		{ID: 3, Type: Armor, Name: "Plate Armor", Effect: "+3 autoresolve", CoinValue: 250, Bonus: 3},
		{ID: 4, Type: Weapon, Name: "Longsword", Effect: "+1 autoresolve", CoinValue: 60, Bonus: 1, Range: 1},
		{ID: 5, Type: Weapon, Name: "War Axe", Effect: "+2 autoresolve", CoinValue: 140, Bonus: 2, Range: 1},
		{ID: 6, Type: Weapon, Name: "Dragonbone Bow", Effect: "+3 autoresolve", CoinValue: 400, Bonus: 3, Range: 3, Dragon: true},
		{ID: 7, Type: Trinket, Name: "Lucky Coin", Effect: "+1 autoresolve", CoinValue: 40, Bonus: 1},
		{ID: 8, Type: Trinket, Name: "Seer's Amulet", Effect: "+2 autoresolve", CoinValue: 180, Bonus: 2},
		{ID: 9, Type: Banner, Name: "House Banner", Effect: "+1 autoresolve", CoinValue: 80, Bonus: 1},
		{ID: 10, Type: Banner, Name: "Battle Standard", Effect: "+2 autoresolve", CoinValue: 200, Bonus: 2},
		{ID: 11, Type: Follower, Name: "Scout", Effect: "+1 treasure finding", CoinValue: 70, Bonus: 1},
		{ID: 12, Type: Follower, Name: "Treasure Hunter", Effect: "+3 treasure finding", CoinValue: 300, Bonus: 3},
	})
}
