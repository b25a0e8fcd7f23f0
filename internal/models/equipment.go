package models

// Equipment is an item a general can carry.
// Items are shared by pointer from the Treasure catalog and never mutated.
type Equipment struct {
	Type      EquipmentType
	Name      string
	Effect    string
	CoinValue int
	ID        int
	Bonus     int // autoresolve bonus
	Range     int
	Dragon    bool
}
