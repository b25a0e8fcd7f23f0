package models

import (
	"testing"
)

func TestSetEquipment(t *testing.T) {
	treasure := DefaultTreasure()
	g := NewGeneral(0)

	for _, et := range AllEquipmentTypes() {
		items := treasure.ItemsOfType(et)
		if len(items) == 0 {
			t.Fatalf("default treasure has no %s", et)
		}
		g.SetEquipment(items[0])

		got := g.Equipment(et)
		if got == nil {
			t.Errorf("%s slot empty after SetEquipment", et)
			continue
		}
		if got.Type != et {
			t.Errorf("%s slot holds a %s", et, got.Type)
		}
	}
}

func TestGeneralBonusNeverStale(t *testing.T) {
	g := NewGeneral(0)
	if g.Bonus() != 0 {
		t.Fatalf("unequipped rank 0 general has bonus %d", g.Bonus())
	}

	g.SetRank(1)
	if g.Bonus() != 1 {
		t.Errorf("after SetRank(1): bonus %d, want 1", g.Bonus())
	}

	armor := &Equipment{Type: Armor, ID: 1, Bonus: 3}
	g.SetEquipment(armor)
	if g.Bonus() != 4 {
		t.Errorf("after equipping +3 armor: bonus %d, want 4", g.Bonus())
	}

	better := &Equipment{Type: Armor, ID: 2, Bonus: 5}
	g.SetEquipment(better)
	if g.Bonus() != 6 {
		t.Errorf("after replacing armor: bonus %d, want 6", g.Bonus())
	}

	g.Unequip(Armor)
	if g.Bonus() != 1 {
		t.Errorf("after unequipping armor: bonus %d, want 1", g.Bonus())
	}
	if g.Equipment(Armor) != nil {
		t.Error("armor slot should be empty after Unequip")
	}
}

func TestFollowerOnlyFindsTreasure(t *testing.T) {
	g := NewGeneral(2)
	g.SetEquipment(&Equipment{Type: Follower, ID: 11, Bonus: 3})

	if g.Bonus() != 2 {
		t.Errorf("follower changed combat bonus: got %d, want 2", g.Bonus())
	}
	if g.FollowerBonus() != 3 {
		t.Errorf("FollowerBonus = %d, want 3", g.FollowerBonus())
	}

	g.Unequip(Follower)
	if g.FollowerBonus() != 0 {
		t.Errorf("FollowerBonus without follower = %d, want 0", g.FollowerBonus())
	}
}

func TestEmptySlotVersusZeroBonusItem(t *testing.T) {
	g := NewGeneral(0)
	if g.Equipment(Banner) != nil || g.EquipmentID(Banner) != 0 {
		t.Fatal("fresh general should have an empty banner slot")
	}

	plain := &Equipment{Type: Banner, ID: 99, Bonus: 0}
	g.SetEquipment(plain)
	if g.Equipment(Banner) != plain {
		t.Error("zero-bonus banner should still occupy the slot")
	}
	if g.EquipmentID(Banner) != 99 {
		t.Errorf("EquipmentID(Banner) = %d, want 99", g.EquipmentID(Banner))
	}
	if g.Bonus() != 0 {
		t.Errorf("zero-bonus banner changed bonus to %d", g.Bonus())
	}
}

func TestGeneralCloneSharesItems(t *testing.T) {
	item := &Equipment{Type: Weapon, ID: 4, Bonus: 1}
	g := NewGeneral(1)
	g.SetEquipment(item)

	c := g.Clone()
	c.SetRank(3)
	c.State = Slain

	if g.Rank() != 1 || g.State != Unharmed {
		t.Error("mutating the clone changed the original")
	}
	if c.Equipment(Weapon) != item {
		t.Error("clone should share the catalog item")
	}
}
