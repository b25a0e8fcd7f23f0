package models

import (
	"testing"

	"github.com/napolitain/autoresolve/internal/dice"
)

func TestDefaultRosterCoversFactions(t *testing.T) {
	r := DefaultRoster()

	for _, f := range AllFactions() {
		units := r.UnitsForFaction(f)
		if len(units) == 0 {
			t.Errorf("faction %s has no units", f)
		}
		for _, u := range units {
			if u.Faction != f {
				t.Errorf("unit %d listed under %s belongs to %s", u.ID, f, u.Faction)
			}
			if u.Size <= 0 {
				t.Errorf("unit %d has size %d", u.ID, u.Size)
			}
		}
	}
}

func TestRosterHandsOutCopies(t *testing.T) {
	r := DefaultRoster()

	u, ok := r.Unit(1)
	if !ok {
		t.Fatal("unit 1 missing from default roster")
	}
	u.AssignCasualties(u.Size)

	again, _ := r.Unit(1)
	if again.Size == 0 {
		t.Error("casualties on a looked-up unit leaked into the roster")
	}
	if _, ok := r.Unit(999); ok {
		t.Error("unknown id should not be found")
	}
}

func TestDefaultTreasureCoversSlots(t *testing.T) {
	tr := DefaultTreasure()
	for _, et := range AllEquipmentTypes() {
		if len(tr.ItemsOfType(et)) == 0 {
			t.Errorf("no %s items in default treasure", et)
		}
	}

	seen := make(map[int]bool)
	for _, e := range tr.All() {
		if seen[e.ID] {
			t.Errorf("duplicate equipment id %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestRandomItemWeighsCategoriesEqually(t *testing.T) {
	// One armor piece against five weapons: armor must still come up about half the time
	items := []*Equipment{{ID: 1, Type: Armor}}
	for i := 2; i <= 6; i++ {
		items = append(items, &Equipment{ID: i, Type: Weapon})
	}
	tr := NewTreasure(items)
	src := dice.New(7)

	armor := 0
	const draws = 4000
	for i := 0; i < draws; i++ {
		if tr.RandomItem(src).Type == Armor {
			armor++
		}
	}

	share := float64(armor) / draws
	if share < 0.45 || share > 0.55 {
		t.Errorf("armor share %.3f, want about 0.5", share)
	}
}

func TestRandomItemEmptyCatalog(t *testing.T) {
	tr := NewTreasure(nil)
	if tr.RandomItem(dice.New(1)) != nil {
		t.Error("empty catalog should yield no item")
	}
	if tr.RandomItemOfType(Armor, dice.New(1)) != nil {
		t.Error("empty category should yield no item")
	}
}
