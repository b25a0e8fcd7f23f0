package batch

import (
	"errors"
	"sync"
	"testing"

	"github.com/napolitain/autoresolve/internal/dice"
	"github.com/napolitain/autoresolve/internal/models"
	"github.com/napolitain/autoresolve/internal/solver/battle"
)

func testRunner() *Runner {
	return NewRunner(models.DefaultRoster(), models.DefaultTreasure(), nil)
}

func templateBattle() *models.Battle {
	roster := models.DefaultRoster()
	attacker := models.NewForce(models.Rebel, nil, models.NewGeneral(1))
	defender := models.NewForce(models.Menoriad, nil, models.NewGeneral(1))
	for _, id := range []int{1, 2, 3, 4} {
		u, _ := roster.Unit(id)
		attacker.AddUnit(u)
	}
	for _, id := range []int{14, 15, 16, 17} {
		u, _ := roster.Unit(id)
		defender.AddUnit(u)
	}
	return models.NewBattle(attacker, defender, models.NormalBattle())
}

func TestPartition(t *testing.T) {
	tests := []struct {
		count, workers int
		want           []int
	}{
		{10, 3, []int{3, 3, 3, 1}},
		{12, 4, []int{3, 3, 3, 3}},
		{2, 4, []int{2}},
		{5, 1, []int{5}},
		{5, 0, []int{5}},
		{0, 4, nil},
		{7, 7, []int{1, 1, 1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		got := Partition(tt.count, tt.workers)
		if len(got) != len(tt.want) {
			t.Errorf("Partition(%d, %d) = %v, want %v", tt.count, tt.workers, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Partition(%d, %d) = %v, want %v", tt.count, tt.workers, got, tt.want)
				break
			}
		}
	}
}

func TestPartitionSumsToCount(t *testing.T) {
	for count := 0; count <= 100; count++ {
		for workers := 1; workers <= 16; workers++ {
			sum := 0
			for _, n := range Partition(count, workers) {
				if n <= 0 {
					t.Fatalf("Partition(%d, %d) has an empty partition", count, workers)
				}
				sum += n
			}
			if sum != count {
				t.Fatalf("Partition(%d, %d) sums to %d", count, workers, sum)
			}
		}
	}
}

func TestRunCountsEveryBattle(t *testing.T) {
	runner := testRunner()

	for _, workers := range []int{0, 1, 2, 3, 4, 7, 16} {
		for _, count := range []int{0, 1, 10, 97} {
			report, err := runner.Run(Options{
				Template: templateBattle(),
				Count:    count,
				Workers:  workers,
				Seed:     99,
			})
			if err != nil {
				t.Fatalf("workers=%d count=%d: %v", workers, count, err)
			}
			if len(report.Results) != count || report.Tally.Total() != count {
				t.Errorf("workers=%d count=%d: %d results, tally %d",
					workers, count, len(report.Results), report.Tally.Total())
			}
			if report.Failed != 0 {
				t.Errorf("workers=%d count=%d: %d failed", workers, count, report.Failed)
			}
		}
	}
}

func TestRunLeavesTemplateUntouched(t *testing.T) {
	tmpl := templateBattle()
	soldiers := tmpl.Attacker.TotalSoldiers() + tmpl.Defender.TotalSoldiers()

	if _, err := testRunner().Run(Options{Template: tmpl, Count: 50, Workers: 4, Seed: 1}); err != nil {
		t.Fatal(err)
	}
	if got := tmpl.Attacker.TotalSoldiers() + tmpl.Defender.TotalSoldiers(); got != soldiers {
		t.Errorf("template has %d soldiers after the batch, want %d", got, soldiers)
	}
}

func TestRunRandomBattles(t *testing.T) {
	siege := models.Siege
	report, err := testRunner().Run(Options{
		Count:     40,
		Randomize: true,
		Kind:      &siege,
		Workers:   3,
		Seed:      5,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range report.Results {
		if r.Scenario().Kind != models.Siege {
			t.Fatalf("generated %s, want Siege", r.Scenario().Kind)
		}
	}
}

func TestRunSeededSequentialIsReproducible(t *testing.T) {
	runner := testRunner()
	opts := Options{Count: 200, Randomize: true, Seed: 2024}

	first, err := runner.Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := runner.Run(opts)
	if err != nil {
		t.Fatal(err)
	}

	if first.Tally != second.Tally {
		t.Fatalf("tallies differ: %v vs %v", first.Tally, second.Tally)
	}
	for i := range first.Results {
		a, b := first.Results[i], second.Results[i]
		if a.Score() != b.Score() || a.AttackerReport() != b.AttackerReport() {
			t.Fatalf("battle %d differs between runs", i)
		}
	}
	if first.ID == second.ID {
		t.Error("two batches share an id")
	}
}

func TestRunSeededPoolIsReproducible(t *testing.T) {
	runner := testRunner()
	opts := Options{Template: templateBattle(), Count: 123, Workers: 4, Seed: 77}

	first, err := runner.Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := runner.Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Tally != second.Tally {
		t.Errorf("tallies differ: %v vs %v", first.Tally, second.Tally)
	}
}

func TestRunPanickingWorkerFailsBatch(t *testing.T) {
	var mu sync.Mutex
	seen := 0
	resolve = func(b *models.Battle, tr *models.Treasure, src dice.Source) *models.BattleResult {
		mu.Lock()
		seen++
		mu.Unlock()
		panic("boom")
	}
	defer func() { resolve = battle.Autoresolve }()

	// 9 battles on 4 workers: partitions of 2, 2, 2, 2 and 1
	report, err := testRunner().Run(Options{Template: templateBattle(), Count: 9, Workers: 4, Seed: 3})
	if err == nil {
		t.Fatal("expected an error")
	}
	if seen != 5 {
		t.Errorf("resolved %d battles before failing, want one per partition", seen)
	}

	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != StageResolve {
		t.Fatalf("error = %v, want a resolve StageError", err)
	}
	if report == nil || report.Failed != 5 {
		t.Fatalf("report = %+v, want 5 failed workers", report)
	}
	if len(report.Results) != 0 || report.Tally.Total() != 0 {
		t.Error("failed batch returned aggregate data")
	}
}

func TestRunSequentialPanicFailsBatch(t *testing.T) {
	resolve = func(*models.Battle, *models.Treasure, dice.Source) *models.BattleResult {
		panic("boom")
	}
	defer func() { resolve = battle.Autoresolve }()

	report, err := testRunner().Run(Options{Template: templateBattle(), Count: 3})

	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != StageResolve {
		t.Fatalf("error = %v, want a resolve StageError", err)
	}
	if report.Failed != 1 {
		t.Errorf("failed = %d, want 1", report.Failed)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	noRoster := NewRunner(nil, nil, nil)
	noDefender := templateBattle()
	noDefender.Defender = nil

	tests := []struct {
		name   string
		runner *Runner
		opts   Options
	}{
		{"negative count", testRunner(), Options{Template: templateBattle(), Count: -1}},
		{"negative workers", testRunner(), Options{Template: templateBattle(), Count: 1, Workers: -2}},
		{"no template", testRunner(), Options{Count: 1}},
		{"no defender", testRunner(), Options{Template: noDefender, Count: 1}},
		{"random without roster", noRoster, Options{Count: 1, Randomize: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.runner.Run(tt.opts)
			var stageErr *StageError
			if !errors.As(err, &stageErr) || stageErr.Stage != StageLoad {
				t.Errorf("error = %v, want a load StageError", err)
			}
		})
	}
}

func TestRunMonsterHuntWithoutDefender(t *testing.T) {
	tmpl := templateBattle()
	tmpl.Defender = nil
	tmpl.Scenario = models.MonsterBattle(models.Troll)

	report, err := testRunner().Run(Options{Template: tmpl, Count: 20, Workers: 2, Seed: 8})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range report.Results {
		if r.DefenderReport() != (models.CasualtyReport{}) {
			t.Fatalf("monster hunt reported defender casualties %+v", r.DefenderReport())
		}
	}
}

func TestStageErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := error(&StageError{Stage: StageSave, Err: cause})

	if !errors.Is(err, cause) {
		t.Error("StageError does not unwrap to its cause")
	}
	if got := err.Error(); got != "save failed: disk full" {
		t.Errorf("Error() = %q", got)
	}
}
