package main

import (
	"runtime"
	"testing"

	"github.com/napolitain/autoresolve/internal/models"
	"github.com/napolitain/autoresolve/internal/solver/batch"
)

func TestPoolSize(t *testing.T) {
	tests := []struct {
		multithread bool
		configured  int
		want        int
	}{
		{false, 8, 0},
		{true, 3, 3},
		{true, 0, runtime.NumCPU()},
	}

	for _, tt := range tests {
		if got := poolSize(tt.multithread, tt.configured); got != tt.want {
			t.Errorf("poolSize(%v, %d) = %d, want %d", tt.multithread, tt.configured, got, tt.want)
		}
	}
}

func TestSavedKind(t *testing.T) {
	naval := models.Naval
	if k := savedKind(batch.Options{Kind: &naval}); k == nil || *k != models.Naval {
		t.Errorf("random naval batch saved under %v", k)
	}
	if k := savedKind(batch.Options{Randomize: true}); k != nil {
		t.Errorf("mixed batch saved under %v", *k)
	}

	tmpl := models.NewBattle(models.DefaultForce(), nil, models.MonsterBattle(models.Demon))
	if k := savedKind(batch.Options{Template: tmpl, Kind: &naval}); k == nil || *k != models.MonsterHunt {
		t.Errorf("template batch saved under %v", k)
	}
}

func TestBuildOptionsDefaultBattle(t *testing.T) {
	defer resetFlags()
	count, battleType, seed = 5, 2, 17

	cfg := models.DefaultConfig()
	opts, err := buildOptions(cfg, models.DefaultRoster(), models.DefaultTreasure())
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}

	if opts.Randomize {
		t.Error("default run should fight a fixed battle")
	}
	if opts.Template == nil || opts.Template.Scenario.Kind != models.Siege {
		t.Fatalf("template = %+v, want a siege", opts.Template)
	}
	if opts.Count != 5 || opts.Seed != 17 || opts.Workers != 0 {
		t.Errorf("opts = %+v", opts)
	}
}

func TestBuildOptionsRandom(t *testing.T) {
	defer resetFlags()
	random, multithread, count = true, true, 10

	cfg := models.DefaultConfig()
	cfg.Workers = 4
	opts, err := buildOptions(cfg, models.DefaultRoster(), models.DefaultTreasure())
	if err != nil {
		t.Fatal(err)
	}
	if !opts.Randomize || opts.Template != nil || opts.Kind != nil {
		t.Errorf("opts = %+v, want random battles of any type", opts)
	}
	if opts.Workers != 4 {
		t.Errorf("workers = %d, want 4", opts.Workers)
	}
}

func TestBuildOptionsBattleFile(t *testing.T) {
	defer resetFlags()
	battleFile = "../../data/scenarios/siege.json"

	opts, err := buildOptions(models.DefaultConfig(), models.DefaultRoster(), models.DefaultTreasure())
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}
	if opts.Template == nil || opts.Template.Scenario.Kind != models.Siege {
		t.Errorf("template = %+v", opts.Template)
	}
}

func TestBuildOptionsMissingBattleFile(t *testing.T) {
	defer resetFlags()
	battleFile = "../../data/scenarios/nope.json"

	if _, err := buildOptions(models.DefaultConfig(), models.DefaultRoster(), models.DefaultTreasure()); err == nil {
		t.Error("expected an error")
	}
}

func resetFlags() {
	random, save, logRuns, multithread, verbose = false, false, false, false, false
	outputFile, rosterFile, treasureFile, battleFile, configFile, dbFile = "", "", "", "", "", ""
	count, battleType, workers = 1, 0, 0
	seed = 0
}
