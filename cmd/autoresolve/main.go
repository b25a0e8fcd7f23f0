package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/napolitain/autoresolve/internal/dice"
	"github.com/napolitain/autoresolve/internal/loader"
	"github.com/napolitain/autoresolve/internal/logging"
	"github.com/napolitain/autoresolve/internal/models"
	"github.com/napolitain/autoresolve/internal/solver/batch"
	"github.com/napolitain/autoresolve/internal/solver/battle"
	"github.com/napolitain/autoresolve/internal/telemetry"
)

var (
	random       bool
	save         bool
	logRuns      bool
	multithread  bool
	verbose      bool
	outputFile   string
	rosterFile   string
	treasureFile string
	battleFile   string
	configFile   string
	dbFile       string
	count        int
	battleType   int
	workers      int
	seed         uint64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "autoresolve",
		Short: "Tabletop wargame battle autoresolver",
		Long: `Resolves battles between two forces, or a force and a monster, and
aggregates the outcomes over many runs.`,
		Run: runAutoresolve,
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&random, "random", "r", false, "Run randomly generated battles")
	flags.BoolVarP(&save, "save", "s", false, "Save battle runs to file")
	flags.BoolVarP(&logRuns, "log", "l", false, "Print results from each battle run")
	flags.StringVarP(&outputFile, "file", "f", "", "Override output file for saved runs (requires --save)")
	flags.IntVarP(&count, "count", "c", 1, "Number of battle runs to perform")
	flags.IntVarP(&battleType, "battle", "b", 0, "Battle type: 1:Normal, 2:Siege, 3:Raid, 4:Naval, 5:Monster")
	flags.StringVar(&rosterFile, "unit", "", "Override roster file (CSV)")
	flags.StringVar(&treasureFile, "treasure", "", "Override treasure file (CSV)")
	flags.StringVarP(&battleFile, "json", "j", "", "Battle file (JSON) to read and run")
	flags.BoolVarP(&multithread, "multithread", "m", false, "Spread runs over a worker pool")
	flags.IntVarP(&workers, "workers", "w", 0, "Worker count with --multithread (default: number of CPUs)")
	flags.Uint64Var(&seed, "seed", 0, "Random seed, 0 for a random one")
	flags.StringVar(&configFile, "config", "", "Path to YAML config file")
	flags.StringVar(&dbFile, "db", "", "Also store saved runs in this SQLite database")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.MarkFlagsMutuallyExclusive("json", "random")
	rootCmd.MarkFlagsMutuallyExclusive("json", "battle")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAutoresolve(cmd *cobra.Command, args []string) {
	printBanner()

	if err := run(cmd); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return &batch.StageError{Stage: batch.StageLoad, Err: err}
	}

	logger, err := logging.New(verbose)
	if err != nil {
		return &batch.StageError{Stage: batch.StageLoad, Err: err}
	}
	defer logger.Sync()

	roster, treasure, err := loadCatalogs(cfg)
	if err != nil {
		return &batch.StageError{Stage: batch.StageLoad, Err: err}
	}

	opts, err := buildOptions(cfg, roster, treasure)
	if err != nil {
		return &batch.StageError{Stage: batch.StageLoad, Err: err}
	}

	infoColor := color.New(color.FgYellow)
	infoColor.Printf("📦 Loaded %d units, %d items\n", roster.Len(), treasure.Len())
	infoColor.Printf("🔄 Resolving %d %s on %s...\n\n", opts.Count, describeBattles(opts), describeWorkers(opts.Workers))

	runner := batch.NewRunner(roster, treasure, logger)
	report, err := runner.Run(opts)
	if err != nil {
		return err
	}

	successColor := color.New(color.FgGreen, color.Bold)
	successColor.Printf("✓ Resolved %d battles in %v\n\n", len(report.Results), report.Duration.Round(time.Millisecond))

	printTally(report.Tally)
	if logRuns {
		printBattles(report.Results)
	}

	if save {
		path, err := saveReport(cfg, opts, report, logger)
		if err != nil {
			return err
		}
		successColor.Printf("\n✓ Saved %d runs to %s\n", len(report.Results), path)
	}
	return nil
}

func printBanner() {
	banner := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("14")).
		Padding(0, 2).
		Render("Autoresolve\nBattle Simulator")
	fmt.Println()
	fmt.Println(banner)
	fmt.Println()
}

// resolveConfig layers the command-line flags over the config file over the defaults
func resolveConfig(cmd *cobra.Command) (*models.Config, error) {
	cfg := models.DefaultConfig()
	if configFile != "" {
		loaded, err := models.LoadConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("unit") {
		cfg.RosterFile = rosterFile
	}
	if flags.Changed("treasure") {
		cfg.TreasureFile = treasureFile
	}
	if flags.Changed("db") {
		cfg.Database = dbFile
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	if flags.Changed("file") && !save {
		return nil, errors.New("--file requires --save")
	}
	if count < 0 {
		return nil, fmt.Errorf("count must be >= 0, got %d", count)
	}
	if flags.Changed("battle") {
		if _, err := models.ScenarioKindFromIndex(battleType); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadCatalogs reads the roster and treasure files, falling back to the built-in catalogs
func loadCatalogs(cfg *models.Config) (*models.Roster, *models.Treasure, error) {
	roster := models.DefaultRoster()
	if cfg.RosterFile != "" {
		r, err := loader.LoadRoster(cfg.RosterFile)
		if err != nil {
			return nil, nil, err
		}
		roster = r
	}

	treasure := models.DefaultTreasure()
	if cfg.TreasureFile != "" {
		t, err := loader.LoadTreasure(cfg.TreasureFile)
		if err != nil {
			return nil, nil, err
		}
		treasure = t
	}
	return roster, treasure, nil
}

// buildOptions picks the battles to run. Without --random or --json one random battle of the
// requested type is generated and fought count times.
func buildOptions(cfg *models.Config, roster *models.Roster, treasure *models.Treasure) (batch.Options, error) {
	opts := batch.Options{
		Count:   count,
		Seed:    seed,
		Caps:    cfg.Caps,
		Workers: poolSize(multithread, cfg.Workers),
	}

	if battleType != 0 {
		kind, err := models.ScenarioKindFromIndex(battleType)
		if err != nil {
			return opts, err
		}
		opts.Kind = &kind
	}

	switch {
	case battleFile != "":
		bf, err := loader.LoadBattle(battleFile)
		if err != nil {
			return opts, err
		}
		b, err := bf.Produce(roster, treasure)
		if err != nil {
			return opts, fmt.Errorf("failed to build battle from %s: %w", battleFile, err)
		}
		opts.Template = b
	case random:
		opts.Randomize = true
	default:
		kind := models.Normal
		if opts.Kind != nil {
			kind = *opts.Kind
		}
		src := dice.NewRandom()
		if seed != 0 {
			src = dice.New(seed)
		}
		opts.Template = battle.GenerateRandomBattle(roster, treasure, cfg.Caps, &kind, src)
	}
	return opts, nil
}

// poolSize returns the worker count: sequential unless multithreading, then configured or one per CPU
func poolSize(multithread bool, configured int) int {
	if !multithread {
		return 0
	}
	if configured > 0 {
		return configured
	}
	return runtime.NumCPU()
}

// savedKind is the battle type the saved runs are filed under, nil for mixed types
func savedKind(opts batch.Options) *models.ScenarioKind {
	if opts.Template != nil {
		k := opts.Template.Scenario.Kind
		return &k
	}
	return opts.Kind
}

func saveReport(cfg *models.Config, opts batch.Options, report *batch.Report, logger *zap.Logger) (string, error) {
	path := outputFile
	if path == "" {
		path = telemetry.Path(cfg.OutputDir, savedKind(opts))
	}

	sinks := []telemetry.Sink{}
	w, err := telemetry.NewDelimitedWriter(path)
	if err != nil {
		return "", &batch.StageError{Stage: batch.StageSave, Err: err}
	}
	sinks = append(sinks, w)

	if cfg.Database != "" {
		db, err := telemetry.OpenSQLite(cfg.Database)
		if err != nil {
			w.Close()
			return "", &batch.StageError{Stage: batch.StageSave, Err: err}
		}
		sinks = append(sinks, db)
	}

	var saveErr error
	for _, s := range sinks {
		if err := s.Write(report.Results); err != nil && saveErr == nil {
			saveErr = err
		}
		if err := s.Close(); err != nil && saveErr == nil {
			saveErr = err
		}
	}
	if saveErr != nil {
		return "", &batch.StageError{Stage: batch.StageSave, Err: saveErr}
	}

	logger.Debug("telemetry saved",
		zap.String("file", path),
		zap.String("database", cfg.Database),
		zap.Int("rows", len(report.Results)))
	return path, nil
}
