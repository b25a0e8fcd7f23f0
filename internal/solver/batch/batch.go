// Package batch runs many autoresolved battles, sequentially or on a fixed worker pool,
// and aggregates their outcomes.
package batch

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/napolitain/autoresolve/internal/dice"
	"github.com/napolitain/autoresolve/internal/models"
	"github.com/napolitain/autoresolve/internal/solver/battle"
)

// Stages reported by StageError
const (
	StageLoad      = "load"
	StageResolve   = "resolve"
	StageAggregate = "aggregate"
	StageSave      = "save"
)

// StageError tags a failure with the pipeline stage it happened in
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Options configures a batch
type Options struct {
	Template  *models.Battle       // cloned for every run unless Randomize is set
	Count     int                  // number of battles
	Randomize bool                 // generate a fresh random battle per run
	Kind      *models.ScenarioKind // battle type for random battles, nil for any
	Workers   int                  // 0 or 1 runs sequentially
	Seed      uint64               // 0 seeds every source randomly
	Caps      models.GenerationCaps
}

// Report is the aggregate of a batch
type Report struct {
	ID       uuid.UUID
	Tally    models.Tally
	Results  []*models.BattleResult
	Failed   int // workers that did not finish
	Duration time.Duration
}

func (r *Report) merge(other *Report) {
	r.Tally.Merge(other.Tally)
	r.Results = append(r.Results, other.Results...)
}

// resolve is swapped in tests to inject worker failures
var resolve = battle.Autoresolve

// Runner resolves batches against a roster and treasure catalog
type Runner struct {
	Roster   *models.Roster
	Treasure *models.Treasure
	Logger   *zap.Logger
}

// NewRunner creates a runner. A nil logger discards everything.
func NewRunner(roster *models.Roster, treasure *models.Treasure, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Roster: roster, Treasure: treasure, Logger: logger}
}

// Partition splits count runs into workers equal partitions plus one remainder partition
// when count does not divide evenly. Partitions are never empty.
func Partition(count, workers int) []int {
	if count <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	per := count / workers
	var parts []int
	if per > 0 {
		for i := 0; i < workers; i++ {
			parts = append(parts, per)
		}
	}
	if rem := count % workers; rem > 0 {
		parts = append(parts, rem)
	}
	return parts
}

// Run resolves the batch. Aggregate data is only returned when every worker finished;
// otherwise the report carries the failure count alongside a resolve StageError.
func (r *Runner) Run(opts Options) (*Report, error) {
	if err := r.validate(opts); err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}
	if opts.Caps == (models.GenerationCaps{}) {
		opts.Caps = models.DefaultGenerationCaps()
	}

	logger := r.logger()
	start := time.Now()
	id := uuid.New()
	logger.Debug("batch started",
		zap.String("batch", id.String()),
		zap.Int("count", opts.Count),
		zap.Int("workers", opts.Workers),
		zap.Bool("random", opts.Randomize),
		zap.Uint64("seed", opts.Seed))

	var (
		report *Report
		err    error
	)
	if opts.Workers > 1 {
		report, err = r.runPooled(opts)
	} else {
		report, err = r.runSequential(opts)
	}
	if err != nil {
		logger.Error("batch failed", zap.String("batch", id.String()), zap.Error(err))
		return report, err
	}

	if report.Tally.Total() != opts.Count || len(report.Results) != opts.Count {
		return nil, &StageError{
			Stage: StageAggregate,
			Err: fmt.Errorf("expected %d battles, tallied %d with %d results",
				opts.Count, report.Tally.Total(), len(report.Results)),
		}
	}

	report.ID = id
	report.Duration = time.Since(start)
	logger.Info("batch finished",
		zap.String("batch", id.String()),
		zap.Int("battles", len(report.Results)),
		zap.Int("victories", victories(report.Tally)),
		zap.Duration("elapsed", report.Duration))

	return report, nil
}

func (r *Runner) validate(opts Options) error {
	if opts.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", opts.Count)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", opts.Workers)
	}
	if opts.Randomize {
		if r.Roster == nil {
			return errors.New("random battles need a roster")
		}
		return nil
	}
	if opts.Template == nil {
		return errors.New("no battle to resolve")
	}
	if opts.Template.Attacker == nil {
		return errors.New("battle has no attacker")
	}
	if opts.Template.Defender == nil && !opts.Template.Scenario.IsMonster() {
		return errors.New("battle has no defender")
	}
	return nil
}

func (r *Runner) runSequential(opts Options) (*Report, error) {
	src := seeded(opts.Seed, 0)
	part, err := r.safeRun(0, opts.Count, opts, r.Roster, r.Treasure, src)
	if err != nil {
		return &Report{Failed: 1}, &StageError{Stage: StageResolve, Err: err}
	}
	return part, nil
}

func (r *Runner) runPooled(opts Options) (*Report, error) {
	parts := Partition(opts.Count, opts.Workers)
	partials := make([]*Report, len(parts))

	var (
		mu     sync.Mutex
		failed int
		g      errgroup.Group
	)
	g.SetLimit(opts.Workers)

	for i, n := range parts {
		g.Go(func() error {
			// Catalog indexes are per worker
			roster, treasure := r.cloneCatalogs()
			part, err := r.safeRun(i, n, opts, roster, treasure, seeded(opts.Seed, i))
			if err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			partials[i] = part
			return nil
		})
	}
	_ = g.Wait()

	if failed > 0 {
		return &Report{Failed: failed}, &StageError{
			Stage: StageResolve,
			Err:   fmt.Errorf("%d of %d workers failed", failed, len(parts)),
		}
	}

	report := &Report{Results: make([]*models.BattleResult, 0, opts.Count)}
	for _, p := range partials {
		report.merge(p)
	}
	return report, nil
}

// safeRun resolves one partition, turning a panic into an error
func (r *Runner) safeRun(idx, n int, opts Options, roster *models.Roster, treasure *models.Treasure, src dice.Source) (part *Report, err error) {
	logger := r.logger().With(zap.Int("partition", idx))
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("worker panicked", zap.Any("panic", rec))
			part, err = nil, fmt.Errorf("partition %d: %v", idx, rec)
		}
	}()

	logger.Debug("partition started", zap.Int("battles", n))
	part = &Report{Results: make([]*models.BattleResult, 0, n)}
	for i := 0; i < n; i++ {
		var b *models.Battle
		if opts.Randomize {
			b = battle.GenerateRandomBattle(roster, treasure, opts.Caps, opts.Kind, src)
		} else {
			b = opts.Template.Clone()
		}

		res := resolve(b, treasure, src)
		part.Tally.Add(res.Outcome())
		part.Results = append(part.Results, res)
	}
	logger.Debug("partition finished", zap.Int("battles", n))
	return part, nil
}

func (r *Runner) cloneCatalogs() (*models.Roster, *models.Treasure) {
	var (
		roster   *models.Roster
		treasure *models.Treasure
	)
	if r.Roster != nil {
		roster = r.Roster.Clone()
	}
	if r.Treasure != nil {
		treasure = r.Treasure.Clone()
	}
	return roster, treasure
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// seeded returns the source for a partition: seed+idx, or a random seed when seed is 0
func seeded(seed uint64, idx int) dice.Source {
	if seed == 0 {
		return dice.NewRandom()
	}
	return dice.New(seed + uint64(idx))
}

func victories(t models.Tally) int {
	n := 0
	for _, o := range models.AllOutcomes() {
		if o.IsVictory() {
			n += t.Count(o)
		}
	}
	return n
}
