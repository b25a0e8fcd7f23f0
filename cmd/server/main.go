package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/napolitain/autoresolve/internal/dice"
	"github.com/napolitain/autoresolve/internal/loader"
	"github.com/napolitain/autoresolve/internal/logging"
	"github.com/napolitain/autoresolve/internal/models"
	"github.com/napolitain/autoresolve/internal/solver/batch"
	"github.com/napolitain/autoresolve/internal/solver/battle"
)

var (
	port       = pflag.IntP("port", "p", 8080, "The server port")
	configFile = pflag.String("config", "", "Path to YAML config file")
	maxCount   = pflag.Int("max-count", 100000, "Largest batch a request may ask for")
	verbose    = pflag.BoolP("verbose", "v", false, "Debug logging")
)

// server resolves battle batches over HTTP
type server struct {
	roster   *models.Roster
	treasure *models.Treasure
	caps     models.GenerationCaps
	maxCount int
	logger   *zap.Logger
}

// BattleRequest is the body of POST /api/battles
type BattleRequest struct {
	Count          int                `json:"count"`
	Workers        int                `json:"workers"`
	Random         bool               `json:"random"`
	Battle         string             `json:"battle"` // battle type key, random battles or generated template
	Seed           uint64             `json:"seed"`
	Scenario       *loader.BattleFile `json:"scenario,omitempty"`
	IncludeBattles bool               `json:"include_battles"`
}

// BattleSummary is one resolved battle in a response
type BattleSummary struct {
	ID                string  `json:"id"`
	Type              string  `json:"type"`
	Outcome           string  `json:"outcome"`
	Score             float32 `json:"score"`
	AttackerLost      int     `json:"attacker_lost"`
	DefenderLost      int     `json:"defender_lost"`
	AttackerUnitsLost int     `json:"attacker_units_lost"`
	DefenderUnitsLost int     `json:"defender_units_lost"`
	AttackerGeneral   string  `json:"attacker_general"`
	DefenderGeneral   string  `json:"defender_general"`
	AttackerReward    string  `json:"attacker_reward,omitempty"`
	DefenderReward    string  `json:"defender_reward,omitempty"`
	SpoilsCoins       int     `json:"spoils_coins,omitempty"`
}

// BattleResponse is the aggregate returned by POST /api/battles
type BattleResponse struct {
	ID      string          `json:"id"`
	Count   int             `json:"count"`
	Tally   map[string]int  `json:"tally"`
	Elapsed string          `json:"elapsed"`
	Battles []BattleSummary `json:"battles,omitempty"`
}

// UnitJSON is a roster entry in GET /api/roster/{faction}
type UnitJSON struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Bonus int    `json:"bonus"`
	Size  int    `json:"size"`
}

func (s *server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/api/roster/{faction}", s.handleRoster).Methods(http.MethodGet)
	r.HandleFunc("/api/battles", s.handleBattles).Methods(http.MethodPost)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	return r
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":   "ok",
		"units":    s.roster.Len(),
		"treasure": s.treasure.Len(),
	})
}

func (s *server) handleRoster(w http.ResponseWriter, r *http.Request) {
	faction, err := models.ParseFaction(mux.Vars(r)["faction"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	units := s.roster.UnitsForFaction(faction)
	out := make([]UnitJSON, 0, len(units))
	for _, u := range units {
		out = append(out, UnitJSON{ID: u.ID, Name: u.Name, Type: u.Type.String(), Bonus: u.Bonus, Size: u.Size})
	}
	writeJSON(w, out)
}

func (s *server) handleBattles(w http.ResponseWriter, r *http.Request) {
	var req BattleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	opts, err := s.options(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	runner := batch.NewRunner(s.roster, s.treasure, s.logger)
	report, err := runner.Run(opts)
	if err != nil {
		code := http.StatusInternalServerError
		var stageErr *batch.StageError
		if errors.As(err, &stageErr) && stageErr.Stage == batch.StageLoad {
			code = http.StatusBadRequest
		}
		writeError(w, code, err.Error())
		return
	}

	resp := BattleResponse{
		ID:      report.ID.String(),
		Count:   len(report.Results),
		Tally:   make(map[string]int, models.OutcomeCount),
		Elapsed: report.Duration.String(),
	}
	for _, o := range models.AllOutcomes() {
		resp.Tally[o.String()] = report.Tally.Count(o)
	}
	if req.IncludeBattles {
		resp.Battles = make([]BattleSummary, 0, len(report.Results))
		for _, res := range report.Results {
			resp.Battles = append(resp.Battles, summarize(res))
		}
	}
	writeJSON(w, resp)
}

// options turns a request into batch options, mirroring the command-line rules
func (s *server) options(req BattleRequest) (batch.Options, error) {
	opts := batch.Options{
		Count:   req.Count,
		Workers: req.Workers,
		Seed:    req.Seed,
		Caps:    s.caps,
	}
	if opts.Count == 0 {
		opts.Count = 1
	}
	if opts.Count < 0 || opts.Count > s.maxCount {
		return opts, fmt.Errorf("count must be within 1..%d, got %d", s.maxCount, req.Count)
	}
	if opts.Workers < 0 {
		return opts, fmt.Errorf("workers must be >= 0, got %d", req.Workers)
	}
	opts.Workers = min(opts.Workers, runtime.NumCPU())

	if req.Battle != "" {
		kind, err := models.ParseScenarioKind(req.Battle)
		if err != nil {
			return opts, err
		}
		opts.Kind = &kind
	}

	switch {
	case req.Scenario != nil:
		if req.Random {
			return opts, errors.New("scenario and random are exclusive")
		}
		b, err := req.Scenario.Produce(s.roster, s.treasure)
		if err != nil {
			return opts, fmt.Errorf("invalid scenario: %w", err)
		}
		opts.Template = b
	case req.Random:
		opts.Randomize = true
	default:
		kind := models.Normal
		if opts.Kind != nil {
			kind = *opts.Kind
		}
		src := dice.NewRandom()
		if req.Seed != 0 {
			src = dice.New(req.Seed)
		}
		opts.Template = battle.GenerateRandomBattle(s.roster, s.treasure, s.caps, &kind, src)
	}
	return opts, nil
}

func summarize(r *models.BattleResult) BattleSummary {
	att, def := r.AttackerReport(), r.DefenderReport()
	sum := BattleSummary{
		ID:                r.ID().String(),
		Type:              r.Scenario().Kind.Key(),
		Outcome:           r.Outcome().String(),
		Score:             r.Score().Score,
		AttackerLost:      att.SoldiersLost,
		DefenderLost:      def.SoldiersLost,
		AttackerUnitsLost: att.UnitsLost,
		DefenderUnitsLost: def.UnitsLost,
		AttackerGeneral:   att.General.String(),
		DefenderGeneral:   def.General.String(),
	}
	if e := r.AttackerReward(); e != nil {
		sum.AttackerReward = e.Name
	}
	if e := r.DefenderReward(); e != nil {
		sum.DefenderReward = e.Name
	}
	if sp := r.Spoils(); sp != nil {
		sum.SpoilsCoins = sp.Coins
	}
	return sum
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":   http.StatusText(code),
		"message": msg,
		"status":  code,
	})
}

func newServer(cfg *models.Config, logger *zap.Logger) (*server, error) {
	roster := models.DefaultRoster()
	if cfg.RosterFile != "" {
		r, err := loader.LoadRoster(cfg.RosterFile)
		if err != nil {
			return nil, err
		}
		roster = r
	}

	treasure := models.DefaultTreasure()
	if cfg.TreasureFile != "" {
		t, err := loader.LoadTreasure(cfg.TreasureFile)
		if err != nil {
			return nil, err
		}
		treasure = t
	}

	return &server{
		roster:   roster,
		treasure: treasure,
		caps:     cfg.Caps,
		maxCount: *maxCount,
		logger:   logger,
	}, nil
}

func main() {
	pflag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := models.DefaultConfig()
	if *configFile != "" {
		if cfg, err = models.LoadConfig(*configFile); err != nil {
			logger.Fatal("failed to load config", zap.Error(err))
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	s, err := newServer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to load catalogs", zap.Error(err))
	}
	logger.Info("catalogs loaded", zap.Int("units", s.roster.Len()), zap.Int("items", s.treasure.Len()))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("http server listening", zap.Int("port", *port))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
