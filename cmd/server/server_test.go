package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/napolitain/autoresolve/internal/loader"
	"github.com/napolitain/autoresolve/internal/models"
)

// testServer creates a server over the built-in catalogs without starting a listener
func testServer(t *testing.T) http.Handler {
	t.Helper()
	return (&server{
		roster:   models.DefaultRoster(),
		treasure: models.DefaultTreasure(),
		caps:     models.DefaultGenerationCaps(),
		maxCount: 1000,
		logger:   zap.NewNop(),
	}).routes()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode[map[string]any](t, rec)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestRoster(t *testing.T) {
	h := testServer(t)

	rec := do(t, h, http.MethodGet, "/api/roster/Rebel", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	units := decode[[]UnitJSON](t, rec)
	if len(units) != 5 {
		t.Errorf("%d Rebel units, want 5", len(units))
	}

	if rec := do(t, h, http.MethodGet, "/api/roster/Elves", nil); rec.Code != http.StatusNotFound {
		t.Errorf("unknown faction status = %d, want 404", rec.Code)
	}
}

func TestBattlesFromScenario(t *testing.T) {
	bf, err := loader.LoadBattle("../../data/scenarios/normal.json")
	if err != nil {
		t.Fatal(err)
	}

	rec := do(t, testServer(t), http.MethodPost, "/api/battles", BattleRequest{
		Count:          50,
		Workers:        2,
		Seed:           11,
		Scenario:       bf,
		IncludeBattles: true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	resp := decode[BattleResponse](t, rec)
	total := 0
	for _, n := range resp.Tally {
		total += n
	}
	if resp.Count != 50 || total != 50 || len(resp.Battles) != 50 {
		t.Errorf("count %d, tally %d, battles %d, want 50 each", resp.Count, total, len(resp.Battles))
	}
	if len(resp.Tally) != models.OutcomeCount {
		t.Errorf("tally has %d outcomes", len(resp.Tally))
	}
	for _, b := range resp.Battles {
		if b.Type != "normal" {
			t.Fatalf("battle type %q, want normal", b.Type)
		}
	}
}

func TestBattlesRandomOfType(t *testing.T) {
	rec := do(t, testServer(t), http.MethodPost, "/api/battles", BattleRequest{
		Count:          20,
		Random:         true,
		Battle:         "monster",
		IncludeBattles: true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	for _, b := range decode[BattleResponse](t, rec).Battles {
		if b.Type != "monster" || b.DefenderLost != 0 {
			t.Fatalf("battle = %+v", b)
		}
	}
}

func TestBattlesDefaultsToOne(t *testing.T) {
	rec := do(t, testServer(t), http.MethodPost, "/api/battles", BattleRequest{})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[BattleResponse](t, rec)
	if resp.Count != 1 || resp.Battles != nil {
		t.Errorf("resp = %+v, want one battle without summaries", resp)
	}
}

func TestBattlesBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"malformed json", `{"count":`},
		{"count over limit", BattleRequest{Count: 5000}},
		{"negative count", BattleRequest{Count: -3}},
		{"negative workers", BattleRequest{Workers: -1}},
		{"unknown battle type", BattleRequest{Battle: "duel"}},
		{"unknown unit", BattleRequest{Scenario: &loader.BattleFile{
			Attacker: loader.SideJSON{Faction: "Rebel", Units: []int{404}},
			Defender: &loader.SideJSON{Faction: "Rebel"},
		}}},
		{"scenario and random", BattleRequest{Random: true, Scenario: &loader.BattleFile{
			Attacker: loader.SideJSON{Faction: "Rebel"},
			Defender: &loader.SideJSON{Faction: "Rebel"},
		}}},
	}

	h := testServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/battles", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/battles", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestNewServerLoadsCatalogFiles(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.RosterFile = "../../data/units.csv"
	cfg.TreasureFile = "../../data/equipment.csv"

	s, err := newServer(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}
	if s.roster.Len() != 17 || s.treasure.Len() != 12 {
		t.Errorf("loaded %d units, %d items", s.roster.Len(), s.treasure.Len())
	}

	cfg.RosterFile = "../../data/missing.csv"
	if _, err := newServer(cfg, zap.NewNop()); err == nil {
		t.Error("missing roster file should fail")
	}
}
