package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lukeberry99/duck/internal/config"
	"github.com/lukeberry99/duck/internal/game"
	"github.com/lukeberry99/duck/internal/save"
	"github.com/lukeberry99/duck/internal/telemetry"
)

var apiEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*App, *httptest.Server, *game.FakeClock) {
	t.Helper()
	cfg := config.DefaultConfig()
	clock := game.NewFakeClock(apiEpoch)
	repo := telemetry.NewMemoryRepository()
	ledger := game.NewLedger(cfg.Balance, clock, repo)

	app := NewApp(ledger, cfg)
	app.Clock = clock
	app.Telemetry = repo

	mux := http.NewServeMux()
	rr := &RouteRegistry{}
	RegisterAPIRoutes(mux, rr, app)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return app, srv, clock
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	assert.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string, out any) int {
	t.Helper()
	resp, err := srv.Client().Post(srv.URL+path, "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthAndReady(t *testing.T) {
	_, srv, _ := newTestServer(t)

	var health map[string]any
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/healthz", &health))
	assert.Equal(t, true, health["ok"])
	assert.Equal(t, "duckos", health["service"])

	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/readyz", nil))
}

func TestStateEndpoint(t *testing.T) {
	app, srv, _ := newTestServer(t)
	app.Ledger().AddBugs(42)

	var st game.State
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/api/state", &st))
	assert.Equal(t, int64(42), st.BugsFixed)
	assert.Equal(t, int64(210), st.CodeQuality)
}

func TestDebugEndpoint(t *testing.T) {
	_, srv, clock := newTestServer(t)

	var res game.DebugResult
	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/debug", "", &res))
	assert.Equal(t, int64(1), res.BugsFixed)

	// Second click inside the cooldown window is a rule rejection.
	assert.Equal(t, http.StatusConflict, postJSON(t, srv, "/api/debug", "", nil))

	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/debug", "", nil))
}

func TestPurchaseEndpoints(t *testing.T) {
	app, srv, _ := newTestServer(t)
	app.Ledger().AddBugs(1000)

	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/upgrades/purchase", `{"id":"enhanced-debugging"}`, nil))
	assert.Equal(t, http.StatusNotFound, postJSON(t, srv, "/api/upgrades/purchase", `{"id":"nope"}`, nil))
	assert.Equal(t, http.StatusConflict, postJSON(t, srv, "/api/upgrades/purchase", `{"id":"enhanced-debugging"}`, nil), "already maxed")
	assert.Equal(t, http.StatusBadRequest, postJSON(t, srv, "/api/upgrades/purchase", `{}`, nil))

	var d game.Duck
	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/ducks/purchase", `{"type":"rubber"}`, &d))
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, http.StatusConflict, postJSON(t, srv, "/api/ducks/purchase", `{"type":"cosmic"}`, nil), "locked type")

	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/ducks/remove", `{"id":"`+d.ID+`"}`, nil))
	assert.Equal(t, http.StatusNotFound, postJSON(t, srv, "/api/ducks/remove", `{"id":"`+d.ID+`"}`, nil))
}

func TestQueryEndpoints(t *testing.T) {
	app, srv, _ := newTestServer(t)
	app.Ledger().AddBugs(500)

	var upgrades []game.UpgradeView
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/api/upgrades", &upgrades))
	assert.NotEmpty(t, upgrades)

	var ducks struct {
		Owned []game.Duck         `json:"owned"`
		Shop  []game.DuckTypeView `json:"shop"`
	}
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/api/ducks", &ducks))
	assert.NotEmpty(t, ducks.Shop)

	var routes []RouteDoc
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/api/routes", &routes))
	assert.NotEmpty(t, routes)

	var peaks game.Peaks
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/api/peaks", &peaks))
	assert.Equal(t, int64(500), peaks.BugsFixed)
}

func TestDevEndpoints(t *testing.T) {
	_, srv, _ := newTestServer(t)

	var granted map[string]any
	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/dev/bugs", `{"amount":100}`, &granted))
	assert.Equal(t, float64(100), granted["bugs_fixed"])

	assert.Equal(t, http.StatusBadRequest, postJSON(t, srv, "/api/dev/bugs", `{"amount":-1}`, nil))

	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/dev/cq", `{"amount":-200}`, nil))
	assert.Equal(t, http.StatusConflict, postJSON(t, srv, "/api/dev/cq", `{"amount":-99999}`, nil))
}

func TestEventsEndpoint(t *testing.T) {
	app, srv, _ := newTestServer(t)
	app.Ledger().AddBugs(100) // emits a milestone event

	var events []telemetry.Event
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/api/events?type=milestone_reached", &events))
	assert.Len(t, events, 1)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/events?since=yesterday", nil))
}

func TestExportImportRoundTrip(t *testing.T) {
	app, srv, _ := newTestServer(t)
	app.Ledger().AddBugs(777)

	var exported struct {
		Data string `json:"data"`
	}
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/api/save/export", &exported))
	assert.NotEmpty(t, exported.Data)

	// Wipe progress, then import the export.
	fresh := game.NewLedger(app.Config.Balance, app.Clock, app.Telemetry)
	app.replaceLedger(fresh)
	assert.Equal(t, int64(0), app.Ledger().BugsFixed())

	body, _ := json.Marshal(map[string]string{"data": exported.Data})
	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/save/import", string(body), nil))
	assert.Equal(t, int64(777), app.Ledger().BugsFixed())

	assert.Equal(t, http.StatusBadRequest, postJSON(t, srv, "/api/save/import", `{"data":"!!not a save!!"}`, nil))
}

func TestRefactorEndpoint(t *testing.T) {
	app, srv, _ := newTestServer(t)

	assert.Equal(t, http.StatusConflict, postJSON(t, srv, "/api/prestige/refactor", "", nil))

	app.Ledger().AddBugs(30000)
	var res game.RefactorResult
	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/prestige/refactor", "", &res))
	assert.Greater(t, res.PointsEarned, int64(0))
	assert.Equal(t, int64(0), app.Ledger().BugsFixed())
}

func TestCheckpointWritesSave(t *testing.T) {
	app, srv, _ := newTestServer(t)
	store, err := save.NewFileStore(t.TempDir(), app.Config.Balance)
	assert.NoError(t, err)
	app.Store = store

	app.Ledger().AddBugs(50)
	assert.Equal(t, http.StatusOK, postJSON(t, srv, "/api/save", "", nil))

	snap, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, int64(50), snap.State.BugsFixed)
}
