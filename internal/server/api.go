package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/config"
	"github.com/lukeberry99/duck/internal/game"
	"github.com/lukeberry99/duck/internal/save"
	"github.com/lukeberry99/duck/internal/telemetry"
)

// App holds the in-memory state for the server. This makes it obvious what
// the handlers depend on.
type App struct {
	mu     sync.RWMutex
	ledger *game.Ledger

	Config    *config.Config
	Store     *save.FileStore
	Telemetry telemetry.Repository
	Hub       *Hub
	Clock     game.Clock
	Logger    *log.Logger

	BootNow time.Time
}

func NewApp(ledger *game.Ledger, cfg *config.Config) *App {
	return &App{
		ledger:  ledger,
		Config:  cfg,
		Clock:   game.RealClock{},
		Logger:  log.Default(),
		BootNow: time.Now(),
	}
}

// Ledger returns the live ledger. Import swaps it, so handlers and the game
// loop always go through this accessor.
func (a *App) Ledger() *game.Ledger {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ledger
}

func (a *App) replaceLedger(l *game.Ledger) {
	a.mu.Lock()
	a.ledger = l
	a.mu.Unlock()
}

// Checkpoint persists the current state if a store is configured.
func (a *App) Checkpoint() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Save(a.Ledger().State(), a.Clock.Now())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeGameErr maps ledger rejections onto HTTP statuses: unknown IDs are
// 404, every rule rejection is 409.
func writeGameErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrLocked),
		errors.Is(err, game.ErrMaxed),
		errors.Is(err, game.ErrPrereqUnmet),
		errors.Is(err, game.ErrInsufficientCQ),
		errors.Is(err, game.ErrInsufficientAP),
		errors.Is(err, game.ErrNoStamina),
		errors.Is(err, game.ErrCooldown),
		errors.Is(err, game.ErrRefactorUnavailable),
		errors.Is(err, game.ErrChallengeActive),
		errors.Is(err, game.ErrChallengeDone):
		status = http.StatusConflict
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"ok":      true,
			"service": "duckos",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		// The ledger is in-memory; if we can read it we are ready.
		_ = app.Ledger().BugsFixed()
		writeJSON(w, map[string]any{
			"ok":      true,
			"service": "duckos",
			"uptime":  time.Since(app.BootNow).String(),
		})
	})

	// Query surface

	Handle(mux, rr, "GET /api/state", "Full progression snapshot", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Ledger().State())
	})

	Handle(mux, rr, "GET /api/upgrades", "Upgrade catalog with unlock/afford flags", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Ledger().UpgradeViews())
	})

	Handle(mux, rr, "GET /api/ducks", "Owned ducks and the duck shop", "", func(w http.ResponseWriter, r *http.Request) {
		l := app.Ledger()
		writeJSON(w, map[string]any{
			"owned": l.Ducks(),
			"shop":  l.DuckTypeViews(),
		})
	})

	Handle(mux, rr, "GET /api/batch", "Batch operations with computed efficiency", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Ledger().BatchOperationViews())
	})

	Handle(mux, rr, "GET /api/challenges", "Challenge board", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Ledger().ChallengeViews())
	})

	Handle(mux, rr, "GET /api/prestige", "Prestige ledger and upgrade shop", "", func(w http.ResponseWriter, r *http.Request) {
		l := app.Ledger()
		writeJSON(w, map[string]any{
			"ledger":       l.Prestige(),
			"can_refactor": l.CanRefactor(),
			"preview":      l.RefactorPreview(),
			"upgrades":     l.PrestigeUpgradeViews(),
		})
	})

	Handle(mux, rr, "GET /api/peaks", "Achievement peaks", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Ledger().AchievementPeaks())
	})

	// Command surface

	Handle(mux, rr, "POST /api/debug", "Manual debug action", "", func(w http.ResponseWriter, r *http.Request) {
		res, err := app.Ledger().DebugCode()
		if err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, res)
	})

	Handle(mux, rr, "POST /api/upgrades/purchase", "Buy an upgrade", `{"id":"ide-integration"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := app.Ledger().PurchaseUpgrade(body.ID); err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, map[string]any{"ok": true, "code_quality": app.Ledger().CodeQuality()})
	})

	Handle(mux, rr, "POST /api/ducks/purchase", "Buy a duck", `{"type":"rubber"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Type string `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Type == "" {
			http.Error(w, "type is required", http.StatusBadRequest)
			return
		}
		d, err := app.Ledger().PurchaseDuck(catalog.DuckType(body.Type))
		if err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, d)
	})

	Handle(mux, rr, "POST /api/ducks/levelup", "Level up a duck", `{"id":"<duck-id>"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		d, err := app.Ledger().LevelUpDuck(body.ID)
		if err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, d)
	})

	Handle(mux, rr, "POST /api/ducks/remove", "Release a duck", `{"id":"<duck-id>"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := app.Ledger().RemoveDuck(body.ID); err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, map[string]any{"ok": true})
	})

	Handle(mux, rr, "POST /api/batch/run", "Run a batch operation", `{"id":"web-batch-basic"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		res, err := app.Ledger().RunBatchOperation(body.ID)
		if err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, res)
	})

	Handle(mux, rr, "POST /api/challenges/start", "Start a challenge", `{"id":"web-speed-demon"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		c, err := app.Ledger().StartChallenge(body.ID)
		if err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, c)
	})

	Handle(mux, rr, "POST /api/challenges/abandon", "Abandon the running challenge", "", func(w http.ResponseWriter, r *http.Request) {
		if err := app.Ledger().AbandonChallenge(); err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, map[string]any{"ok": true})
	})

	Handle(mux, rr, "POST /api/focus", "Switch specialization", `{"code_type":"backend"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CodeType string `json:"code_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.CodeType == "" {
			http.Error(w, "code_type is required", http.StatusBadRequest)
			return
		}
		if err := app.Ledger().SetFocus(catalog.CodeType(body.CodeType)); err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, map[string]any{"ok": true, "focus": body.CodeType})
	})

	Handle(mux, rr, "POST /api/prestige/refactor", "Perform a refactor", "", func(w http.ResponseWriter, r *http.Request) {
		res, err := app.Ledger().Refactor()
		if err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, res)
	})

	Handle(mux, rr, "POST /api/prestige/purchase", "Buy a prestige upgrade", `{"id":"mvc-pattern"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := app.Ledger().PurchasePrestigeUpgrade(body.ID); err != nil {
			writeGameErr(w, err)
			return
		}
		writeJSON(w, map[string]any{"ok": true})
	})

	// Debug tooling: direct resource mutation.

	Handle(mux, rr, "POST /api/dev/bugs", "Grant bugs directly", `{"amount":100}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Amount int64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Amount <= 0 {
			http.Error(w, "positive amount is required", http.StatusBadRequest)
			return
		}
		gained := app.Ledger().AddBugs(body.Amount)
		writeJSON(w, map[string]any{"bugs_fixed": app.Ledger().BugsFixed(), "code_quality_gained": gained})
	})

	Handle(mux, rr, "POST /api/dev/cq", "Grant or spend code quality", `{"amount":-50}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Amount int64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Amount == 0 {
			http.Error(w, "non-zero amount is required", http.StatusBadRequest)
			return
		}
		l := app.Ledger()
		if body.Amount < 0 {
			if err := l.SpendCQ(-body.Amount); err != nil {
				writeGameErr(w, err)
				return
			}
		} else {
			l.AddCQ(body.Amount)
		}
		writeJSON(w, map[string]any{"code_quality": l.CodeQuality()})
	})

	// Persistence boundary

	Handle(mux, rr, "POST /api/save", "Checkpoint now", "", func(w http.ResponseWriter, r *http.Request) {
		if err := app.Checkpoint(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"ok": true})
	})

	Handle(mux, rr, "GET /api/save/export", "Export save as base64", "", func(w http.ResponseWriter, r *http.Request) {
		snap := save.NewSnapshot(app.Ledger().State(), app.Clock.Now())
		encoded, err := save.Export(snap)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"data": encoded})
	})

	Handle(mux, rr, "POST /api/save/import", "Import a base64 save", `{"data":"<base64>"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Data string `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Data == "" {
			http.Error(w, "data is required", http.StatusBadRequest)
			return
		}
		snap, err := save.Import(body.Data, app.Config.Balance)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		l := game.RestoreLedger(snap.State, app.Config.Balance, app.Clock, app.Telemetry)
		l.ApplyOfflineProgress()
		app.replaceLedger(l)
		if err := app.Checkpoint(); err != nil {
			app.Logger.Printf("checkpoint after import: %v", err)
		}
		writeJSON(w, map[string]any{"ok": true, "state": l.State()})
	})

	// Telemetry

	Handle(mux, rr, "GET /api/events", "Telemetry events since a timestamp", "", func(w http.ResponseWriter, r *http.Request) {
		if app.Telemetry == nil {
			writeJSON(w, []telemetry.Event{})
			return
		}
		since := time.Time{}
		if s := r.URL.Query().Get("since"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				http.Error(w, "invalid since timestamp", http.StatusBadRequest)
				return
			}
			since = t
		}
		var types []telemetry.EventType
		if t := r.URL.Query().Get("type"); t != "" {
			types = append(types, telemetry.EventType(t))
		}
		events, err := app.Telemetry.GetEvents(since, types)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, events)
	})

	Handle(mux, rr, "GET /api/stats", "Balance stats from telemetry", "", func(w http.ResponseWriter, r *http.Request) {
		if app.Telemetry == nil {
			http.Error(w, "telemetry disabled", http.StatusNotFound)
			return
		}
		since := time.Now().AddDate(0, 0, -7)
		events, err := app.Telemetry.GetEvents(since, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		stats, err := telemetry.CalculateStats(events, since)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, stats)
	})

	Handle(mux, rr, "GET /api/config", "Active configuration", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Config)
	})

	Handle(mux, rr, "GET /api/routes", "List API routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})

	if app.Hub != nil {
		mux.HandleFunc("GET /ws", app.Hub.ServeWs)
	}
}
