package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lukeberry99/duck/internal/config"
	"github.com/lukeberry99/duck/internal/game"
	"github.com/lukeberry99/duck/internal/httpmw"
	"github.com/lukeberry99/duck/internal/save"
	"github.com/lukeberry99/duck/internal/server"
	"github.com/lukeberry99/duck/internal/telemetry"
)

func main() {
	logger := log.Default()

	cfg, err := config.Load("duckos_config.yml")
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if os.Getenv("DIFFICULTY") != "" {
		cfg.Balance = config.FromEnv()
	}

	memRepo := telemetry.NewMemoryRepository()
	var recorder telemetry.Repository = memRepo
	if cfg.Telemetry.SQLitePath != "" {
		sqliteRepo, err := telemetry.OpenSQLite(cfg.Telemetry.SQLitePath)
		if err != nil {
			logger.Fatalf("open telemetry db: %v", err)
		}
		defer sqliteRepo.Close()
		recorder = telemetry.Tee{Primary: sqliteRepo, Others: []telemetry.Recorder{memRepo}}
	}

	store, err := save.NewFileStore(filepath.Join(cfg.Data.Dir, "saves"), cfg.Balance)
	if err != nil {
		logger.Fatalf("open save store: %v", err)
	}

	clock := game.RealClock{}
	ledger := loadLedger(store, cfg, clock, recorder, logger)

	hub := server.NewHub(logger)
	go hub.Run()
	go hub.Forward(memRepo.Subscribe())

	app := server.NewApp(ledger, cfg)
	app.Store = store
	app.Telemetry = recorder
	app.Hub = hub
	app.Clock = clock
	app.Logger = logger

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, app)

	handler := httpmw.Chain(
		mux,
		httpmw.WithAccessLog(logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go app.RunLoop(ctx)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Printf("duckos listening on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("serve: %v", err)
	}
}

// loadLedger is the two-phase restore: decode and validate the snapshot
// (pure), then apply the offline grant exactly once. A missing or corrupt
// save pair starts a fresh session.
func loadLedger(store *save.FileStore, cfg *config.Config, clock game.Clock, rec telemetry.Recorder, logger *log.Logger) *game.Ledger {
	snap, err := store.Load()
	if err != nil {
		if !errors.Is(err, save.ErrNoSave) {
			logger.Printf("load save: %v", err)
		}
		logger.Printf("starting fresh session")
		return game.NewLedger(cfg.Balance, clock, rec)
	}

	ledger := game.RestoreLedger(snap.State, cfg.Balance, clock, rec)
	grant := ledger.ApplyOfflineProgress()
	if grant.BugsGained > 0 {
		logger.Printf("offline catch-up: %d bugs, %d cq over %s",
			grant.BugsGained, grant.CodeQualityGained, grant.Elapsed.Round(time.Second))
	}
	return ledger
}
