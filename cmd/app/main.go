package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/xapes/xma-slots/internal/bootstrap"
	"github.com/xapes/xma-slots/internal/config"
	"github.com/xapes/xma-slots/internal/database"
	"github.com/xapes/xma-slots/internal/handler"
	"github.com/xapes/xma-slots/internal/scheduler"
	"github.com/xapes/xma-slots/internal/server"
	"github.com/xapes/xma-slots/internal/worker"
)

// @title XMA Slots API
// @version 1.0
// @description Token slot machine backend: spin ledger, reward collection and leaderboard.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := bootstrap.SetupLogger(cfg, handler.Version)

	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	if _, err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	tokenLedger, err := bootstrap.NewLedgerClient(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	svcs, err := bootstrap.InitializeServices(cfg, repos, tokenLedger)
	if err != nil {
		dbPool.Close()
		return err
	}

	pool := worker.NewPool(cfg.WorkerPoolSize, bootstrap.WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.RecoveryInterval, worker.NewRecoveryJob(svcs.Collect, 0), true)
	log.Info(bootstrap.LogMsgRecoveryScheduled, "interval", cfg.RecoveryInterval.String())

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, tokenLedger,
		svcs.Collect, svcs.Ledger, svcs.Stats)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Workers:   pool,
		DB:        dbPool,
	})
	return err
}
