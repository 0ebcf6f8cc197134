package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hubdispatch/backend/config"
	"hubdispatch/backend/internal/api/handler"
	"hubdispatch/backend/internal/api/router"
	"hubdispatch/backend/internal/archivejob"
	"hubdispatch/backend/internal/fids"
	"hubdispatch/backend/internal/opswindow"
	"hubdispatch/backend/internal/patchoverlay"
	"hubdispatch/backend/internal/repository"
	"hubdispatch/backend/internal/scheduler"
	"hubdispatch/backend/internal/service"
	"hubdispatch/backend/internal/syncengine"
	"hubdispatch/backend/internal/token"
	"hubdispatch/backend/pkg/database"
	applogger "hubdispatch/backend/pkg/logger"
	"hubdispatch/backend/pkg/redis"
)

// syncCronExpr runs the FIDS sync every minute (spec §4.3, §9).
const syncCronExpr = "* * * * *"

// archiveCronExprs anchors the nightly archive job at 03:30 local time.
// The scheduler resolves this cron expression against the configured
// timezone, so it lands at the same wall-clock moment on both sides of a
// DST transition without needing a second expression (spec §4.7, §9).
var archiveCronExprs = []string{"30 3 * * *"}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	loc, err := opswindow.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("loading timezone", zap.Error(err))
	}

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("getting underlying sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("running migrations", zap.Error(err))
	}

	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("connecting to redis, rate limiting will be disabled", zap.Error(err))
		rdb = nil
	}

	tokenMgr := token.NewManager(cfg.Auth.HMACSecret, cfg.Auth.TokenTTL)

	repo := repository.NewRepository(db)
	overlay := patchoverlay.New()
	engine := syncengine.NewEngine(repo, loc)
	fidsClient := fids.NewClient(cfg.FIDS.BaseURL, cfg.FIDS.APIKey, cfg.FIDS.AirportCode, 20*time.Second)
	fetcher := fids.NewFetcher(fidsClient)
	archiveJob := archivejob.New(repo, loc, logger)

	svc := service.New(cfg, repo, tokenMgr, overlay, engine, fetcher, archiveJob, loc, logger)
	h := handler.New(svc)

	engineRouter := router.Setup(cfg, h, tokenMgr, rdb, logger)

	sched, err := scheduler.New(loc, logger)
	if err != nil {
		logger.Fatal("initializing scheduler", zap.Error(err))
	}
	if err := sched.RegisterSync(syncCronExpr, func(ctx context.Context) error {
		_, err := svc.Admin.Sync(ctx)
		return err
	}); err != nil {
		logger.Fatal("registering sync job", zap.Error(err))
	}
	if err := sched.RegisterArchive(archiveCronExprs, func(ctx context.Context) error {
		_, err := archiveJob.Run(ctx)
		return err
	}); err != nil {
		logger.Fatal("registering archive job", zap.Error(err))
	}
	sched.Start()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engineRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}

	if err := sched.Stop(); err != nil {
		logger.Error("scheduler shutdown error", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("shutdown complete")
}
