package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/config"
	"github.com/pedrocontreras2007/floricoop/internal/repository"
	"github.com/pedrocontreras2007/floricoop/internal/repository/mongodb"
	"github.com/pedrocontreras2007/floricoop/internal/repository/remote"
	"github.com/pedrocontreras2007/floricoop/internal/repository/sqlitekv"
	"github.com/pedrocontreras2007/floricoop/internal/scheduler"
	"github.com/pedrocontreras2007/floricoop/internal/server/handlers"
	"github.com/pedrocontreras2007/floricoop/internal/server/router"
	"github.com/pedrocontreras2007/floricoop/internal/service/store"
	"github.com/pedrocontreras2007/floricoop/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var persist repository.Adapter
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		sqliteAdapter, err := sqlitekv.New(cfg.Storage.SQLitePath, baseLogger.Named("repo.sqlite"))
		if err != nil {
			baseLogger.Fatal("failed to init sqlite storage", zap.Error(err))
		}
		defer func() {
			if err := sqliteAdapter.Close(); err != nil {
				baseLogger.Error("failed to close sqlite storage", zap.Error(err))
			}
		}()
		persist = sqliteAdapter
	case config.DriverMongo:
		mongoAdapter, err := mongodb.New(context.Background(), cfg.Storage.MongoURI, cfg.Storage.MongoDBName, baseLogger.Named("repo.mongodb"))
		if err != nil {
			baseLogger.Fatal("failed to init mongodb storage", zap.Error(err))
		}
		defer func() {
			if err := mongoAdapter.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		persist = mongoAdapter
	default:
		persist = repository.NewMemoryAdapter()
	}

	var remoteClient *remote.Client
	if cfg.Remote.BaseURL != "" {
		remoteClient = remote.NewClient(cfg.Remote.BaseURL)
		baseLogger.Info("backend-backed mode enabled", zap.String("base_url", cfg.Remote.BaseURL))
	}

	dataStore := store.New(context.Background(), persist, remoteClient, baseLogger.Named("store"))
	defer dataStore.Close()

	engine := router.New(router.Handlers{
		Harvests:  handlers.NewHarvestHandler(dataStore, baseLogger.Named("handlers.harvests")),
		Inventory: handlers.NewInventoryHandler(dataStore, baseLogger.Named("handlers.inventory")),
		Losses:    handlers.NewLossHandler(dataStore, baseLogger.Named("handlers.losses")),
		Reminders: handlers.NewReminderHandler(dataStore, baseLogger.Named("handlers.reminders")),
		Reports:   handlers.NewReportHandler(dataStore, baseLogger.Named("handlers.reports")),
		Auth:      handlers.NewAuthHandler(baseLogger.Named("handlers.auth")),
	}, baseLogger.Named("router"))

	sched := scheduler.New(cfg.Reminders.CronSchedule, cfg.Reminders.Timezone, dataStore, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
