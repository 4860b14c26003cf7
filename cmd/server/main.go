package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"youth_balance/internal/app/di"
	"youth_balance/internal/platform/config"
	"youth_balance/internal/platform/db"
	"youth_balance/internal/platform/logger"
	infraredis "youth_balance/internal/platform/redis"
)

const (
	purgeInterval   = time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(cfg.Server.Mode)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	conn, err := db.Open(ctx, db.Config{
		Driver:         cfg.Database.Driver,
		DSN:            cfg.Database.DSN,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	}, log)
	if err != nil {
		return err
	}
	if sqlDB, err := conn.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}
	if err := db.Migrate(conn, di.Models()...); err != nil {
		return err
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, log); errors.Is(err, infraredis.ErrDisabled) {
		log.Info("redis not configured, storing sessions in the database")
	} else if err != nil {
		log.WithError(err).Warn("redis unavailable, storing sessions in the database")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.WithError(err).Error("failed to close redis client")
			}
		}()
	}

	app, err := di.NewApp(cfg, conn, rdb, log)
	if err != nil {
		return err
	}

	if cfg.Bootstrap.DemoUser {
		created, err := app.Accounts.BootstrapDemoUser(ctx)
		if err != nil {
			return err
		}
		if created {
			log.Warn("created demo account \"test\"; disable bootstrap.demo_user outside development")
		}
	}

	go purgeSessions(ctx, app, log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func purgeSessions(ctx context.Context, app *di.App, log *logrus.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.Sessions.PurgeExpired(ctx)
			if err != nil {
				log.WithError(err).Warn("failed to purge expired sessions")
				continue
			}
			if n > 0 {
				log.WithField("count", n).Info("purged expired sessions")
			}
		}
	}
}
