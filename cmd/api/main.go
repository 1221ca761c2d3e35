// @title           Presensi Kajian API
// @version         1.0
// @description     QR based attendance for kajian sessions.
// @BasePath        /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/api"
	"github.com/kajianrh/presensi-api/internal/core/ports"
	"github.com/kajianrh/presensi-api/internal/core/service"
	"github.com/kajianrh/presensi-api/internal/infrastructure/db/mongo"
	"github.com/kajianrh/presensi-api/internal/infrastructure/db/redis"
	"github.com/kajianrh/presensi-api/internal/infrastructure/queue"
	"github.com/kajianrh/presensi-api/internal/pkg/config"
	"github.com/kajianrh/presensi-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "presensi-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()

	// Startup routine: indexes and default admins before serving.
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	admins := service.NewAdminService(mongo.NewAdminRepository(db), logger.Component("startup"))
	if err := admins.SeedDefaults(ctx, cfg.SeedAdmins); err != nil {
		return fmt.Errorf("seed admins: %w", err)
	}

	// The guard outlives the signal context so requests drained by
	// srv.Shutdown still run through it.
	guardCtx, stopGuard := context.WithCancel(context.Background())
	defer stopGuard()

	var rdb *goredis.Client
	var guard ports.AdmissionGuard
	if cfg.UsesRedis() {
		rdb, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		guard = redis.NewPairLock(rdb, cfg.Admission.LockTTL, logger.Component("admission"))
	} else {
		serializer := queue.NewSerializer(cfg.Admission.Workers, logger.Component("admission"))
		serializer.Start(guardCtx)
		guard = serializer
	}
	log.Info().Str("guard", cfg.Admission.Guard).Msg("admission guard ready")

	e := api.NewRouter(db, rdb, guard, cfg, log)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
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
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	stopGuard()

	log.Info().Msg("server exited")
	return nil
}
