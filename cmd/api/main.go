package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openlance/marketplace-api/internal/api"
	"github.com/openlance/marketplace-api/internal/core/service"
	"github.com/openlance/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/openlance/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/openlance/marketplace-api/internal/infrastructure/db/redis"
	"github.com/openlance/marketplace-api/internal/infrastructure/queue"
	"github.com/openlance/marketplace-api/pkg/logger"
)

// @title        Marketplace API
// @version      1.0
// @description  Marketplace backend connecting clients posting jobs and freelancers submitting proposals.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Activity pipeline ---
	activityRepo := mongodb.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, api.RouterOptions{
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		CookieSecure: cfg.Production(),
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates all collection indexes up front, most importantly
// the unique username index backing the one-user-per-username invariant.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexers := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		mongodb.NewUserRepository(db),
		mongodb.NewJobRepository(db),
		mongodb.NewProposalRepository(db),
		mongodb.NewActivityRepository(db),
	}
	for _, idx := range indexers {
		if err := idx.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
