// Command api serves the CompeteConnect HTTP API.
//
// @title                       CompeteConnect API
// @version                     1.0
// @description                 Competition discovery for students: demo sessions, filters and generated competition listings.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/competeconnect/competition-api/internal/api"
	"github.com/competeconnect/competition-api/internal/api/handler"
	"github.com/competeconnect/competition-api/internal/api/middleware"
	"github.com/competeconnect/competition-api/internal/core/domain"
	"github.com/competeconnect/competition-api/internal/core/ports"
	"github.com/competeconnect/competition-api/internal/core/service"
	"github.com/competeconnect/competition-api/internal/infrastructure/db/mongo"
	"github.com/competeconnect/competition-api/internal/infrastructure/db/redis"
	"github.com/competeconnect/competition-api/internal/infrastructure/gemini"
	"github.com/competeconnect/competition-api/internal/infrastructure/queue"
	"github.com/competeconnect/competition-api/internal/infrastructure/scheduler"
	"github.com/competeconnect/competition-api/internal/pkg/config"
	"github.com/competeconnect/competition-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Get().Error().Err(err).Msg("api exited")
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "competeconnect-api",
	})

	// --- Storage ---
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "competeconnect-api",
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	searchLog := mongo.NewSearchLogRepository(db)
	if err := searchLog.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("search log indexes not created")
	}

	// --- Generation ---
	var gen ports.CompetitionGenerator
	g, err := gemini.New(ctx, gemini.Config{APIKey: cfg.Generation.APIKey, Model: cfg.Generation.Model})
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		log.Warn().Msg("API_KEY is not set, searches will fail until it is configured")
	case err != nil:
		return err
	default:
		gen = g
	}

	finder := service.NewFinder(gen, service.FinderOptions{
		Timeout: cfg.Generation.Timeout,
		RPS:     cfg.Generation.RPS,
		Burst:   cfg.Generation.Burst,
	}, logger.Component("finder"))

	// --- Workspaces ---
	workspaces := service.NewWorkspaceService(
		redis.NewSessionStorage(rdb, cfg.Redis.SessionTTL),
		finder,
		searchLog,
		service.WorkspaceOptions{IdleTTL: cfg.Workspace.TTL},
		logger.Component("workspace"),
	)

	dispatcher := queue.NewDispatcher(cfg.Workspace.SearchWorkers, workspaces, logger.Component("dispatcher"))
	dispatcher.Start(ctx)

	sweeper := scheduler.NewSweeper(cfg.Workspace.SweepSpec, workspaces, logger.Component("sweeper"))
	if err := sweeper.Start(ctx); err != nil {
		return err
	}
	defer sweeper.Stop()

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Service:    workspaces,
		Dispatcher: dispatcher,
		Tokens:     middleware.NewWorkspaceTokens(cfg.JWTSecret, cfg.Workspace.TokenTTL),
		Ready: map[string]handler.Pinger{
			"redis": handler.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}),
			"mongodb": handler.PingFunc(func(ctx context.Context) error {
				return mongoClient.Ping(ctx, nil)
			}),
		},
		Log: logger.Component("http"),
	})

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	grp.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return e.Shutdown(sctx)
	})

	return grp.Wait()
}
