// @title                       Project Hub API
// @version                     1.0
// @description                 Role-based project management: service catalog, request approval, project delivery and messaging.
// @BasePath                    /api
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
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/saas-pm/project-hub/docs"
	"github.com/saas-pm/project-hub/internal/api"
	"github.com/saas-pm/project-hub/internal/api/handler"
	"github.com/saas-pm/project-hub/internal/core/service"
	"github.com/saas-pm/project-hub/internal/infrastructure/db/mongo"
	"github.com/saas-pm/project-hub/internal/infrastructure/db/redis"
	"github.com/saas-pm/project-hub/internal/pkg/config"
	"github.com/saas-pm/project-hub/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Level: "error"})
		l.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "project-hub",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	users := mongo.NewUserRepository(db)
	services := mongo.NewServiceRepository(db)
	requests := mongo.NewServiceRequestRepository(db)
	projects := mongo.NewProjectRepository(db)
	messages := mongo.NewMessageRepository(db)

	if err := mongo.EnsureIndexes(ctx, users, requests, projects, messages); err != nil {
		return err
	}

	// --- Cache (optional) ---
	var (
		statsCache  service.StatsCache
		redisClient *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer redisClient.Close()
		statsCache = redis.NewStatsCache(redisClient, cfg.Redis.StatsTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, stats cache disabled")
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	authSvc := service.NewAuthService(users, tokens, logger.For("auth"))
	svcs := api.Services{
		Auth:     authSvc,
		Users:    service.NewUserService(users, projects, logger.For("users")),
		Catalog:  service.NewCatalogService(services, logger.For("catalog")),
		Requests: service.NewRequestService(requests, services, projects, mongo.NewTransactor(mongoClient, cfg.Mongo.Transactions), logger.For("requests")),
		Projects: service.NewProjectService(projects, cfg.EnforceProjectMembership, logger.For("projects")),
		Messages: service.NewMessageService(messages, users, projects, logger.For("messages")),
		Stats:    service.NewStatsService(users, services, requests, projects, statsCache, logger.For("stats")),
	}

	if cfg.Bootstrap.Enabled() {
		created, err := authSvc.EnsureAdmin(ctx, cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
		if err != nil {
			return err
		}
		if created {
			log.Info().Str("email", cfg.Bootstrap.AdminEmail).Msg("bootstrap admin created")
		}
	}

	// --- HTTP ---
	health := map[string]handler.Check{
		"mongodb": func(ctx context.Context) error { return mongo.Ping(ctx, mongoClient) },
		"redis":   nil,
	}
	if redisClient != nil {
		health["redis"] = func(ctx context.Context) error { return redis.Ping(ctx, redisClient) }
	}

	e := api.NewRouter(svcs, api.Options{
		Prefix:      cfg.APIPrefix,
		CORSOrigins: cfg.CORSOrigins,
		Log:         logger.For("http"),
		Health:      health,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("prefix", cfg.APIPrefix).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
