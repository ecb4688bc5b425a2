package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okonek/guidedcooking/backend/config"
	"github.com/okonek/guidedcooking/backend/internal/api"
	"github.com/okonek/guidedcooking/backend/internal/cache"
	"github.com/okonek/guidedcooking/backend/internal/database"
	"github.com/okonek/guidedcooking/backend/internal/logging"
	"github.com/okonek/guidedcooking/backend/internal/router"
	"github.com/okonek/guidedcooking/backend/internal/server"
	"github.com/okonek/guidedcooking/backend/internal/service"
	"github.com/okonek/guidedcooking/backend/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := logging.Setup(logging.Config{})
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	if cfg.SpoonacularAPIKey == "" {
		logger.Warn().Msg("SPOONACULAR_API_KEY is not set; proxy routes will report an upstream error")
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	if err := database.Seed(db, cfg.SeedFile); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed database")
	}

	var respCache cache.Cache
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		respCache = cache.NewRedis(redisClient)
	} else {
		mem := cache.NewMemory(10 * time.Minute)
		defer mem.Close()
		respCache = mem
	}

	gateway := upstream.NewClient(
		cfg.SpoonacularBaseURL,
		cfg.SpoonacularAPIKey,
		respCache,
		upstream.WithTTL(cfg.CacheTTL),
	)

	recipeService := service.NewRecipeService(db)
	resolver := service.NewResolver(recipeService, gateway)

	engine := router.Setup(
		api.NewRecipeHandler(recipeService, resolver),
		api.NewProxyHandler(gateway),
	)

	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("received signal")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
