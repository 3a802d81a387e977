package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/GreenNest-storefront/server/internal/api"
	"github.com/GreenNest-storefront/server/internal/core"
	"github.com/GreenNest-storefront/server/internal/shop/catalog"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/GreenNest-storefront/server/internal/shop/repo"
	"github.com/GreenNest-storefront/server/internal/shop/session"
	"github.com/GreenNest-storefront/server/internal/shop/tools"
	logx "github.com/GreenNest-storefront/server/pkg/logger"
	pkgredis "github.com/GreenNest-storefront/server/pkg/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig defines all configurable parameters for the storefront server,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment core.Environment `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	HTTP  model.HTTPConfig
	Redis pkgredis.Config

	// Storefront
	Checkout model.CheckoutConfig
	Session  model.SessionConfig
	Events   model.EventsConfig
}

func loadConfig() (AppConfig, error) {
	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Environment})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var publisher model.CartEventPublisher = repo.NopEventPublisher{}
	if cfg.Redis.Enabled() {
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise Redis client")
		}
		defer rdb.Close()
		publisher = repo.NewRedisEventPublisher(rdb, cfg.Events.ChannelPrefix)
		logx.Info().Str("prefix", cfg.Events.ChannelPrefix).Msg("publishing cart events to Redis")
	} else {
		logx.Warn().Msg("REDIS_URL not set, cart events stay in process")
	}

	sessions := session.NewManager(publisher, session.Config{
		Checkout: cfg.Checkout,
		Session:  cfg.Session,
		Events:   cfg.Events,
	})
	defer sessions.Close()
	go sessions.Run(ctx)

	cat := catalog.Default()
	registry, err := tools.NewRegistry(ctx, tools.GetStorefrontTools(cat, sessions)...)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to register assistant tools")
	}

	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(api.NewHandler(cat, sessions, registry), cfg.HTTP.AllowOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logx.Info().Str("addr", srv.Addr).Str("environment", cfg.Environment.String()).Msg("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	logx.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("graceful shutdown failed")
	}
}
