package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	echoapi "github.com/Jenilvaghasiya/deploy-DG-sub007/api/echo"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/cache"
	redicache "github.com/Jenilvaghasiya/deploy-DG-sub007/cache/redis"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/config"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/internal/metrics"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/log"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/mongodb"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/services"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/tracing"
)

var (
	appLogger      log.Logger
	tracerProvider *sdktrace.TracerProvider
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(os.Stdout).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logLevel, parseErr := zerolog.ParseLevel(cfg.LogLevel)
	if parseErr != nil {
		logLevel = zerolog.InfoLevel
	}
	appLogger = log.NewZerologAdapter(logLevel, cfg.LogPretty)

	ctx := context.Background()
	appLogger.Info(ctx, "Starting design-genie backend...", map[string]interface{}{
		"http_port":     cfg.HTTPPort,
		"mongo_db_name": cfg.MongoDBName,
		"log_level":     cfg.LogLevel,
	})

	tp, err := tracing.InitTracerProvider(cfg.OtelServiceName)
	if err != nil {
		appLogger.Fatal(ctx, "Failed to initialize TracerProvider", err)
	}
	tracerProvider = tp

	metrics.InitCustomMetrics(prometheus.DefaultRegisterer)

	if initErr := mongodb.InitMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName); initErr != nil {
		appLogger.Fatal(ctx, "Failed to initialize MongoDB", initErr)
	}
	db := mongodb.GetDB()

	sessionRepo, err := mongodb.NewSessionRepositoryMongo(ctx, db)
	if err != nil {
		appLogger.Fatal(ctx, "Failed to initialize session repository", err)
	}
	userRepo, err := mongodb.NewUserRepositoryMongo(ctx, db)
	if err != nil {
		appLogger.Fatal(ctx, "Failed to initialize user repository", err)
	}

	hasher := services.NewBcryptPasswordHasher(cfg.BcryptCost)
	sessionService := services.NewSessionService(sessionRepo)
	authService := services.NewAuthService(userRepo, sessionService, hasher)

	cacheTTL := time.Duration(cfg.SessionCacheTTLMin) * time.Minute
	var sessionStore cache.SessionStore
	if cfg.RedisAddr != "" {
		client := redislib.NewClient(&redislib.Options{Addr: cfg.RedisAddr})
		sessionStore = redicache.NewSessionStore(client, "dg")
		appLogger.Info(ctx, "Using Redis session cache", map[string]interface{}{"addr": cfg.RedisAddr})
	} else {
		sessionStore = cache.NewMemorySessionStore(cacheTTL)
		appLogger.Info(ctx, "Using in-memory session cache")
	}
	sessionReader := cache.NewReadThroughSessionReader(sessionRepo, sessionStore, cacheTTL)

	api := echoapi.NewAuthAPI(authService, sessionService, sessionReader, mongodb.Ping)
	e := echo.New()
	e.HideBanner = true
	api.RegisterRoutes(e)

	go func() {
		if serveErr := e.Start(":" + cfg.HTTPPort); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			appLogger.Fatal(ctx, "HTTP server failed", serveErr)
		}
	}()
	appLogger.Info(ctx, "HTTP server listening", map[string]interface{}{"port": cfg.HTTPPort})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(shutdownCtx, "HTTP server shutdown error", err)
	}
	if err := sessionStore.Close(); err != nil {
		appLogger.Error(shutdownCtx, "Session cache shutdown error", err)
	}
	mongodb.CloseMongoDB(shutdownCtx)
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(shutdownCtx, "TracerProvider shutdown error", err)
	}
	appLogger.Info(shutdownCtx, "Shutdown complete.")
}
