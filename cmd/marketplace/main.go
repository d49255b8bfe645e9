package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/nearfix/internal/pkg/config"
	"github.com/piresc/nearfix/internal/pkg/database"
	"github.com/piresc/nearfix/internal/pkg/events"
	"github.com/piresc/nearfix/internal/pkg/health"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/middleware"
	nrpkg "github.com/piresc/nearfix/internal/pkg/newrelic"
	"github.com/piresc/nearfix/internal/pkg/retry"
	"github.com/piresc/nearfix/internal/pkg/server"
	adminhttp "github.com/piresc/nearfix/services/admin/handler/http"
	adminrepo "github.com/piresc/nearfix/services/admin/repository"
	adminuc "github.com/piresc/nearfix/services/admin/usecase"
	cataloggw "github.com/piresc/nearfix/services/catalog/gateway"
	cataloghttp "github.com/piresc/nearfix/services/catalog/handler/http"
	catalogrepo "github.com/piresc/nearfix/services/catalog/repository"
	cataloguc "github.com/piresc/nearfix/services/catalog/usecase"
	helpergw "github.com/piresc/nearfix/services/helpers/gateway"
	helperhttp "github.com/piresc/nearfix/services/helpers/handler/http"
	helperrepo "github.com/piresc/nearfix/services/helpers/repository"
	helperuc "github.com/piresc/nearfix/services/helpers/usecase"
	matchhttp "github.com/piresc/nearfix/services/match/handler/http"
	matchuc "github.com/piresc/nearfix/services/match/usecase"
	requestgw "github.com/piresc/nearfix/services/requests/gateway"
	requesthttp "github.com/piresc/nearfix/services/requests/handler/http"
	requestrepo "github.com/piresc/nearfix/services/requests/repository"
	requestuc "github.com/piresc/nearfix/services/requests/usecase"
	userhttp "github.com/piresc/nearfix/services/users/handler/http"
	userrepo "github.com/piresc/nearfix/services/users/repository"
	useruc "github.com/piresc/nearfix/services/users/usecase"
)

func main() {
	appName := "nearfix-marketplace"
	configPath := envOr("CONFIG_PATH", "config/marketplace.env")
	configs := config.InitConfig(configPath)

	// New Relic first so the logger can forward to it
	nrApp := nrpkg.InitNewRelic(configs.NewRelic)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			os.Stderr.WriteString("Warning: New Relic connection timeout: " + err.Error() + "\n")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		os.Stderr.WriteString("Failed to create Zap logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("db_driver", configs.Database.Driver),
		logger.String("broker", configs.Broker.Type))

	shutdown := server.NewShutdownManager(zapLogger)

	sqlClient, err := database.NewSQLClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", logger.Err(err))
	}
	shutdown.Register("database", func(context.Context) error { return sqlClient.Close() })

	if err := database.Migrate(context.Background(), sqlClient.GetDB()); err != nil {
		zapLogger.Fatal("Failed to migrate database", logger.Err(err))
	}

	// Redis backs the caches and the rate limiter; without it both are skipped
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Warn("Redis unavailable, running without cache and rate limits", logger.Err(err))
			redisClient = nil
		} else {
			shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
		}
	}

	sender, natsClient, err := events.NewSender(configs.Broker, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to event broker", logger.Err(err), logger.String("broker", configs.Broker.Type))
	}
	bus := events.NewBus(sender, retry.New(retry.DefaultConfig(), zapLogger))
	shutdown.Register("event bus", func(context.Context) error { return bus.Close() })

	db := sqlClient.GetDB()

	// Repositories
	catalogRepo := catalogrepo.NewCatalogRepository(configs, db, redisClient)
	userRepo := userrepo.NewUserRepository(configs, db)
	helperRepo := helperrepo.NewHelperRepository(configs, db)
	requestRepo := requestrepo.NewRequestRepository(configs, db, redisClient)
	adminRepo := adminrepo.NewAdminRepository(db)

	// Use cases
	catalogUC := cataloguc.NewCatalogUC(catalogRepo, cataloggw.NewCatalogGW(bus))
	userUC := useruc.NewUserUC(userRepo)
	helperUC := helperuc.NewHelperUC(helperRepo, catalogRepo, helpergw.NewHelperGW(bus))
	matchUC := matchuc.NewMatchUC(configs, helperRepo)
	requestUC := requestuc.NewRequestUC(configs, requestRepo, catalogRepo, userRepo, matchUC, requestgw.NewRequestGW(bus))
	adminUC := adminuc.NewAdminUC(adminRepo, requestRepo)

	e := echo.New()
	e.HideBanner = true
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	healthService := health.NewService(zapLogger)
	healthService.AddChecker("database", health.NewSQLChecker(sqlClient))
	if redisClient != nil {
		healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	}
	if natsClient != nil {
		healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	}
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	var limiterClient *redis.Client
	if redisClient != nil {
		limiterClient = redisClient.Client
	}
	submitLimit := middleware.ActorRateLimiter(configs.Limits.SubmitPerMinute, time.Minute, limiterClient)

	api := e.Group("/api/v1")
	auth := middleware.JWTAuthMiddleware(configs.JWT)
	cataloghttp.NewCatalogHandler(catalogUC).RegisterRoutes(api, auth)
	userhttp.NewUserHandler(userUC).RegisterRoutes(api, auth)
	helperhttp.NewHelperHandler(helperUC).RegisterRoutes(api, auth)
	matchhttp.NewMatchHandler(matchUC).RegisterRoutes(api, auth)
	requesthttp.NewRequestHandler(requestUC, submitLimit).RegisterRoutes(api, auth)
	adminhttp.NewAdminHandler(adminUC).RegisterRoutes(api, auth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := server.NewGracefulServer(e, zapLogger, configs.Server).Run(ctx)
	if runErr != nil {
		zapLogger.Error("HTTP server stopped", logger.Err(runErr))
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(closeCtx); err != nil {
		zapLogger.Error("Shutdown finished with errors", logger.Err(err))
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}
	if runErr != nil {
		zapLogger.Close()
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
