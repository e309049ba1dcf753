package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bankingapp "github.com/bankcore/backend/internal/application/banking"
	identityapp "github.com/bankcore/backend/internal/application/identity"
	"github.com/bankcore/backend/internal/domain/banking"
	"github.com/bankcore/backend/internal/infrastructure/auth"
	"github.com/bankcore/backend/internal/infrastructure/config"
	"github.com/bankcore/backend/internal/infrastructure/logger"
	"github.com/bankcore/backend/internal/infrastructure/persistence"
	"github.com/bankcore/backend/internal/interfaces/http/handler"
	"github.com/bankcore/backend/internal/interfaces/http/middleware"
	"github.com/bankcore/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting BankCore backend",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	// Database
	gormLogger := logger.NewGormLogger(appLogger, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Domain services
	numberGen := banking.NewAccountNumberGenerator(
		rand.New(rand.NewSource(time.Now().UnixNano())),
		accountRepo.ExistsByNumber,
	)

	// Application services
	customerService := bankingapp.NewCustomerService(customerRepo, accountRepo)
	accountService := bankingapp.NewAccountService(accountRepo, customerRepo, numberGen)

	jwtService := auth.NewJWTService(cfg.JWT)

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis for token blacklist", zap.Error(err))
		}
		defer redisBlacklist.Close()
		blacklist = redisBlacklist
		appLogger.Info("Token blacklist backed by Redis",
			zap.String("host", cfg.Redis.Host), zap.Int("port", cfg.Redis.Port))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		appLogger.Info("Token blacklist running in-memory; revocations do not survive restarts")
	}

	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, appLogger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	accountHandler := handler.NewAccountHandler(accountService)
	systemHandler := handler.NewSystemHandler(db)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			appLogger.Fatal("Invalid trusted proxy configuration", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(appLogger))
	engine.Use(logger.GinMiddleware(appLogger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSFromHTTPConfig(cfg.HTTP))
	engine.Use(middleware.BodyLimit(middleware.DefaultBodyLimit))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = appLogger
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Liveness endpoint outside the versioned API
	engine.GET("/health", systemHandler.Health)

	// Login attempts are rate limited per client IP
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	authGroup := router.NewDomainGroup("auth", "/auth")
	authGroup.POST("/login", middleware.AuthRateLimit(loginLimiter), authHandler.Login)
	authGroup.POST("/refresh", authHandler.RefreshToken)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.GetCurrentUser)

	customerGroup := router.NewDomainGroup("customers", "/customers")
	customerGroup.POST("", customerHandler.Create)
	customerGroup.GET("", customerHandler.List)
	customerGroup.GET("/:id", customerHandler.GetByID)
	customerGroup.PUT("/:id", customerHandler.Update)
	customerGroup.DELETE("/:id", customerHandler.Delete)
	customerGroup.POST("/:id/accounts", accountHandler.Create)
	customerGroup.GET("/:id/accounts/:accountId", accountHandler.GetByID)
	customerGroup.PUT("/:id/accounts/:accountId", accountHandler.Update)
	customerGroup.DELETE("/:id/accounts/:accountId", middleware.RequireManager(), accountHandler.Delete)

	systemGroup := router.NewDomainGroup("system", "/system")
	systemGroup.GET("/ping", systemHandler.Ping)
	systemGroup.GET("/info", systemHandler.GetSystemInfo)

	r.Register(authGroup).Register(customerGroup).Register(systemGroup)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}

	appLogger.Info("Server stopped")
}
