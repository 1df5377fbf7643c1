package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	commissionapp "github.com/cartrade/backend/internal/application/commission"
	identityapp "github.com/cartrade/backend/internal/application/identity"
	inventoryapp "github.com/cartrade/backend/internal/application/inventory"
	partnerapp "github.com/cartrade/backend/internal/application/partner"
	paymentapp "github.com/cartrade/backend/internal/application/payment"
	purchasingapp "github.com/cartrade/backend/internal/application/purchasing"
	salesapp "github.com/cartrade/backend/internal/application/sales"
	"github.com/cartrade/backend/internal/infrastructure/auth"
	"github.com/cartrade/backend/internal/infrastructure/config"
	"github.com/cartrade/backend/internal/infrastructure/logger"
	"github.com/cartrade/backend/internal/infrastructure/persistence"
	"github.com/cartrade/backend/internal/infrastructure/scheduler"
	"github.com/cartrade/backend/internal/interfaces/http/handler"
	"github.com/cartrade/backend/internal/interfaces/http/middleware"
	"github.com/cartrade/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting cartrade backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	params, err := cfg.FinanceParams()
	if err != nil {
		log.Fatal("Invalid finance parameters", zap.Error(err))
	}

	// Database connection with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Transaction scopes for the multi-aggregate flows
	salesScope := persistence.NewGormSalesTransactionScope(db.DB)
	paymentScope := persistence.NewGormPaymentTransactionScope(db.DB)
	commissionScope := persistence.NewGormCommissionTransactionScope(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo)
	purchaseService := purchasingapp.NewPurchaseService(supplierRepo, purchaseRepo)
	vehicleService := inventoryapp.NewVehicleService(vehicleRepo, purchaseRepo, params)
	customerService := partnerapp.NewCustomerService(customerRepo)
	saleService := salesapp.NewSaleService(salesScope, purchaseRepo, customerRepo, userRepo, params)
	paymentService := paymentapp.NewPaymentService(paymentScope)
	commissionService := commissionapp.NewCommissionService(commissionScope, params)

	// Background sweep releases vehicle holds that have expired
	sweeper := scheduler.NewReservationSweeper(scheduler.DefaultSweeperConfig(), vehicleService, log)
	if err := sweeper.Start(context.Background()); err != nil {
		log.Fatal("Failed to start reservation sweeper", zap.Error(err))
	}

	// HTTP handlers
	systemHandler := handler.NewSystemHandler(db, version)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	customerHandler := handler.NewCustomerHandler(customerService)
	saleHandler := handler.NewSaleHandler(saleService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	commissionHandler := handler.NewCommissionHandler(commissionService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Probes stay outside the authenticated API group
	systemHandler.RegisterRoutes(engine)

	jwtMiddleware := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	})

	router.NewRouter(engine, router.WithAPIVersion("v1"), router.WithMiddleware(jwtMiddleware)).
		Register(authHandler).
		Register(userHandler).
		Register(purchaseHandler).
		Register(vehicleHandler).
		Register(customerHandler).
		Register(saleHandler).
		Register(paymentHandler).
		Register(commissionHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sweeper.Stop(ctx); err != nil {
		log.Error("Error stopping reservation sweeper", zap.Error(err))
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
