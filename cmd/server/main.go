package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/pms/backend/internal/application/billing"
	collectionapp "github.com/pms/backend/internal/application/collection"
	leasingapp "github.com/pms/backend/internal/application/leasing"
	"github.com/pms/backend/internal/application/notification"
	propertyapp "github.com/pms/backend/internal/application/property"
	"github.com/pms/backend/internal/infrastructure/config"
	"github.com/pms/backend/internal/infrastructure/event"
	"github.com/pms/backend/internal/infrastructure/logger"
	"github.com/pms/backend/internal/infrastructure/persistence"
	"github.com/pms/backend/internal/infrastructure/scheduler"
	"github.com/pms/backend/internal/interfaces/http/handler"
	"github.com/pms/backend/internal/interfaces/http/middleware"
	"github.com/pms/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting PMS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Run schema migration
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Initialize repositories
	buildingRepo := persistence.NewGormBuildingRepository(db.DB)
	unitRepo := persistence.NewGormUnitRepository(db.DB)
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	leaseRepo := persistence.NewGormLeaseRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	noticeRepo := persistence.NewGormNoticeRepository(db.DB)
	leaseScope := persistence.NewGormLeaseTransactionScope(db.DB)

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)

	// Initialize application services
	propertyService := propertyapp.NewPropertyService(buildingRepo, unitRepo, tenantRepo)
	leaseService := leasingapp.NewLeaseService(leaseRepo, unitRepo, tenantRepo, eventBus, log)
	paymentService := billingapp.NewPaymentService(paymentRepo, leaseRepo, eventBus, log)
	sweepService := collectionapp.NewOverdueSweepService(leaseRepo, leaseScope, eventBus, log)
	noticeService := collectionapp.NewNoticeService(noticeRepo, leaseRepo, unitRepo, tenantRepo, buildingRepo, eventBus, log)

	// Register event handlers for cross-context integration.
	// Payment recorded -> overdue notice reconciliation. The bus is
	// synchronous, so the notice reflects the payment before the
	// recording request returns.
	notifier := notification.NewLogNotifier(log)
	reconciliationHandler := collectionapp.NewPaymentReconciliationHandler(leaseScope, notifier, log)
	eventBus.Subscribe(reconciliationHandler)

	log.Info("Event handlers registered",
		zap.Strings("payment_reconciliation_events", reconciliationHandler.EventTypes()),
	)

	// Start event bus
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize daily jobs (if enabled)
	if cfg.Scheduler.Enabled {
		dailyJobs := scheduler.NewDailyJobs(scheduler.Config{
			Enabled:            cfg.Scheduler.Enabled,
			StatusCronSchedule: cfg.Scheduler.StatusCronSchedule,
			SweepCronSchedule:  cfg.Scheduler.SweepCronSchedule,
			JobTimeout:         cfg.Scheduler.JobTimeout,
		}, leaseService, sweepService, log)
		if err := dailyJobs.Start(); err != nil {
			log.Fatal("Failed to start daily jobs", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := dailyJobs.Stop(stopCtx); err != nil {
				log.Error("Error stopping daily jobs", zap.Error(err))
			}
		}()
	}

	// Initialize HTTP handlers
	propertyHandler := handler.NewPropertyHandler(propertyService)
	leaseHandler := handler.NewLeaseHandler(leaseService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	noticeHandler := handler.NewNoticeHandler(noticeService, sweepService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, body size limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Register API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(propertyHandler).
		Register(leaseHandler).
		Register(paymentHandler).
		Register(noticeHandler).
		Register(systemHandler)
	r.Setup()

	// Health check endpoint outside API versioning, for load balancers
	engine.GET("/health", systemHandler.Health)

	// Start HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
