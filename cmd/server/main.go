package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "lifeline/internal/api/http"
	"lifeline/internal/config"
	"lifeline/internal/logger"
	"lifeline/internal/metrics"
	"lifeline/internal/repository/postgres"
	"lifeline/internal/security"
	"lifeline/internal/service"
	"lifeline/internal/session"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting LifeLine...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Redis configuration", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)

	ctx := context.Background()

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)
	if cfg.Database.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			log.Fatalf("Failed to migrate database: %v", err)
		}
		logger.Info("Database schema applied")
	}

	// Initialize Session Store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Sign-in and the dashboards fail with a 500 until redis is back; pages still render.
		logger.Warn("Redis not reachable at startup", "addr", cfg.Redis.Addr, "error", err)
	} else {
		logger.Info("Redis connection established")
	}

	sessions := session.NewRedisStore(
		redisClient,
		session.NewCircuitBreaker("Redis-Session", cfg.BreakerTimeout()),
		cfg.SessionTTL(),
	)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Session.Key, cfg.SessionTTL())

	// Initialize Metrics
	m := metrics.New()

	// Initialize Services
	identitySvc := service.NewIdentityService(store.UserRepository, store.HospitalRepository, m)
	donorSvc := service.NewDonorService(store.DonorRepository, m)
	workflowSvc := service.NewRequestWorkflow(store.BloodRequestRepository, store.HospitalRepository, m)
	matchingSvc := service.NewMatchingService(store.BloodRequestRepository, donorSvc)

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	router := api.NewRouter(api.Dependencies{
		Identity: identitySvc,
		Donors:   donorSvc,
		Workflow: workflowSvc,
		Matching: matchingSvc,
		Sessions: sessions,
		Tokens:   tokenManager,
		Cookie: api.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.SessionTTL(),
			Secure: cfg.Session.Secure,
		},
		Metrics:     m,
		MetricsPath: metricsPath,
		Database:    store,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve HTTP", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
