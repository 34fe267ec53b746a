package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	_ "github.com/lib/pq"

	api "rentfit-reservations/internal/api/http"
	"rentfit-reservations/internal/cache"
	"rentfit-reservations/internal/config"
	"rentfit-reservations/internal/jobs"
	"rentfit-reservations/internal/logger"
	"rentfit-reservations/internal/repository/postgres"
	"rentfit-reservations/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentfit Reservations Engine...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if err := postgres.RunMigrations(db, cfg.Migrations.Path); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations applied")

	store := postgres.NewStore(db)

	// Availability read cache is optional; the engine serves reads from
	// postgres directly when redis is not configured.
	var availCache *cache.AvailabilityCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to ping redis: %v", err)
		}
		availCache = cache.NewAvailabilityCache(client, time.Duration(cfg.Redis.CacheTTLSeconds)*time.Second)
		logger.Info("Availability cache enabled", "addr", cfg.Redis.Addr, "ttl_seconds", cfg.Redis.CacheTTLSeconds)
	}

	var alertSvc service.AlertService
	if cfg.Alerts.SendGridAPIKey != "" {
		alertSvc = service.NewSendGridAlertService(cfg.Alerts.SendGridAPIKey, cfg.Alerts.FromEmail, cfg.Alerts.ToEmail)
	} else {
		alertSvc = service.NewNoopAlertService()
	}

	paymentClient := service.NewHTTPPaymentClient(cfg.Payment.BaseURL, time.Duration(cfg.Payment.TimeoutSeconds)*time.Second)

	reservationSvc := service.NewReservationService(store.ReservationRepository, availCache)
	availabilitySvc := service.NewAvailabilityService(store.IntervalRepository, availCache)
	checkoutSvc := service.NewCheckoutService(store.CheckoutRepository, store.ReservationRepository, reservationSvc, paymentClient, alertSvc)

	jobRunner := jobs.NewJobRunner(store.ReservationRepository, reservationSvc, alertSvc, cfg)

	router := api.NewRouter(reservationSvc, availabilitySvc, checkoutSvc, jobRunner, db)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
