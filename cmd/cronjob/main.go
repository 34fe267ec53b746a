package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"rentfit-reservations/internal/config"
	"rentfit-reservations/internal/jobs"
	"rentfit-reservations/internal/logger"
	"rentfit-reservations/internal/repository/postgres"
	"rentfit-reservations/internal/scheduler"
	"rentfit-reservations/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'sweep-expired-rentals')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentfit Cronjob Runner...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	var alertSvc service.AlertService
	if cfg.Alerts.SendGridAPIKey != "" {
		alertSvc = service.NewSendGridAlertService(cfg.Alerts.SendGridAPIKey, cfg.Alerts.FromEmail, cfg.Alerts.ToEmail)
	} else {
		alertSvc = service.NewNoopAlertService()
	}

	// The cron runner has no read traffic, so it skips the redis cache;
	// lifecycle writes invalidate nothing and reads hit postgres directly.
	reservationSvc := service.NewReservationService(store.ReservationRepository, nil)

	jobRunner := jobs.NewJobRunner(store.ReservationRepository, reservationSvc, alertSvc, cfg)

	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.",
		"sweep_schedule", cfg.Scheduler.SweepExpiredRentals,
		"sweep_batch_size", cfg.Scheduler.SweepBatchSize,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "sweep-expired-rentals":
		jobRunner.SweepExpiredRentals()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - sweep-expired-rentals\n")
		os.Exit(1)
	}
}
