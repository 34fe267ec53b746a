package jobs

import (
	"rentfit-reservations/internal/config"
	"rentfit-reservations/internal/logger"
	"rentfit-reservations/internal/repository"
	"rentfit-reservations/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	resRepo      repository.ReservationRepository
	reservations service.ReservationService
	alerts       service.AlertService
	config       *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	resRepo repository.ReservationRepository,
	reservations service.ReservationService,
	alerts service.AlertService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		resRepo:      resRepo,
		reservations: reservations,
		alerts:       alerts,
		config:       cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
