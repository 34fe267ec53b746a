package jobs

import (
	"context"
	"errors"
	"time"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/logger"
	"rentfit-reservations/internal/utils"
)

// SweepExpiredRentals is the scheduled entry point: it releases APPROVED
// reservations whose period has elapsed.
func (jr *JobRunner) SweepExpiredRentals() {
	jr.runWithRecovery("SweepExpiredRentals", func() {
		ctx := context.Background()
		processed, failed, err := jr.RunSweep(ctx)
		if err != nil {
			logger.Error("Expiry sweep failed", "error", err)
			return
		}
		jr.alerts.SweepReport(ctx, processed, failed)
	})
}

// RunSweep performs one bounded sweep pass and reports how many
// reservations were transitioned. Also invoked by the manual trigger
// endpoint. Safe to re-run: a reservation that already left APPROVED is
// skipped, not an error.
func (jr *JobRunner) RunSweep(ctx context.Context) (processed int, failed []int64, err error) {
	batchSize := jr.config.Scheduler.SweepBatchSize
	today := utils.Today(time.Now())

	ids, err := jr.resRepo.ListExpiredApproved(ctx, today, batchSize)
	if err != nil {
		return 0, nil, err
	}

	for _, id := range ids {
		if _, terr := jr.reservations.MarkReturned(ctx, id); terr != nil {
			if errors.Is(terr, domain.ErrInvalidTransition) || errors.Is(terr, domain.ErrNotFound) {
				// Lost a race with a cancel or a concurrent sweep; the
				// reservation is already terminal.
				logger.Debug("Sweep skipped reservation already transitioned", "reservation_id", id)
				continue
			}
			logger.Error("Sweep failed to mark reservation returned", "reservation_id", id, "error", terr)
			failed = append(failed, id)
			continue
		}
		processed++
	}

	logger.Info("Expiry sweep finished",
		"candidates", len(ids),
		"processed", processed,
		"failed", len(failed),
		"batch_size", batchSize,
	)
	return processed, failed, nil
}
