package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/logger"
	"rentfit-reservations/internal/repository"
	"rentfit-reservations/internal/utils"
)

type checkoutService struct {
	checkoutRepo repository.CheckoutRepository
	resRepo      repository.ReservationRepository
	reservations ReservationService
	payments     PaymentClient
	alerts       AlertService
}

func NewCheckoutService(
	checkoutRepo repository.CheckoutRepository,
	resRepo repository.ReservationRepository,
	reservations ReservationService,
	payments PaymentClient,
	alerts AlertService,
) CheckoutService {
	return &checkoutService{
		checkoutRepo: checkoutRepo,
		resRepo:      resRepo,
		reservations: reservations,
		payments:     payments,
		alerts:       alerts,
	}
}

func (s *checkoutService) Quote(ctx context.Context, customerID int64, reservationIDs []int64) (*domain.Quote, error) {
	subtotal, err := s.validateSelection(ctx, customerID, reservationIDs)
	if err != nil {
		return nil, err
	}
	fee, total := utils.QuoteTotals(subtotal)
	return &domain.Quote{
		SubtotalCents: subtotal,
		FeeCents:      fee,
		TotalCents:    total,
	}, nil
}

func (s *checkoutService) Checkout(ctx context.Context, customerID int64, reservationIDs []int64) (*domain.PaymentHandle, error) {
	subtotal, err := s.validateSelection(ctx, customerID, reservationIDs)
	if err != nil {
		return nil, err
	}
	fee, total := utils.QuoteTotals(subtotal)

	batch := &domain.CheckoutBatch{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		SubtotalCents: subtotal,
		FeeCents:      fee,
		TotalCents:    total,
		Status:        domain.BatchStatusCreated,
	}
	if err := s.checkoutRepo.CreateBatch(ctx, batch, reservationIDs); err != nil {
		return nil, fmt.Errorf("create checkout batch: %w", err)
	}

	paymentURL, err := s.payments.CreateCharge(ctx, batch.ID, total, reservationIDs)
	if err != nil {
		// Nothing has changed state: the reservations stay PENDING and the
		// customer may retry the whole checkout.
		if updErr := s.checkoutRepo.UpdateBatchStatus(ctx, batch.ID, domain.BatchStatusFailed); updErr != nil {
			logger.ErrorContext(ctx, "failed to mark checkout batch failed", "batch_id", batch.ID, "error", updErr)
		}
		s.alerts.PaymentFailure(ctx, batch.ID, err)
		return nil, fmt.Errorf("payment collaborator rejected charge: %w", err)
	}

	logger.InfoContext(ctx, "checkout batch created",
		"batch_id", batch.ID,
		"customer_id", customerID,
		"reservations", len(reservationIDs),
		"total_cents", total,
	)
	return &domain.PaymentHandle{
		BatchID:    batch.ID,
		PaymentURL: paymentURL,
	}, nil
}

func (s *checkoutService) ConfirmPayment(ctx context.Context, batchID string) (approved, failed []int64, err error) {
	batch, ids, err := s.checkoutRepo.GetBatch(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	if batch.Status == domain.BatchStatusConfirmed {
		// Collaborator callbacks can repeat; a confirmed batch is done.
		return ids, nil, nil
	}
	if batch.Status == domain.BatchStatusFailed {
		return nil, nil, fmt.Errorf("%w: batch %s already failed", domain.ErrInvalidSelection, batchID)
	}

	// Approve every id, collecting the ones that can no longer transition
	// (e.g. canceled while the customer was paying). Partial outcomes are
	// reported, never swallowed.
	for _, id := range ids {
		if _, approveErr := s.reservations.Approve(ctx, id); approveErr != nil {
			logger.ErrorContext(ctx, "reservation approval failed on payment confirmation",
				"batch_id", batchID, "reservation_id", id, "error", approveErr)
			failed = append(failed, id)
			continue
		}
		if depErr := s.resRepo.SetDepositPaid(ctx, id, true); depErr != nil {
			logger.ErrorContext(ctx, "failed to record deposit", "reservation_id", id, "error", depErr)
		}
		approved = append(approved, id)
	}

	status := domain.BatchStatusConfirmed
	if len(failed) > 0 {
		status = domain.BatchStatusPartial
	}
	if err := s.checkoutRepo.UpdateBatchStatus(ctx, batchID, status); err != nil {
		logger.ErrorContext(ctx, "failed to update batch status", "batch_id", batchID, "error", err)
	}

	logger.InfoContext(ctx, "payment confirmed",
		"batch_id", batchID,
		"approved", len(approved),
		"failed", len(failed),
	)
	return approved, failed, nil
}

// validateSelection enforces that every selected id exists, belongs to the
// customer, is PENDING, and appears only once, and returns the subtotal.
func (s *checkoutService) validateSelection(ctx context.Context, customerID int64, reservationIDs []int64) (int64, error) {
	if len(reservationIDs) == 0 {
		return 0, fmt.Errorf("%w: empty selection", domain.ErrInvalidSelection)
	}

	seen := make(map[int64]bool, len(reservationIDs))
	var subtotal int64
	for _, id := range reservationIDs {
		if seen[id] {
			return 0, fmt.Errorf("%w: reservation %d selected twice", domain.ErrInvalidSelection, id)
		}
		seen[id] = true

		rt, err := s.resRepo.GetByID(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("%w: reservation %d not found", domain.ErrInvalidSelection, id)
		}
		if rt.CustomerID != customerID {
			return 0, fmt.Errorf("%w: reservation %d belongs to another customer", domain.ErrInvalidSelection, id)
		}
		if rt.Status != domain.ReservationStatusPending {
			return 0, fmt.Errorf("%w: reservation %d is %s, not PENDING", domain.ErrInvalidSelection, id, rt.Status)
		}
		subtotal += rt.TotalPriceCents
	}
	return subtotal, nil
}
