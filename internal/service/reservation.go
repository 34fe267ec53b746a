package service

import (
	"context"
	"fmt"
	"time"

	"rentfit-reservations/internal/cache"
	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/logger"
	"rentfit-reservations/internal/repository"
	"rentfit-reservations/internal/utils"
)

type reservationService struct {
	repo       repository.ReservationRepository
	availCache *cache.AvailabilityCache
}

// NewReservationService builds the lifecycle service. availCache may be
// nil when no read cache is configured.
func NewReservationService(repo repository.ReservationRepository, availCache *cache.AvailabilityCache) ReservationService {
	return &reservationService{
		repo:       repo,
		availCache: availCache,
	}
}

func (s *reservationService) Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	if in.PeriodEnd.Before(in.PeriodStart) {
		return nil, fmt.Errorf("%w: period end %s precedes start %s",
			domain.ErrDateRangeInvalid, utils.FormatDate(in.PeriodEnd), utils.FormatDate(in.PeriodStart))
	}
	if in.PeriodStart.Before(utils.Today(time.Now())) {
		return nil, fmt.Errorf("%w: period start %s is in the past",
			domain.ErrDateRangeInvalid, utils.FormatDate(in.PeriodStart))
	}

	rt := &domain.Reservation{
		ItemID:          in.ItemID,
		CustomerID:      in.CustomerID,
		StoreID:         in.StoreID,
		PeriodStart:     in.PeriodStart,
		PeriodEnd:       in.PeriodEnd,
		DailyRateCents:  in.DailyRateCents,
		TotalPriceCents: utils.TotalPriceCents(in.DailyRateCents, in.PeriodStart, in.PeriodEnd),
		Status:          domain.ReservationStatusPending,
	}

	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, err
	}
	s.invalidate(ctx, rt.ItemID)

	logger.InfoContext(ctx, "reservation created",
		"reservation_id", rt.ID,
		"item_id", rt.ItemID,
		"customer_id", rt.CustomerID,
		"period_start", utils.FormatDate(rt.PeriodStart),
		"period_end", utils.FormatDate(rt.PeriodEnd),
		"total_price_cents", rt.TotalPriceCents,
	)
	return rt, nil
}

func (s *reservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *reservationService) Approve(ctx context.Context, id int64) (*domain.Reservation, error) {
	rt, err := s.repo.Transition(ctx, id,
		[]domain.ReservationStatus{domain.ReservationStatusPending},
		domain.ReservationStatusApproved,
	)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "reservation approved", "reservation_id", id)
	return rt, nil
}

func (s *reservationService) Cancel(ctx context.Context, id int64, now time.Time) (*domain.Reservation, error) {
	rt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt.Status.Terminal() {
		return nil, domain.ErrInvalidTransition
	}

	if ok, reason := CanCancel(rt, now); !ok {
		return nil, &domain.CancellationClosedError{
			Reason:   reason,
			Deadline: rt.PeriodStart.Add(CancellationWindow),
		}
	}

	rt, err = s.repo.Transition(ctx, id,
		[]domain.ReservationStatus{domain.ReservationStatusPending, domain.ReservationStatusApproved},
		domain.ReservationStatusCanceled,
	)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, rt.ItemID)

	logger.InfoContext(ctx, "reservation canceled", "reservation_id", id, "item_id", rt.ItemID)
	return rt, nil
}

func (s *reservationService) MarkReturned(ctx context.Context, id int64) (*domain.Reservation, error) {
	rt, err := s.repo.Transition(ctx, id,
		[]domain.ReservationStatus{domain.ReservationStatusApproved},
		domain.ReservationStatusReturned,
	)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, rt.ItemID)

	logger.InfoContext(ctx, "reservation returned", "reservation_id", id, "item_id", rt.ItemID)
	return rt, nil
}

func (s *reservationService) List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error) {
	return s.repo.List(ctx, filter)
}

func (s *reservationService) invalidate(ctx context.Context, itemID int64) {
	if s.availCache != nil {
		s.availCache.Invalidate(ctx, itemID)
	}
}
