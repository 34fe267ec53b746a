package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/repository"
)

// MockReservationRepository is a mock implementation of repository.ReservationRepository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Transition(ctx context.Context, id int64, from []domain.ReservationStatus, to domain.ReservationStatus) (*domain.Reservation, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) SetDepositPaid(ctx context.Context, id int64, paid bool) error {
	args := m.Called(ctx, id, paid)
	return args.Error(0)
}

func (m *MockReservationRepository) List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListExpiredApproved(ctx context.Context, asOf time.Time, limit int) ([]int64, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockIntervalRepository is a mock implementation of repository.IntervalRepository
type MockIntervalRepository struct {
	mock.Mock
}

func (m *MockIntervalRepository) ListOccupied(ctx context.Context, itemID int64) ([]domain.Interval, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interval), args.Error(1)
}

// MockCheckoutRepository is a mock implementation of repository.CheckoutRepository
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) CreateBatch(ctx context.Context, batch *domain.CheckoutBatch, reservationIDs []int64) error {
	args := m.Called(ctx, batch, reservationIDs)
	return args.Error(0)
}

func (m *MockCheckoutRepository) GetBatch(ctx context.Context, id string) (*domain.CheckoutBatch, []int64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var ids []int64
	if args.Get(1) != nil {
		ids = args.Get(1).([]int64)
	}
	return args.Get(0).(*domain.CheckoutBatch), ids, args.Error(2)
}

func (m *MockCheckoutRepository) UpdateBatchStatus(ctx context.Context, id string, status domain.BatchStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockPaymentClient is a mock implementation of PaymentClient
type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) CreateCharge(ctx context.Context, batchID string, amountCents int64, reservationIDs []int64) (string, error) {
	args := m.Called(ctx, batchID, amountCents, reservationIDs)
	return args.String(0), args.Error(1)
}

// MockAlertService is a mock implementation of AlertService
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) SweepReport(ctx context.Context, processed int, failed []int64) {
	m.Called(ctx, processed, failed)
}

func (m *MockAlertService) PaymentFailure(ctx context.Context, batchID string, cause error) {
	m.Called(ctx, batchID, cause)
}

// MockReservationService is a mock implementation of ReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Approve(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Cancel(ctx context.Context, id int64, now time.Time) (*domain.Reservation, error) {
	args := m.Called(ctx, id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) MarkReturned(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
