package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/repository"
	"rentfit-reservations/internal/service"
)

type reservationServiceMock struct {
	mock.Mock
}

func (m *reservationServiceMock) Create(ctx context.Context, in service.CreateReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *reservationServiceMock) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *reservationServiceMock) Approve(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *reservationServiceMock) Cancel(ctx context.Context, id int64, now time.Time) (*domain.Reservation, error) {
	args := m.Called(ctx, id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *reservationServiceMock) MarkReturned(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *reservationServiceMock) List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type availabilityServiceMock struct {
	mock.Mock
}

func (m *availabilityServiceMock) UnavailableRanges(ctx context.Context, itemID int64, from, to *time.Time) ([]domain.Interval, error) {
	args := m.Called(ctx, itemID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interval), args.Error(1)
}

func (m *availabilityServiceMock) IsAvailable(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, itemID, start, end)
	return args.Bool(0), args.Error(1)
}

type checkoutServiceMock struct {
	mock.Mock
}

func (m *checkoutServiceMock) Quote(ctx context.Context, customerID int64, reservationIDs []int64) (*domain.Quote, error) {
	args := m.Called(ctx, customerID, reservationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *checkoutServiceMock) Checkout(ctx context.Context, customerID int64, reservationIDs []int64) (*domain.PaymentHandle, error) {
	args := m.Called(ctx, customerID, reservationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentHandle), args.Error(1)
}

func (m *checkoutServiceMock) ConfirmPayment(ctx context.Context, batchID string) ([]int64, []int64, error) {
	args := m.Called(ctx, batchID)
	var approved, failed []int64
	if args.Get(0) != nil {
		approved = args.Get(0).([]int64)
	}
	if args.Get(1) != nil {
		failed = args.Get(1).([]int64)
	}
	return approved, failed, args.Error(2)
}
