package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentfit-reservations/internal/config"
	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/jobs"
	"rentfit-reservations/internal/repository"
)

type reservationRepoMock struct {
	mock.Mock
}

func (m *reservationRepoMock) Create(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *reservationRepoMock) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *reservationRepoMock) Transition(ctx context.Context, id int64, from []domain.ReservationStatus, to domain.ReservationStatus) (*domain.Reservation, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *reservationRepoMock) SetDepositPaid(ctx context.Context, id int64, paid bool) error {
	return m.Called(ctx, id, paid).Error(0)
}

func (m *reservationRepoMock) List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *reservationRepoMock) ListExpiredApproved(ctx context.Context, asOf time.Time, limit int) ([]int64, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type alertServiceMock struct {
	mock.Mock
}

func (m *alertServiceMock) SweepReport(ctx context.Context, processed int, failed []int64) {
	m.Called(ctx, processed, failed)
}

func (m *alertServiceMock) PaymentFailure(ctx context.Context, batchID string, cause error) {
	m.Called(ctx, batchID, cause)
}

func TestAdminHandler_TriggerSweep(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.SweepBatchSize = 500

	t.Run("Sweep reports counts and failed ids", func(t *testing.T) {
		repo := new(reservationRepoMock)
		lifecycle := new(reservationServiceMock)
		runner := jobs.NewJobRunner(repo, lifecycle, new(alertServiceMock), cfg)
		handler := NewAdminHandler(runner, nil)

		repo.On("ListExpiredApproved", mock.Anything, mock.Anything, 500).Return([]int64{1, 2}, nil)
		lifecycle.On("MarkReturned", mock.Anything, int64(1)).Return(&domain.Reservation{ID: 1}, nil)
		lifecycle.On("MarkReturned", mock.Anything, int64(2)).Return(&domain.Reservation{ID: 2}, nil)

		rec := httptest.NewRecorder()
		handler.TriggerSweep(rec, httptest.NewRequest("POST", "/api/v1/internal/sweep", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp sweepResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 2, resp.ProcessedCount)
		assert.Empty(t, resp.FailedIDs)
	})

	t.Run("Listing failure maps to 500", func(t *testing.T) {
		repo := new(reservationRepoMock)
		lifecycle := new(reservationServiceMock)
		runner := jobs.NewJobRunner(repo, lifecycle, new(alertServiceMock), cfg)
		handler := NewAdminHandler(runner, nil)

		repo.On("ListExpiredApproved", mock.Anything, mock.Anything, 500).Return(nil, assert.AnError)

		rec := httptest.NewRecorder()
		handler.TriggerSweep(rec, httptest.NewRequest("POST", "/api/v1/internal/sweep", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
