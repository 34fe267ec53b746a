package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/service"
)

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              101,
		ItemID:          7,
		CustomerID:      42,
		StoreID:         3,
		PeriodStart:     time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC),
		DailyRateCents:  10000,
		TotalPriceCents: 30000,
		Status:          domain.ReservationStatusPending,
		CreatedOn:       time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestReservationHandler_Create(t *testing.T) {
	const body = `{"itemId":7,"customerId":42,"storeId":3,"periodStart":"2030-01-10","periodEnd":"2030-01-12","dailyRateCents":10000}`

	t.Run("Created", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		svc.On("Create", mock.Anything, service.CreateReservationInput{
			ItemID:         7,
			CustomerID:     42,
			StoreID:        3,
			PeriodStart:    time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
			PeriodEnd:      time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC),
			DailyRateCents: 10000,
		}).Return(sampleReservation(), nil)

		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest("POST", "/api/v1/reservations", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp reservationResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(101), resp.ID)
		assert.Equal(t, "2030-01-10", resp.PeriodStart)
		assert.Equal(t, "PENDING", resp.Status)
		svc.AssertExpectations(t)
	})

	t.Run("Missing fields fail validation", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest("POST", "/api/v1/reservations", strings.NewReader(`{"itemId":7}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Error)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unparseable date", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		bad := strings.Replace(body, "2030-01-10", "01/10/2030", 1)
		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest("POST", "/api/v1/reservations", strings.NewReader(bad)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Overlap conflict maps to 409", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)

		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest("POST", "/api/v1/reservations", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "CONFLICT", decodeError(t, rec).Error)
	})

	t.Run("Invalid range maps to 400", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrDateRangeInvalid)

		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest("POST", "/api/v1/reservations", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DATE_RANGE_INVALID", decodeError(t, rec).Error)
	})
}

func TestReservationHandler_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		svc.On("Get", mock.Anything, int64(101)).Return(sampleReservation(), nil)

		req := mux.SetURLVars(httptest.NewRequest("GET", "/api/v1/reservations/101", nil), map[string]string{"id": "101"})
		rec := httptest.NewRecorder()
		handler.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown id maps to 404", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		svc.On("Get", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

		req := mux.SetURLVars(httptest.NewRequest("GET", "/api/v1/reservations/404", nil), map[string]string{"id": "404"})
		rec := httptest.NewRecorder()
		handler.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error)
	})
}

func TestReservationHandler_Update(t *testing.T) {
	t.Run("Cancel inside the window", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		canceled := sampleReservation()
		canceled.Status = domain.ReservationStatusCanceled
		svc.On("Cancel", mock.Anything, int64(101), mock.Anything).Return(canceled, nil)

		req := mux.SetURLVars(
			httptest.NewRequest("PATCH", "/api/v1/reservations/101", strings.NewReader(`{"status":"CANCELED"}`)),
			map[string]string{"id": "101"},
		)
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp reservationResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "CANCELED", resp.Status)
	})

	t.Run("Closed window maps to 403 with the reason", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		svc.On("Cancel", mock.Anything, int64(101), mock.Anything).Return(nil, &domain.CancellationClosedError{
			Reason:   "cancellation closes 24 hours after the rental period starts",
			Deadline: time.Date(2030, 1, 11, 0, 0, 0, 0, time.UTC),
		})

		req := mux.SetURLVars(
			httptest.NewRequest("PATCH", "/api/v1/reservations/101", strings.NewReader(`{"status":"CANCELED"}`)),
			map[string]string{"id": "101"},
		)
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "CANCELLATION_WINDOW_CLOSED", resp.Error)
		assert.Contains(t, resp.Message, "24 hours")
	})

	t.Run("Return an approved reservation", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		returned := sampleReservation()
		returned.Status = domain.ReservationStatusReturned
		svc.On("MarkReturned", mock.Anything, int64(101)).Return(returned, nil)

		req := mux.SetURLVars(
			httptest.NewRequest("PATCH", "/api/v1/reservations/101", strings.NewReader(`{"status":"RETURNED"}`)),
			map[string]string{"id": "101"},
		)
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Target status outside the customer surface", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		req := mux.SetURLVars(
			httptest.NewRequest("PATCH", "/api/v1/reservations/101", strings.NewReader(`{"status":"APPROVED"}`)),
			map[string]string{"id": "101"},
		)
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
	})
}

func TestReservationHandler_List(t *testing.T) {
	t.Run("Customer filter", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		svc.On("List", mock.Anything, mock.Anything).Return([]domain.Reservation{*sampleReservation()}, nil)

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest("GET", "/api/v1/reservations?customerId=42", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []reservationResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("Missing filter", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest("GET", "/api/v1/reservations", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("Unknown status", func(t *testing.T) {
		svc := new(reservationServiceMock)
		handler := NewReservationHandler(svc)

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest("GET", "/api/v1/reservations?customerId=42&status=SHIPPED", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
