package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/repository"
	"rentfit-reservations/internal/service"
	"rentfit-reservations/internal/utils"
)

var validate = validator.New()

// ReservationHandler routes reservation lifecycle requests
type ReservationHandler struct {
	reservations service.ReservationService
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type createReservationRequest struct {
	ItemID         int64  `json:"itemId" validate:"required,gt=0"`
	CustomerID     int64  `json:"customerId" validate:"required,gt=0"`
	StoreID        int64  `json:"storeId" validate:"required,gt=0"`
	PeriodStart    string `json:"periodStart" validate:"required"`
	PeriodEnd      string `json:"periodEnd" validate:"required"`
	DailyRateCents int64  `json:"dailyRateCents" validate:"required,gt=0"`
}

type updateReservationRequest struct {
	Status string `json:"status" validate:"required,oneof=CANCELED RETURNED"`
}

type reservationResponse struct {
	ID              int64  `json:"id"`
	ItemID          int64  `json:"itemId"`
	CustomerID      int64  `json:"customerId"`
	StoreID         int64  `json:"storeId"`
	PeriodStart     string `json:"periodStart"`
	PeriodEnd       string `json:"periodEnd"`
	DailyRateCents  int64  `json:"dailyRateCents"`
	TotalPriceCents int64  `json:"totalPriceCents"`
	Status          string `json:"status"`
	DepositPaid     bool   `json:"depositPaid"`
	CreatedOn       string `json:"createdOn"`
}

func toReservationResponse(rt *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:              rt.ID,
		ItemID:          rt.ItemID,
		CustomerID:      rt.CustomerID,
		StoreID:         rt.StoreID,
		PeriodStart:     utils.FormatDate(rt.PeriodStart),
		PeriodEnd:       utils.FormatDate(rt.PeriodEnd),
		DailyRateCents:  rt.DailyRateCents,
		TotalPriceCents: rt.TotalPriceCents,
		Status:          string(rt.Status),
		DepositPaid:     rt.DepositPaid,
		CreatedOn:       rt.CreatedOn.UTC().Format(time.RFC3339),
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	start, err := utils.ParseDate(req.PeriodStart)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	end, err := utils.ParseDate(req.PeriodEnd)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rt, err := h.reservations.Create(r.Context(), service.CreateReservationInput{
		ItemID:         req.ItemID,
		CustomerID:     req.CustomerID,
		StoreID:        req.StoreID,
		PeriodStart:    start,
		PeriodEnd:      end,
		DailyRateCents: req.DailyRateCents,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReservationResponse(rt))
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rt, err := h.reservations.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(rt))
}

// Update drives the customer-facing transitions: cancel, or an explicit
// manual return.
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	var rt *domain.Reservation
	var err error
	switch domain.ReservationStatus(req.Status) {
	case domain.ReservationStatusCanceled:
		rt, err = h.reservations.Cancel(r.Context(), id, time.Now().UTC())
	case domain.ReservationStatusReturned:
		rt, err = h.reservations.MarkReturned(r.Context(), id)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(rt))
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.ReservationFilter{}

	if v := r.URL.Query().Get("customerId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeBadRequest(w, "customerId must be an integer")
			return
		}
		filter.CustomerID = &id
	}
	if v := r.URL.Query().Get("storeId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeBadRequest(w, "storeId must be an integer")
			return
		}
		filter.StoreID = &id
	}
	if filter.CustomerID == nil && filter.StoreID == nil {
		writeBadRequest(w, "one of customerId or storeId is required")
		return
	}

	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.ReservationStatus(v)
		if !status.Valid() {
			writeBadRequest(w, "unknown status "+v)
			return
		}
		filter.Status = status
	}

	reservations, err := h.reservations.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]reservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, toReservationResponse(&reservations[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeBadRequest(w, "reservation id must be an integer")
		return 0, false
	}
	return id, true
}
