package http

import (
	"encoding/json"
	"net/http"

	"rentfit-reservations/internal/service"
)

// CheckoutHandler routes the checkout aggregation flow, including the
// payment collaborator's confirmation callback.
type CheckoutHandler struct {
	checkout service.CheckoutService
}

func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type checkoutRequest struct {
	CustomerID     int64   `json:"customerId" validate:"required,gt=0"`
	ReservationIDs []int64 `json:"reservationIds" validate:"required,min=1,dive,gt=0"`
}

type confirmPaymentRequest struct {
	BatchID string `json:"batchId" validate:"required,uuid4"`
}

type quoteResponse struct {
	SubtotalCents int64 `json:"subtotalCents"`
	FeeCents      int64 `json:"feeCents"`
	TotalCents    int64 `json:"totalCents"`
}

type checkoutResponse struct {
	BatchID    string `json:"batchId"`
	PaymentURL string `json:"paymentUrl"`
}

type confirmPaymentResponse struct {
	Approved []int64 `json:"approved"`
	Failed   []int64 `json:"failed"`
}

func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCheckoutRequest(w, r)
	if !ok {
		return
	}
	quote, err := h.checkout.Quote(r.Context(), req.CustomerID, req.ReservationIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{
		SubtotalCents: quote.SubtotalCents,
		FeeCents:      quote.FeeCents,
		TotalCents:    quote.TotalCents,
	})
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCheckoutRequest(w, r)
	if !ok {
		return
	}
	handle, err := h.checkout.Checkout(r.Context(), req.CustomerID, req.ReservationIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{
		BatchID:    handle.BatchID,
		PaymentURL: handle.PaymentURL,
	})
}

func (h *CheckoutHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req confirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	approved, failed, err := h.checkout.ConfirmPayment(r.Context(), req.BatchID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if approved == nil {
		approved = []int64{}
	}
	if failed == nil {
		failed = []int64{}
	}
	writeJSON(w, http.StatusOK, confirmPaymentResponse{Approved: approved, Failed: failed})
}

func decodeCheckoutRequest(w http.ResponseWriter, r *http.Request) (*checkoutRequest, bool) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed request body")
		return nil, false
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return &req, true
}
