package http

import (
	"database/sql"

	"github.com/gorilla/mux"

	"rentfit-reservations/internal/jobs"
	"rentfit-reservations/internal/service"
)

// NewRouter wires all handlers under /api/v1.
func NewRouter(
	reservations service.ReservationService,
	availability service.AvailabilityService,
	checkout service.CheckoutService,
	jobRunner *jobs.JobRunner,
	db *sql.DB,
) *mux.Router {
	reservationHandler := NewReservationHandler(reservations)
	availabilityHandler := NewAvailabilityHandler(availability)
	checkoutHandler := NewCheckoutHandler(checkout)
	adminHandler := NewAdminHandler(jobRunner, db)

	router := mux.NewRouter()
	router.Use(recoveryMiddleware, loggingMiddleware)

	router.HandleFunc("/healthz", adminHandler.Health).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/reservations", reservationHandler.Create).Methods("POST")
	api.HandleFunc("/reservations", reservationHandler.List).Methods("GET")
	api.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Get).Methods("GET")
	api.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Update).Methods("PATCH")
	api.HandleFunc("/items/{itemId:[0-9]+}/unavailable-dates", availabilityHandler.UnavailableDates).Methods("GET")
	api.HandleFunc("/checkout/quote", checkoutHandler.Quote).Methods("POST")
	api.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	api.HandleFunc("/payments/confirm", checkoutHandler.ConfirmPayment).Methods("POST")
	api.HandleFunc("/internal/sweep", adminHandler.TriggerSweep).Methods("POST")

	return router
}
