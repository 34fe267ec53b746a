package postgres

import (
	"database/sql"

	"rentfit-reservations/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ReservationRepository
	repository.IntervalRepository
	repository.CheckoutRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ReservationRepository: NewReservationRepository(db),
		IntervalRepository:    NewIntervalRepository(db),
		CheckoutRepository:    NewCheckoutRepository(db),
	}
}
