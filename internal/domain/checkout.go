package domain

import "time"

type BatchStatus string

const (
	BatchStatusCreated   BatchStatus = "CREATED"
	BatchStatusConfirmed BatchStatus = "CONFIRMED"
	BatchStatusPartial   BatchStatus = "PARTIAL"
	BatchStatusFailed    BatchStatus = "FAILED"
)

// CheckoutBatch groups a customer's PENDING reservations into one payable
// transaction. The batch id doubles as the payment reference handed to the
// payment collaborator.
type CheckoutBatch struct {
	ID            string      `json:"id"`
	CustomerID    int64       `json:"customer_id"`
	SubtotalCents int64       `json:"subtotal_cents"`
	FeeCents      int64       `json:"fee_cents"`
	TotalCents    int64       `json:"total_cents"`
	Status        BatchStatus `json:"status"`
	CreatedOn     time.Time   `json:"created_on"`
}

type Quote struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	FeeCents      int64 `json:"fee_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// PaymentHandle is returned from checkout; the client redirects the
// customer to PaymentURL and the collaborator calls back with the batch id.
type PaymentHandle struct {
	BatchID    string `json:"batch_id"`
	PaymentURL string `json:"payment_url"`
}
