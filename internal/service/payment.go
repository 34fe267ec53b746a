package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type httpPaymentClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPPaymentClient talks JSON to the external payment collaborator.
func NewHTTPPaymentClient(baseURL string, timeout time.Duration) PaymentClient {
	return &httpPaymentClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chargeRequest struct {
	BatchID        string  `json:"batch_id"`
	AmountCents    int64   `json:"amount_cents"`
	ReservationIDs []int64 `json:"reservation_ids"`
}

type chargeResponse struct {
	PaymentURL string `json:"payment_url"`
}

func (c *httpPaymentClient) CreateCharge(ctx context.Context, batchID string, amountCents int64, reservationIDs []int64) (string, error) {
	body, err := json.Marshal(chargeRequest{
		BatchID:        batchID,
		AmountCents:    amountCents,
		ReservationIDs: reservationIDs,
	})
	if err != nil {
		return "", fmt.Errorf("encode charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build charge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment collaborator unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("payment collaborator returned %d: %s", resp.StatusCode, msg)
	}

	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode charge response: %w", err)
	}
	if out.PaymentURL == "" {
		return "", fmt.Errorf("payment collaborator returned no payment url")
	}
	return out.PaymentURL, nil
}
