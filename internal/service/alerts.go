package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rentfit-reservations/internal/logger"
)

type sendgridAlertService struct {
	apiKey    string
	fromEmail string
	toEmail   string
}

// NewSendGridAlertService emails operators about sweep failures and
// payment collaborator outages.
func NewSendGridAlertService(apiKey, fromEmail, toEmail string) AlertService {
	return &sendgridAlertService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

func (s *sendgridAlertService) SweepReport(ctx context.Context, processed int, failed []int64) {
	if len(failed) == 0 {
		return
	}
	subject := fmt.Sprintf("Expiry sweep: %d reservations failed to transition", len(failed))
	body := fmt.Sprintf(
		"The auto-expiry sweep processed %d reservations.\n\nThe following reservation ids could not be marked returned and were skipped: %v\n\nThey will be retried on the next run.",
		processed, failed,
	)
	s.send(ctx, subject, body)
}

func (s *sendgridAlertService) PaymentFailure(ctx context.Context, batchID string, cause error) {
	subject := "Payment collaborator charge failed"
	body := fmt.Sprintf(
		"Checkout batch %s could not be charged.\n\nError: %v\n\nAll reservations in the batch remain PENDING; the customer may retry.",
		batchID, cause,
	)
	s.send(ctx, subject, body)
}

func (s *sendgridAlertService) send(ctx context.Context, subject, body string) {
	from := mail.NewEmail("Reservations Engine", s.fromEmail)
	to := mail.NewEmail("Operations", s.toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ErrorContext(ctx, "failed to send operator alert", "subject", subject, "error", err)
		return
	}
	if resp.StatusCode >= 400 {
		logger.ErrorContext(ctx, "operator alert rejected", "subject", subject, "status", resp.StatusCode)
	}
}

type noopAlertService struct{}

// NewNoopAlertService is used when no alert email is configured.
func NewNoopAlertService() AlertService {
	return noopAlertService{}
}

func (noopAlertService) SweepReport(ctx context.Context, processed int, failed []int64) {
	if len(failed) > 0 {
		logger.Warn("expiry sweep skipped reservations", "processed", processed, "failed", failed)
	}
}

func (noopAlertService) PaymentFailure(ctx context.Context, batchID string, cause error) {
	logger.Warn("payment charge failed", "batch_id", batchID, "error", cause)
}
