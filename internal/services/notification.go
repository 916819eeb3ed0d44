package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/models"
	repository "github.com/tixbase/dibs-payment-service/internal/repositories"
	"github.com/tixbase/dibs-payment-service/pkg/sendgrid"
)

type NotificationService interface {
	SendPaymentConfirmation(ctx context.Context, payment *models.Payment) error
	ListNotifications(ctx context.Context, paymentID uuid.UUID) ([]*models.Notification, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

// SendPaymentConfirmation implements NotificationService. A payment without a
// payer email is simply skipped.
func (s *notificationService) SendPaymentConfirmation(ctx context.Context, payment *models.Payment) error {
	if payment.Email == "" {
		return nil
	}

	subject := fmt.Sprintf("Payment confirmed for order %s", payment.OrderCode)

	notification := &models.Notification{
		ID:        uuid.New(),
		PaymentID: payment.ID,
		Recipient: payment.Email,
		Subject:   subject,
		Status:    models.NotificationStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.CreateNotification(ctx, notification); err != nil {
		return errors.DatabaseError("Failed to record notification").WithError(err)
	}

	content := fmt.Sprintf("We received your payment of %s for order %s. Thank you!",
		formatAmount(payment.Amount, payment.Currency), payment.OrderCode)

	req := &models.EmailNotificationRequest{
		To:      payment.Email,
		Subject: subject,
		Content: content,
	}

	if err := s.emailService.Send(ctx, req); err != nil {
		if updateErr := s.repo.UpdateNotificationStatus(ctx, notification.ID, models.NotificationStatusFailed, err.Error()); updateErr != nil {
			return errors.DatabaseError("Failed to record notification failure").WithError(updateErr)
		}

		return errors.GatewayError("Failed to send confirmation email").WithError(err)
	}

	if err := s.repo.UpdateNotificationStatus(ctx, notification.ID, models.NotificationStatusSent, ""); err != nil {
		return errors.DatabaseError("Failed to record notification success").WithError(err)
	}

	return nil
}

// ListNotifications implements NotificationService.
func (s *notificationService) ListNotifications(ctx context.Context, paymentID uuid.UUID) ([]*models.Notification, error) {
	notifications, err := s.repo.ListNotificationsOfPayment(ctx, paymentID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch notifications").WithError(err)
	}

	return notifications, nil
}

// formatAmount renders a minor-unit amount for email copy, e.g. 12500 DKK as
// "125.00 DKK".
func formatAmount(minor int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", minor/100, minor%100, currency)
}
