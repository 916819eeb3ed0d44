package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/models"
	repoMocks "github.com/tixbase/dibs-payment-service/internal/repositories/mocks"
	service "github.com/tixbase/dibs-payment-service/internal/services"
	sendgridMocks "github.com/tixbase/dibs-payment-service/pkg/sendgrid/mocks"
)

type notificationServiceMocks struct {
	repo  *repoMocks.MockNotificationRepository
	email *sendgridMocks.MockEmailService
}

func newNotificationService(t *testing.T) (service.NotificationService, *notificationServiceMocks) {
	t.Helper()

	m := &notificationServiceMocks{
		repo:  repoMocks.NewMockNotificationRepository(t),
		email: sendgridMocks.NewMockEmailService(t),
	}

	svc := service.NewNotificationService(m.repo, m.email)
	require.NotNil(t, svc)

	return svc, m
}

func TestSendPaymentConfirmation(t *testing.T) {
	ctx := t.Context()

	payment := &models.Payment{
		ID:        uuid.New(),
		OrderCode: "AB1CD",
		Amount:    12500,
		Currency:  "DKK",
		Email:     "buyer@example.com",
		Status:    models.PaymentStatusSucceeded,
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc, m := newNotificationService(t)

		m.repo.On("CreateNotification", ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.PaymentID == payment.ID &&
				n.Recipient == "buyer@example.com" &&
				n.Status == models.NotificationStatusPending
		})).Return(nil).Once()
		m.email.On("Send", ctx, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			return req.To == "buyer@example.com" &&
				req.Subject == "Payment confirmed for order AB1CD" &&
				strings.Contains(req.Content, "125.00 DKK")
		})).Return(nil).Once()
		m.repo.On("UpdateNotificationStatus", ctx, mock.AnythingOfType("uuid.UUID"), models.NotificationStatusSent, "").
			Return(nil).Once()

		// Act
		err := svc.SendPaymentConfirmation(ctx, payment)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Success - No Email On Payment Skips Sending", func(t *testing.T) {
		// Arrange
		svc, _ := newNotificationService(t)

		anonymous := *payment
		anonymous.Email = ""

		// Act: neither the repository nor the email client should be touched
		err := svc.SendPaymentConfirmation(ctx, &anonymous)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Failure - Email Send Fails", func(t *testing.T) {
		// Arrange
		svc, m := newNotificationService(t)

		sendErr := errors.New("sendgrid: 503 service unavailable")

		m.repo.On("CreateNotification", ctx, mock.Anything).Return(nil).Once()
		m.email.On("Send", ctx, mock.Anything).Return(sendErr).Once()
		m.repo.On("UpdateNotificationStatus", ctx, mock.AnythingOfType("uuid.UUID"), models.NotificationStatusFailed, sendErr.Error()).
			Return(nil).Once()

		// Act
		err := svc.SendPaymentConfirmation(ctx, payment)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeGatewayError, appErr.Code)
	})

	t.Run("Failure - Notification Record Fails", func(t *testing.T) {
		// Arrange
		svc, m := newNotificationService(t)

		m.repo.On("CreateNotification", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

		// Act
		err := svc.SendPaymentConfirmation(ctx, payment)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestListNotifications(t *testing.T) {
	ctx := t.Context()
	paymentID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc, m := newNotificationService(t)

		expected := []*models.Notification{
			{ID: uuid.New(), PaymentID: paymentID, Status: models.NotificationStatusSent},
		}

		m.repo.On("ListNotificationsOfPayment", ctx, paymentID).Return(expected, nil).Once()

		// Act
		notifications, err := svc.ListNotifications(ctx, paymentID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, notifications)
	})

	t.Run("Failure - DB Error", func(t *testing.T) {
		// Arrange
		svc, m := newNotificationService(t)

		m.repo.On("ListNotificationsOfPayment", ctx, paymentID).Return(nil, errors.New("query failed")).Once()

		// Act
		notifications, err := svc.ListNotifications(ctx, paymentID)

		// Assert
		assert.Nil(t, notifications)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}
