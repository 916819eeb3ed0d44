package service_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/models"
	repoMocks "github.com/tixbase/dibs-payment-service/internal/repositories/mocks"
	service "github.com/tixbase/dibs-payment-service/internal/services"
	serviceMocks "github.com/tixbase/dibs-payment-service/internal/services/mocks"
	"github.com/tixbase/dibs-payment-service/pkg/dibs"
	dibsMocks "github.com/tixbase/dibs-payment-service/pkg/dibs/mocks"
)

type refundServiceMocks struct {
	repo        *repoMocks.MockRefundRepository
	paymentRepo *repoMocks.MockPaymentRepository
	settings    *serviceMocks.MockSettingsService
	dibsClient  *dibsMocks.MockClient
}

func newRefundService(t *testing.T) (service.RefundService, *refundServiceMocks) {
	t.Helper()

	m := &refundServiceMocks{
		repo:        repoMocks.NewMockRefundRepository(t),
		paymentRepo: repoMocks.NewMockPaymentRepository(t),
		settings:    serviceMocks.NewMockSettingsService(t),
		dibsClient:  dibsMocks.NewMockClient(t),
	}

	svc := service.NewRefundService(m.repo, m.paymentRepo, m.settings, m.dibsClient)
	require.NotNil(t, svc)

	return svc, m
}

func settledPayment() *models.Payment {
	return &models.Payment{
		ID:        uuid.New(),
		Organizer: "demo",
		Event:     "conf2026",
		OrderCode: "AB1CD",
		LocalID:   1,
		Amount:    12500,
		Currency:  "DKK",
		Status:    models.PaymentStatusSucceeded,
		Transact:  "1234567890",
		TestMode:  true,
	}
}

func TestExecuteRefund(t *testing.T) {
	ctx := t.Context()

	settings := testEventSettings()
	settings.APIUser = "apiuser"
	settings.APIPassword = "apipass"
	settingsResp := &models.SettingsResponse{Settings: settings, RefundSupported: true}
	creds := dibs.Credentials{Username: "apiuser", Password: "apipass"}

	t.Run("Success - Full Refund", func(t *testing.T) {
		// Arrange
		svc, m := newRefundService(t)
		payment := settledPayment()

		m.paymentRepo.On("GetPaymentByID", ctx, payment.ID).Return(payment, nil).Once()
		m.settings.On("GetSettings", ctx, "demo", "conf2026").Return(settingsResp, nil).Once()
		m.settings.On("ResolveAPICredentials", settings).Return(creds).Once()
		m.repo.On("SumRefundedAmount", ctx, payment.ID).Return(int64(0), nil).Once()
		m.repo.On("CreateRefund", ctx, mock.MatchedBy(func(r *models.Refund) bool {
			return r.PaymentID == payment.ID && r.Amount == 12500 && r.State == models.RefundStateCreated
		})).Return(nil).Once()
		m.dibsClient.On("Refund", ctx, creds, mock.MatchedBy(func(p *dibs.TransactionParams) bool {
			return p.MerchantID == "90001234" && p.Transact == "1234567890" && p.Amount == 12500 && p.Currency == "208"
		})).Return(&dibs.Reply{Status: "ACCEPTED", Result: dibs.ResultAccepted}, nil).Once()
		m.repo.On("MarkRefundExecuted", ctx, mock.MatchedBy(func(r *models.Refund) bool {
			return r.State == models.RefundStateDone && r.GatewayResult == dibs.ResultAccepted
		})).Return(nil).Once()
		m.paymentRepo.On("UpdatePaymentStatus", ctx, payment.ID, models.PaymentStatusRefunded).Return(nil).Once()

		// Act: amount 0 means refund everything that is left
		refund, err := svc.ExecuteRefund(ctx, payment.ID, &models.RefundRequest{Amount: 0})

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, refund)
		assert.Equal(t, models.RefundStateDone, refund.State)
		assert.Equal(t, int64(12500), refund.Amount)
	})

	t.Run("Success - Partial Refund Keeps Payment Succeeded", func(t *testing.T) {
		// Arrange
		svc, m := newRefundService(t)
		payment := settledPayment()

		m.paymentRepo.On("GetPaymentByID", ctx, payment.ID).Return(payment, nil).Once()
		m.settings.On("GetSettings", ctx, "demo", "conf2026").Return(settingsResp, nil).Once()
		m.settings.On("ResolveAPICredentials", settings).Return(creds).Once()
		m.repo.On("SumRefundedAmount", ctx, payment.ID).Return(int64(0), nil).Once()
		m.repo.On("CreateRefund", ctx, mock.Anything).Return(nil).Once()
		m.dibsClient.On("Refund", ctx, creds, mock.MatchedBy(func(p *dibs.TransactionParams) bool {
			return p.Amount == 5000
		})).Return(&dibs.Reply{Status: "ACCEPTED", Result: dibs.ResultAccepted}, nil).Once()
		m.repo.On("MarkRefundExecuted", ctx, mock.Anything).Return(nil).Once()

		// Act: no UpdatePaymentStatus expected
		refund, err := svc.ExecuteRefund(ctx, payment.ID, &models.RefundRequest{Amount: 5000})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, models.RefundStateDone, refund.State)
	})

	t.Run("Failure - No API User Configured", func(t *testing.T) {
		// Arrange
		svc, m := newRefundService(t)
		payment := settledPayment()

		bare := testEventSettings()
		bareResp := &models.SettingsResponse{Settings: bare}

		m.paymentRepo.On("GetPaymentByID", ctx, payment.ID).Return(payment, nil).Once()
		m.settings.On("GetSettings", ctx, "demo", "conf2026").Return(bareResp, nil).Once()
		m.settings.On("ResolveAPICredentials", bare).Return(dibs.Credentials{}).Once()

		// Act: the gateway must not be called at all
		refund, err := svc.ExecuteRefund(ctx, payment.ID, &models.RefundRequest{Amount: 0})

		// Assert
		assert.Nil(t, refund)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeConfiguration, appErr.Code)
	})

	t.Run("Failure - Refund Declined", func(t *testing.T) {
		// Arrange
		svc, m := newRefundService(t)
		payment := settledPayment()

		m.paymentRepo.On("GetPaymentByID", ctx, payment.ID).Return(payment, nil).Once()
		m.settings.On("GetSettings", ctx, "demo", "conf2026").Return(settingsResp, nil).Once()
		m.settings.On("ResolveAPICredentials", settings).Return(creds).Once()
		m.repo.On("SumRefundedAmount", ctx, payment.ID).Return(int64(0), nil).Once()
		m.repo.On("CreateRefund", ctx, mock.Anything).Return(nil).Once()
		m.dibsClient.On("Refund", ctx, creds, mock.Anything).
			Return(&dibs.Reply{Status: "DECLINED", Result: dibs.ResultAmountTooHigh}, nil).Once()
		m.repo.On("MarkRefundExecuted", ctx, mock.MatchedBy(func(r *models.Refund) bool {
			return r.State == models.RefundStateFailed && r.GatewayResult == dibs.ResultAmountTooHigh
		})).Return(nil).Once()

		// Act
		refund, err := svc.ExecuteRefund(ctx, payment.ID, &models.RefundRequest{Amount: 0})

		// Assert
		require.NotNil(t, refund)
		assert.Equal(t, models.RefundStateFailed, refund.State)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeGatewayDeclined, appErr.Code)
	})

	t.Run("Failure - Gateway Unreachable", func(t *testing.T) {
		// Arrange
		svc, m := newRefundService(t)
		payment := settledPayment()

		netErr := errors.New("dial tcp: connection refused")

		m.paymentRepo.On("GetPaymentByID", ctx, payment.ID).Return(payment, nil).Once()
		m.settings.On("GetSettings", ctx, "demo", "conf2026").Return(settingsResp, nil).Once()
		m.settings.On("ResolveAPICredentials", settings).Return(creds).Once()
		m.repo.On("SumRefundedAmount", ctx, payment.ID).Return(int64(0), nil).Once()
		m.repo.On("CreateRefund", ctx, mock.Anything).Return(nil).Once()
		m.dibsClient.On("Refund", ctx, creds, mock.Anything).Return(nil, netErr).Once()
		m.repo.On("MarkRefundExecuted", ctx, mock.MatchedBy(func(r *models.Refund) bool {
			return r.State == models.RefundStateFailed && r.GatewayResult == -1
		})).Return(nil).Once()

		// Act
		refund, err := svc.ExecuteRefund(ctx, payment.ID, &models.RefundRequest{Amount: 0})

		// Assert
		require.NotNil(t, refund)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeGatewayError, appErr.Code)
	})

	t.Run("Failure - Amount Exceeds Remaining", func(t *testing.T) {
		// Arrange
		svc, m := newRefundService(t)
		payment := settledPayment()

		m.paymentRepo.On("GetPaymentByID", ctx, payment.ID).Return(payment, nil).Once()
		m.settings.On("GetSettings", ctx, "demo", "conf2026").Return(settingsResp, nil).Once()
		m.settings.On("ResolveAPICredentials", settings).Return(creds).Once()
		m.repo.On("SumRefundedAmount", ctx, payment.ID).Return(int64(10000), nil).Once()

		// Act: only 2500 remaining
		refund, err := svc.ExecuteRefund(ctx, payment.ID, &models.RefundRequest{Amount: 5000})

		// Assert
		assert.Nil(t, refund)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})

	t.Run("Failure - Payment Not Refundable", func(t *testing.T) {
		// Arrange
		svc, m := newRefundService(t)
		payment := settledPayment()
		payment.Status = models.PaymentStatusPending
		payment.Transact = ""

		m.paymentRepo.On("GetPaymentByID", ctx, payment.ID).Return(payment, nil).Once()

		// Act
		refund, err := svc.ExecuteRefund(ctx, payment.ID, &models.RefundRequest{Amount: 0})

		// Assert
		assert.Nil(t, refund)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeConflict, appErr.Code)
	})
}

func TestListRefunds(t *testing.T) {
	ctx := t.Context()
	paymentID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc, m := newRefundService(t)

		expected := []*models.Refund{
			{ID: uuid.New(), PaymentID: paymentID, Amount: 5000, State: models.RefundStateDone},
		}

		m.repo.On("ListRefundsOfPayment", ctx, paymentID).Return(expected, nil).Once()

		// Act
		refunds, err := svc.ListRefunds(ctx, paymentID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, refunds)
	})

	t.Run("Failure - DB Error", func(t *testing.T) {
		// Arrange
		svc, m := newRefundService(t)

		m.repo.On("ListRefundsOfPayment", ctx, paymentID).Return(nil, errors.New("query failed")).Once()

		// Act
		refunds, err := svc.ListRefunds(ctx, paymentID)

		// Assert
		assert.Nil(t, refunds)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}
