package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tixbase/dibs-payment-service/internal/api/handlers"
	appErrors "github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/models"
	"github.com/tixbase/dibs-payment-service/internal/services/mocks"
	"github.com/tixbase/dibs-payment-service/internal/testutils"
)

func TestCreateRefund(t *testing.T) {
	paymentID := uuid.New()

	storedPayment := &models.Payment{
		ID:        paymentID,
		Organizer: "demo",
		Event:     "conf2026",
		OrderCode: "AB1CD",
		Amount:    12500,
		Currency:  "DKK",
		Status:    models.PaymentStatusSucceeded,
		Transact:  "1234567890",
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRefundService := mocks.NewMockRefundService(t)
		mockPaymentService := mocks.NewMockPaymentService(t)
		refundHandler := handlers.NewRefundHandler(mockRefundService, mockPaymentService)

		expected := &models.Refund{
			ID:        uuid.New(),
			PaymentID: paymentID,
			Amount:    5000,
			State:     models.RefundStateDone,
		}

		mockPaymentService.On("GetPaymentByID", mock.Anything, paymentID).Return(storedPayment, nil).Once()
		mockRefundService.On("ExecuteRefund", mock.Anything, paymentID, mock.MatchedBy(func(req *models.RefundRequest) bool {
			return req.Amount == 5000
		})).Return(expected, nil).Once()

		reqBodyBytes, _ := json.Marshal(models.RefundRequest{Amount: 5000})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/refunds", bytes.NewReader(reqBodyBytes), "demo", map[string]string{"id": paymentID.String()})
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		refundHandler.CreateRefund().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		data := successData[*models.Refund](t, rr.Body.Bytes())
		assert.Equal(t, expected.ID, data.ID)
		assert.Equal(t, models.RefundStateDone, data.State)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		mockRefundService := mocks.NewMockRefundService(t)
		mockPaymentService := mocks.NewMockPaymentService(t)
		refundHandler := handlers.NewRefundHandler(mockRefundService, mockPaymentService)

		reqBodyBytes, _ := json.Marshal(models.RefundRequest{Amount: 5000})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/refunds", bytes.NewReader(reqBodyBytes), map[string]string{"id": paymentID.String()})
		rr := httptest.NewRecorder()

		// Act
		refundHandler.CreateRefund().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockRefundService.AssertNotCalled(t, "ExecuteRefund")
	})

	t.Run("Failure - Another Organizer's Payment", func(t *testing.T) {
		// Arrange
		mockRefundService := mocks.NewMockRefundService(t)
		mockPaymentService := mocks.NewMockPaymentService(t)
		refundHandler := handlers.NewRefundHandler(mockRefundService, mockPaymentService)

		mockPaymentService.On("GetPaymentByID", mock.Anything, paymentID).Return(storedPayment, nil).Once()

		reqBodyBytes, _ := json.Marshal(models.RefundRequest{Amount: 5000})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/refunds", bytes.NewReader(reqBodyBytes), "someoneelse", map[string]string{"id": paymentID.String()})
		rr := httptest.NewRecorder()

		// Act
		refundHandler.CreateRefund().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockRefundService.AssertNotCalled(t, "ExecuteRefund")
	})

	t.Run("Failure - Refunds Not Supported", func(t *testing.T) {
		// Arrange
		mockRefundService := mocks.NewMockRefundService(t)
		mockPaymentService := mocks.NewMockPaymentService(t)
		refundHandler := handlers.NewRefundHandler(mockRefundService, mockPaymentService)

		mockPaymentService.On("GetPaymentByID", mock.Anything, paymentID).Return(storedPayment, nil).Once()
		mockRefundService.On("ExecuteRefund", mock.Anything, paymentID, mock.Anything).
			Return(nil, appErrors.ConfigurationError("Refunds are not supported: no API user configured for this merchant")).Once()

		reqBodyBytes, _ := json.Marshal(models.RefundRequest{Amount: 0})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/refunds", bytes.NewReader(reqBodyBytes), "demo", map[string]string{"id": paymentID.String()})
		rr := httptest.NewRecorder()

		// Act
		refundHandler.CreateRefund().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeConfiguration)
	})
}

func TestListRefundsHandler(t *testing.T) {
	paymentID := uuid.New()

	storedPayment := &models.Payment{
		ID:        paymentID,
		Organizer: "demo",
		Event:     "conf2026",
		Status:    models.PaymentStatusRefunded,
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRefundService := mocks.NewMockRefundService(t)
		mockPaymentService := mocks.NewMockPaymentService(t)
		refundHandler := handlers.NewRefundHandler(mockRefundService, mockPaymentService)

		refunds := []*models.Refund{
			{ID: uuid.New(), PaymentID: paymentID, Amount: 12500, State: models.RefundStateDone},
		}

		mockPaymentService.On("GetPaymentByID", mock.Anything, paymentID).Return(storedPayment, nil).Once()
		mockRefundService.On("ListRefunds", mock.Anything, paymentID).Return(refunds, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/payments/"+paymentID.String()+"/refunds", nil, "demo", map[string]string{"id": paymentID.String()})
		rr := httptest.NewRecorder()

		// Act
		refundHandler.ListRefunds().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"total":1`)
	})

	t.Run("Failure - Payment Not Found", func(t *testing.T) {
		// Arrange
		mockRefundService := mocks.NewMockRefundService(t)
		mockPaymentService := mocks.NewMockPaymentService(t)
		refundHandler := handlers.NewRefundHandler(mockRefundService, mockPaymentService)

		mockPaymentService.On("GetPaymentByID", mock.Anything, paymentID).
			Return(nil, appErrors.NotFoundError("Payment not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/payments/"+paymentID.String()+"/refunds", nil, "demo", map[string]string{"id": paymentID.String()})
		rr := httptest.NewRecorder()

		// Act
		refundHandler.ListRefunds().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockRefundService.AssertNotCalled(t, "ListRefunds")
	})
}
