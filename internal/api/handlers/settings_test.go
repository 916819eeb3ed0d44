package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tixbase/dibs-payment-service/internal/api/handlers"
	appErrors "github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/models"
	"github.com/tixbase/dibs-payment-service/internal/services/mocks"
	"github.com/tixbase/dibs-payment-service/internal/testutils"
)

func validSettingsRequest() models.UpdateSettingsRequest {
	return models.UpdateSettingsRequest{
		MerchantID:  "90001234",
		TestMode:    true,
		CaptureNow:  true,
		MD5Key1:     strings.Repeat("1", 32),
		MD5Key2:     strings.Repeat("2", 32),
		Decorator:   "responsive",
		APIUser:     "apiuser",
		APIPassword: "apipass",
	}
}

func TestUpdateSettingsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockSettingsService := mocks.NewMockSettingsService(t)
		settingsHandler := handlers.NewSettingsHandler(mockSettingsService)

		reqBody := validSettingsRequest()

		expected := &models.SettingsResponse{
			Settings: &models.EventSettings{
				Organizer:  "demo",
				Event:      "conf2026",
				MerchantID: "90001234",
			},
			RefundSupported: true,
		}

		mockSettingsService.On("UpdateSettings", mock.Anything, "demo", "conf2026", mock.MatchedBy(func(req *models.UpdateSettingsRequest) bool {
			return req.MerchantID == "90001234" && req.APIUser == "apiuser"
		})).Return(expected, nil).Once()

		reqBodyBytes, _ := json.Marshal(reqBody)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/events/demo/conf2026/settings", bytes.NewReader(reqBodyBytes), "demo", eventPathParams())
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		settingsHandler.UpdateSettings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		data := successData[*models.SettingsResponse](t, rr.Body.Bytes())
		assert.True(t, data.RefundSupported)
		assert.Equal(t, "90001234", data.Settings.MerchantID)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		mockSettingsService := mocks.NewMockSettingsService(t)
		settingsHandler := handlers.NewSettingsHandler(mockSettingsService)

		reqBodyBytes, _ := json.Marshal(validSettingsRequest())
		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/api/v1/events/demo/conf2026/settings", bytes.NewReader(reqBodyBytes), eventPathParams())
		rr := httptest.NewRecorder()

		// Act
		settingsHandler.UpdateSettings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockSettingsService.AssertNotCalled(t, "UpdateSettings")
	})

	t.Run("Failure - Invalid MD5 Key Length", func(t *testing.T) {
		// Arrange
		mockSettingsService := mocks.NewMockSettingsService(t)
		settingsHandler := handlers.NewSettingsHandler(mockSettingsService)

		reqBody := validSettingsRequest()
		reqBody.MD5Key1 = "tooshort"

		reqBodyBytes, _ := json.Marshal(reqBody)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/events/demo/conf2026/settings", bytes.NewReader(reqBodyBytes), "demo", eventPathParams())
		rr := httptest.NewRecorder()

		// Act
		settingsHandler.UpdateSettings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockSettingsService.AssertNotCalled(t, "UpdateSettings")
	})
}

func TestGetSettingsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockSettingsService := mocks.NewMockSettingsService(t)
		settingsHandler := handlers.NewSettingsHandler(mockSettingsService)

		expected := &models.SettingsResponse{
			Settings: &models.EventSettings{
				Organizer:  "demo",
				Event:      "conf2026",
				MerchantID: "90001234",
				TestMode:   true,
			},
		}

		mockSettingsService.On("GetSettings", mock.Anything, "demo", "conf2026").Return(expected, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/events/demo/conf2026/settings", nil, "demo", eventPathParams())
		rr := httptest.NewRecorder()

		// Act
		settingsHandler.GetSettings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		data := successData[*models.SettingsResponse](t, rr.Body.Bytes())
		assert.Equal(t, "90001234", data.Settings.MerchantID)
	})

	t.Run("Failure - Not Configured", func(t *testing.T) {
		// Arrange
		mockSettingsService := mocks.NewMockSettingsService(t)
		settingsHandler := handlers.NewSettingsHandler(mockSettingsService)

		mockSettingsService.On("GetSettings", mock.Anything, "demo", "conf2026").
			Return(nil, appErrors.ConfigurationError("Payment provider is not configured for this event")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/events/demo/conf2026/settings", nil, "demo", eventPathParams())
		rr := httptest.NewRecorder()

		// Act
		settingsHandler.GetSettings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeConfiguration)
	})
}
