package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tixbase/dibs-payment-service/internal/models"
	service "github.com/tixbase/dibs-payment-service/internal/services"
	"github.com/tixbase/dibs-payment-service/internal/utils"
	"github.com/tixbase/dibs-payment-service/internal/utils/response"
)

type SettingsHandler struct {
	settingsService service.SettingsService
	validator       *validator.Validate
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, validator: validator.New()}
}

func (h *SettingsHandler) UpdateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, organizer, event, ok := requireEventAccess(w, r)
		if !ok {
			return
		}

		// Decode the request body
		var req models.UpdateSettingsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		// Call the settings service
		settings, err := h.settingsService.UpdateSettings(r.Context(), organizer, event, &req)
		if err != nil {
			slog.Error("Failed to update settings",
				slog.String("organizer", organizer),
				slog.String("event", event),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Settings updated",
			slog.String("organizer", organizer),
			slog.String("event", event),
			slog.String("merchantId", settings.Settings.MerchantID))
		response.Success(w, http.StatusOK, settings)
	}
}

func (h *SettingsHandler) GetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, organizer, event, ok := requireEventAccess(w, r)
		if !ok {
			return
		}

		settings, err := h.settingsService.GetSettings(r.Context(), organizer, event)
		if err != nil {
			slog.Error("Failed to get settings",
				slog.String("organizer", organizer),
				slog.String("event", event),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, settings)
	}
}
