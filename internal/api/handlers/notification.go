package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tixbase/dibs-payment-service/internal/api/middleware"
	"github.com/tixbase/dibs-payment-service/internal/errors"
	service "github.com/tixbase/dibs-payment-service/internal/services"
	"github.com/tixbase/dibs-payment-service/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
	paymentService      service.PaymentService
}

func NewNotificationHandler(notificationService service.NotificationService, paymentService service.PaymentService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, paymentService: paymentService}
}

func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			slog.Warn("Unauthorized notification access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, ok := paymentIDFromPath(w, r)
		if !ok {
			return
		}

		payment, err := h.paymentService.GetPaymentByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		if payment.Organizer != claims.Organizer {
			response.Error(w, errors.ForbiddenError("You can only access your own payments"))
			return
		}

		notifications, err := h.notificationService.ListNotifications(r.Context(), id)
		if err != nil {
			slog.Error("Failed to list notifications",
				slog.String("paymentId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"notifications": notifications,
			"total":         len(notifications),
		})
	}
}
