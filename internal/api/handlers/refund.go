package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tixbase/dibs-payment-service/internal/api/middleware"
	"github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/models"
	service "github.com/tixbase/dibs-payment-service/internal/services"
	"github.com/tixbase/dibs-payment-service/internal/utils"
	"github.com/tixbase/dibs-payment-service/internal/utils/response"
)

type RefundHandler struct {
	refundService  service.RefundService
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewRefundHandler(refundService service.RefundService, paymentService service.PaymentService) *RefundHandler {
	return &RefundHandler{
		refundService:  refundService,
		paymentService: paymentService,
		validator:      validator.New(),
	}
}

func (h *RefundHandler) CreateRefund() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			slog.Warn("Unauthorized refund attempt")
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
			slog.Warn("Organizer attempted to refund another organizer's payment",
				slog.String("organizer", claims.Organizer),
				slog.String("paymentId", id.String()))
			response.Error(w, errors.ForbiddenError("You can only refund your own payments"))
			return
		}

		// Decode the request body
		var req models.RefundRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		// Call the refund service
		refund, err := h.refundService.ExecuteRefund(r.Context(), id, &req)
		if err != nil {
			slog.Error("Failed to execute refund",
				slog.String("paymentId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Refund executed",
			slog.String("refundId", refund.ID.String()),
			slog.String("paymentId", id.String()),
			slog.Int64("amount", refund.Amount))
		response.Success(w, http.StatusCreated, refund)
	}
}

func (h *RefundHandler) ListRefunds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			slog.Warn("Unauthorized refund access attempt")
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

		refunds, err := h.refundService.ListRefunds(r.Context(), id)
		if err != nil {
			slog.Error("Failed to list refunds",
				slog.String("paymentId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"refunds": refunds,
			"total":   len(refunds),
		})
	}
}
