package handlers

import (
	"crypto/hmac"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tixbase/dibs-payment-service/internal/api/middleware"
	"github.com/tixbase/dibs-payment-service/internal/config"
	"github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/models"
	service "github.com/tixbase/dibs-payment-service/internal/services"
	"github.com/tixbase/dibs-payment-service/internal/utils"
	"github.com/tixbase/dibs-payment-service/internal/utils/response"
	"github.com/tixbase/dibs-payment-service/pkg/dibs"
)

type PaymentHandler struct {
	paymentService  service.PaymentService
	frontendBaseURL string
	validator       *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		paymentService:  paymentService,
		frontendBaseURL: cfg.FrontendBaseURL,
		validator:       validator.New(),
	}
}

func (h *PaymentHandler) InitiatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, organizer, event, ok := requireEventAccess(w, r)
		if !ok {
			return
		}

		// Decode the request body
		var req models.InitiatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		// Call the payment service
		result, err := h.paymentService.InitiatePayment(r.Context(), organizer, event, &req)
		if err != nil {
			slog.Error("Failed to initiate payment",
				slog.String("organizer", organizer),
				slog.String("event", event),
				slog.String("orderCode", req.OrderCode),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Payment initiated",
			slog.String("paymentId", result.Payment.ID.String()),
			slog.String("userId", claims.UserID.String()))
		response.Success(w, http.StatusCreated, result)
	}
}

func (h *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			slog.Warn("Unauthorized payment access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, ok := paymentIDFromPath(w, r)
		if !ok {
			return
		}

		// Call the service
		payment, err := h.paymentService.GetPaymentByID(r.Context(), id)
		if err != nil {
			slog.Error("Failed to get payment",
				slog.String("paymentId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if payment.Organizer != claims.Organizer {
			slog.Warn("Organizer attempted to read another organizer's payment",
				slog.String("organizer", claims.Organizer),
				slog.String("paymentId", id.String()))
			response.Error(w, errors.ForbiddenError("You can only access your own payments"))
			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}

func (h *PaymentHandler) ListPayments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, organizer, event, ok := requireEventAccess(w, r)
		if !ok {
			return
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}
		pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 10
		}

		// Call the service
		payments, total, err := h.paymentService.ListPayments(r.Context(), organizer, event, page, pageSize)
		if err != nil {
			slog.Error("Failed to list event payments",
				slog.String("organizer", organizer),
				slog.String("event", event),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     payments,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

func (h *PaymentHandler) CapturePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			slog.Warn("Unauthorized capture attempt")
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
			response.Error(w, errors.ForbiddenError("You can only capture your own payments"))
			return
		}

		captured, err := h.paymentService.CapturePayment(r.Context(), id)
		if err != nil {
			slog.Error("Failed to capture payment",
				slog.String("paymentId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Payment captured", slog.String("paymentId", id.String()))
		response.Success(w, http.StatusOK, captured)
	}
}

// Checkout serves the payer-facing page that forwards the browser to the
// hosted payment window. The signed fields were stashed at initiation; the
// page is a plain auto-submitting form so no script from our side runs inside
// the payment flow.
func (h *PaymentHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := paymentIDFromPath(w, r)
		if !ok {
			return
		}

		session, err := h.paymentService.GetCheckoutSession(r.Context(), id)
		if err != nil {
			slog.Warn("Checkout session lookup failed",
				slog.String("paymentId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store, max-age=0")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.WriteHeader(http.StatusOK)

		if err := renderAutoPostForm(w, session.Action, session.Fields); err != nil {
			slog.Error("Failed to render checkout form",
				slog.String("paymentId", id.String()),
				slog.String("error", err.Error()))
		}
	}
}

// Return lands the payer after the payment window closes, for accepted and
// cancelled payments alike. The hash gates the page so order details cannot
// be probed by guessing payment ids.
func (h *PaymentHandler) Return() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := paymentIDFromPath(w, r)
		if !ok {
			return
		}

		payment, err := h.paymentService.GetPaymentByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		hash := r.URL.Query().Get("hash")
		if !hmac.Equal([]byte(hash), []byte(h.paymentService.ReturnHash(payment))) {
			slog.Warn("Return page hash mismatch", slog.String("paymentId", id.String()))
			response.Error(w, errors.ForbiddenError("Invalid return link"))
			return
		}

		target := fmt.Sprintf("%s/%s/%s/order/%s/?payment=%s",
			h.frontendBaseURL, payment.Organizer, payment.Event, payment.OrderCode, url.QueryEscape(string(payment.Status)))

		http.Redirect(w, r, target, http.StatusFound)
	}
}

// HandleCallback receives the server-to-server callback DIBS sends once the
// payer completes or abandons the payment window. Merchants can configure the
// callback as POST or GET, so the parameters are read from the form body and
// the query string alike.
func (h *PaymentHandler) HandleCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := r.ParseForm(); err != nil {
			slog.Error("Error reading callback body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body"))
			return
		}

		cb, err := callbackFromForm(r.Form)
		if err != nil {
			slog.Error("Malformed callback", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Malformed callback parameters").WithError(err))
			return
		}

		// Call the service
		payment, err := h.paymentService.ProcessCallback(r.Context(), cb)
		if err != nil {
			slog.Error("Failed to process payment callback",
				slog.String("orderId", cb.OrderID),
				slog.String("transact", cb.Transact),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Payment callback processed",
			slog.String("paymentId", payment.ID.String()),
			slog.String("status", string(payment.Status)))
		response.Success(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// callbackFromForm maps the urlencoded output parameters of the payment
// window onto CallbackParams. Amount and status code are the only numeric
// fields; everything else passes through verbatim so the authkey check sees
// exactly what was signed.
func callbackFromForm(form url.Values) (*dibs.CallbackParams, error) {
	amount, err := strconv.ParseInt(form.Get("amount"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", form.Get("amount"), err)
	}

	statusCode, err := strconv.Atoi(form.Get("statuscode"))
	if err != nil {
		return nil, fmt.Errorf("statuscode %q: %w", form.Get("statuscode"), err)
	}

	return &dibs.CallbackParams{
		Transact:   form.Get("transact"),
		OrderID:    form.Get("orderid"),
		Amount:     amount,
		Currency:   form.Get("currency"),
		StatusCode: statusCode,
		AuthKey:    form.Get("authkey"),
		PayType:    form.Get("paytype"),
		CardNoMask: form.Get("cardnomask"),
		Acquirer:   form.Get("acquirer"),
	}, nil
}

var autoPostTemplate = template.Must(template.New("checkout").Parse(`<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Redirecting…</title>
  <style>
    body { font-family: -apple-system, system-ui, Segoe UI, Roboto, Arial; padding: 24px; }
    .box { max-width: 480px; margin: 40px auto; text-align: center; }
  </style>
</head>
<body>
  <div class="box">
    <h3>Redirecting to the payment window…</h3>
    <p>Please wait.</p>

    <form id="f" method="POST" action="{{.Action}}">
      {{range $k, $v := .Fields}}
        <input type="hidden" name="{{$k}}" value="{{$v}}">
      {{end}}
      <noscript><button type="submit">Continue</button></noscript>
    </form>

    <script>
      (function(){ document.getElementById('f').submit(); })();
    </script>
  </div>
</body>
</html>`))

func renderAutoPostForm(w http.ResponseWriter, action string, fields map[string]string) error {
	return autoPostTemplate.Execute(w, map[string]any{
		"Action": action,
		"Fields": fields,
	})
}

// requireEventAccess pulls the organizer and event slugs off the path and
// checks them against the token's organizer scope.
func requireEventAccess(w http.ResponseWriter, r *http.Request) (*models.Claims, string, string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		slog.Warn("Unauthorized event access attempt")
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, "", "", false
	}

	organizer := r.PathValue("organizer")
	event := r.PathValue("event")

	if organizer == "" || event == "" {
		response.Error(w, errors.BadRequestError("Organizer and event are required"))
		return nil, "", "", false
	}

	if claims.Organizer != organizer {
		slog.Warn("Organizer attempted to act on another organizer's event",
			slog.String("tokenOrganizer", claims.Organizer),
			slog.String("pathOrganizer", organizer))
		response.Error(w, errors.ForbiddenError("You can only manage your own events"))
		return nil, "", "", false
	}

	return claims, organizer, event, true
}

func paymentIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		response.Error(w, errors.BadRequestError("Payment ID is required"))
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		response.Error(w, errors.BadRequestError("Payment ID must be a valid UUID"))
		return uuid.Nil, false
	}

	return id, true
}
