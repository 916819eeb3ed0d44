package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/tixbase/dibs-payment-service/internal/cache"
	"github.com/tixbase/dibs-payment-service/internal/config"
	"github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/metrics"
	"github.com/tixbase/dibs-payment-service/internal/models"
	repository "github.com/tixbase/dibs-payment-service/internal/repositories"
	"github.com/tixbase/dibs-payment-service/pkg/dibs"
)

// localIDAttempts bounds the retries when two initiations of the same order
// race for the same attempt number.
const localIDAttempts = 3

type PaymentService interface {
	InitiatePayment(ctx context.Context, organizer, event string, req *models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error)
	GetCheckoutSession(ctx context.Context, paymentID uuid.UUID) (*models.CheckoutSession, error)
	ProcessCallback(ctx context.Context, cb *dibs.CallbackParams) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ListPayments(ctx context.Context, organizer, event string, page, size int) ([]*models.Payment, int, error)
	CapturePayment(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ReturnHash(payment *models.Payment) string
}

type paymentService struct {
	repo         repository.PaymentRepository
	settings     SettingsService
	cache        cache.Cache
	dibsClient   dibs.Client
	notification NotificationService
	cfg          *config.Config
	sanitizer    *bluemonday.Policy
}

func NewPaymentService(repo repository.PaymentRepository, settings SettingsService, cacheStore cache.Cache, dibsClient dibs.Client, notification NotificationService, cfg *config.Config) PaymentService {
	return &paymentService{
		repo:         repo,
		settings:     settings,
		cache:        cacheStore,
		dibsClient:   dibsClient,
		notification: notification,
		cfg:          cfg,
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

// InitiatePayment implements PaymentService. It records a pending payment and
// prepares the signed form the payer's browser posts to the payment window.
func (s *paymentService) InitiatePayment(ctx context.Context, organizer, event string, req *models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error) {
	settingsResp, err := s.settings.GetSettings(ctx, organizer, event)
	if err != nil {
		return nil, err
	}

	settings := settingsResp.Settings

	secret, err := newOrderSecret()
	if err != nil {
		return nil, errors.InternalError("Failed to generate order secret").WithError(err)
	}

	var (
		payment *models.Payment
		form    *dibs.CheckoutForm
	)

	// The attempt number feeds the signed gateway order id, so a concurrent
	// initiation that grabs the same local id trips the unique index on
	// insert and the whole allocation is retried.
	for attempt := 1; ; attempt++ {
		localID, err := s.repo.NextLocalID(ctx, organizer, event, req.OrderCode)
		if err != nil {
			return nil, errors.DatabaseError("Failed to allocate payment attempt").WithError(err)
		}

		payment = &models.Payment{
			ID:          uuid.New(),
			Organizer:   organizer,
			Event:       event,
			OrderCode:   req.OrderCode,
			LocalID:     localID,
			Amount:      req.Amount,
			Currency:    req.Currency,
			Status:      models.PaymentStatusPending,
			Email:       req.Email,
			TestMode:    settings.TestMode,
			OrderSecret: secret,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		returnURL := s.returnURL(payment)

		// The order text ends up rendered inside the hosted payment window.
		form, err = s.dibsClient.BuildCheckoutForm(&dibs.CheckoutParams{
			MerchantID:  settings.MerchantID,
			OrderID:     payment.GatewayOrderID(),
			Amount:      payment.Amount,
			Currency:    payment.Currency,
			AcceptURL:   returnURL,
			CancelURL:   returnURL,
			CallbackURL: s.cfg.PublicBaseURL + "/api/v1/dibs/callback",
			Language:    s.cfg.DIBS.Language,
			Decorator:   settings.Decorator,
			OrderText:   s.sanitizer.Sanitize(req.OrderText),
			CaptureNow:  settings.CaptureNow,
			TestMode:    settings.TestMode,
			Keys:        dibs.MerchantKeys{Key1: settings.MD5Key1, Key2: settings.MD5Key2},
		})
		if err != nil {
			return nil, errors.ValidationError("Unsupported currency").WithError(err)
		}

		err = s.repo.CreatePayment(ctx, payment)
		if err == nil {
			break
		}

		if repository.IsUniqueViolation(err) && attempt < localIDAttempts {
			continue
		}

		return nil, errors.DatabaseError("Failed to record payment").WithError(err)
	}

	session := &models.CheckoutSession{
		PaymentID: payment.ID,
		Action:    form.Action,
		Fields:    form.Fields,
	}

	if err := s.cache.Set(ctx, cache.Key(cache.CheckoutKeyPrefix, payment.ID.String()), session, s.cfg.Cache.CheckoutTTL); err != nil {
		return nil, errors.InternalError("Failed to stash checkout session").WithError(err)
	}

	checkoutURL := fmt.Sprintf("%s/api/v1/events/%s/%s/payments/%s/checkout", s.cfg.PublicBaseURL, organizer, event, payment.ID)

	return &models.InitiatePaymentResponse{
		Payment:     payment,
		CheckoutURL: checkoutURL,
	}, nil
}

// GetCheckoutSession implements PaymentService.
func (s *paymentService) GetCheckoutSession(ctx context.Context, paymentID uuid.UUID) (*models.CheckoutSession, error) {
	session := &models.CheckoutSession{}

	found, err := s.cache.Get(ctx, cache.Key(cache.CheckoutKeyPrefix, paymentID.String()), session)
	if err != nil {
		return nil, errors.InternalError("Failed to load checkout session").WithError(err)
	}

	if !found {
		return nil, errors.NotFoundError("Checkout session expired or unknown")
	}

	return session, nil
}

// ProcessCallback implements PaymentService. DIBS calls back once the payer
// leaves the payment window; the callback authenticates through its authkey
// plus the amount and currency recorded at initiation, and any mismatch
// rejects it outright. Replays of an already recorded transaction are
// acknowledged without touching the payment again.
func (s *paymentService) ProcessCallback(ctx context.Context, cb *dibs.CallbackParams) (*models.Payment, error) {
	organizer, event, orderCode, localID, err := models.ParseGatewayOrderID(cb.OrderID)
	if err != nil {
		return nil, errors.BadRequestError("Malformed order id").WithError(err)
	}

	payment, err := s.repo.GetPaymentByGatewayOrder(ctx, organizer, event, orderCode, localID)
	if err != nil {
		return nil, errors.NotFoundError("Unknown payment").WithError(err)
	}

	settingsResp, err := s.settings.GetSettings(ctx, organizer, event)
	if err != nil {
		return nil, err
	}

	settings := settingsResp.Settings
	keys := dibs.MerchantKeys{Key1: settings.MD5Key1, Key2: settings.MD5Key2}

	currencyNumber, err := dibs.CurrencyNumber(payment.Currency)
	if err != nil {
		return nil, errors.InternalError("Unsupported currency on stored payment").WithError(err)
	}

	// The authkey only proves DIBS signed whatever arrived on the wire. The
	// amount and currency must also match the stored payment, or a tampered
	// checkout form could settle an order for less than it costs.
	if cb.Amount != payment.Amount || cb.Currency != currencyNumber {
		metrics.GatewayCallbackRejected()

		return nil, errors.UnauthorizedError("Callback amount does not match the payment")
	}

	if !s.dibsClient.VerifyCallback(keys, cb) {
		metrics.GatewayCallbackRejected()

		return nil, errors.UnauthorizedError("Callback authkey mismatch")
	}

	if payment.Status != models.PaymentStatusPending {
		if payment.Transact == cb.Transact || cb.Transact == "" {
			return payment, nil
		}

		return nil, errors.ConflictError("Payment already settled with a different transaction")
	}

	payment.Transact = cb.Transact
	payment.PayType = cb.PayType
	payment.CardType = dibs.CardType(cb.PayType)
	payment.Acquirer = cb.Acquirer
	payment.StatusCode = cb.StatusCode

	if dibs.Approved(cb.StatusCode) {
		payment.Status = models.PaymentStatusSucceeded
	} else {
		payment.Status = models.PaymentStatusFailed
	}

	if err := s.repo.RecordGatewayResult(ctx, payment); err != nil {
		return nil, errors.DatabaseError("Failed to record gateway result").WithError(err)
	}

	metrics.GatewayCallbackProcessed(string(payment.Status))

	if payment.Status == models.PaymentStatusSucceeded {
		// Confirmation mail must not fail the callback; DIBS would retry and
		// the payment is already settled.
		if err := s.notification.SendPaymentConfirmation(ctx, payment); err != nil {
			slog.Error("confirmation email failed",
				slog.String("payment_id", payment.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return payment, nil
}

// GetPaymentByID implements PaymentService.
func (s *paymentService) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Payment not found").WithError(err)
	}

	return payment, nil
}

// ListPayments implements PaymentService.
func (s *paymentService) ListPayments(ctx context.Context, organizer, event string, page, size int) ([]*models.Payment, int, error) {
	payments, total, err := s.repo.ListPaymentsOfEvent(ctx, organizer, event, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch payments").WithError(err)
	}

	return payments, total, nil
}

// CapturePayment implements PaymentService. Only needed when the event is not
// configured for capture on authorization.
func (s *paymentService) CapturePayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Payment not found").WithError(err)
	}

	if payment.Status != models.PaymentStatusSucceeded || payment.Transact == "" {
		return nil, errors.ConflictError("Payment has no authorized transaction to capture")
	}

	settingsResp, err := s.settings.GetSettings(ctx, payment.Organizer, payment.Event)
	if err != nil {
		return nil, err
	}

	settings := settingsResp.Settings

	currencyNumber, err := dibs.CurrencyNumber(payment.Currency)
	if err != nil {
		return nil, errors.InternalError("Unsupported currency on stored payment").WithError(err)
	}

	start := time.Now()

	reply, err := s.dibsClient.Capture(ctx, &dibs.TransactionParams{
		MerchantID: settings.MerchantID,
		OrderID:    payment.GatewayOrderID(),
		Transact:   payment.Transact,
		Amount:     payment.Amount,
		Currency:   currencyNumber,
		TestMode:   payment.TestMode,
		Keys:       dibs.MerchantKeys{Key1: settings.MD5Key1, Key2: settings.MD5Key2},
	})

	metrics.GatewayCall("capture", err == nil, time.Since(start))

	if err != nil {
		return nil, errors.GatewayError("Capture call failed").WithError(err)
	}

	if !reply.Accepted() {
		return nil, errors.GatewayDeclinedError(fmt.Sprintf("Capture declined: %s", dibs.ResultText(reply.Result)))
	}

	return payment, nil
}

// ReturnHash gates the payer-facing return page without exposing the order
// secret itself in the accept URL.
func (s *paymentService) ReturnHash(payment *models.Payment) string {
	sum := sha256.Sum256([]byte(payment.OrderSecret))

	return hex.EncodeToString(sum[:])
}

func (s *paymentService) returnURL(payment *models.Payment) string {
	return fmt.Sprintf("%s/api/v1/events/%s/%s/payments/%s/return?hash=%s",
		s.cfg.PublicBaseURL, payment.Organizer, payment.Event, payment.ID, s.ReturnHash(payment))
}

func newOrderSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
