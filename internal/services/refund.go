package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tixbase/dibs-payment-service/internal/errors"
	"github.com/tixbase/dibs-payment-service/internal/metrics"
	"github.com/tixbase/dibs-payment-service/internal/models"
	repository "github.com/tixbase/dibs-payment-service/internal/repositories"
	"github.com/tixbase/dibs-payment-service/pkg/dibs"
)

type RefundService interface {
	ExecuteRefund(ctx context.Context, paymentID uuid.UUID, req *models.RefundRequest) (*models.Refund, error)
	ListRefunds(ctx context.Context, paymentID uuid.UUID) ([]*models.Refund, error)
}

type refundService struct {
	repo        repository.RefundRepository
	paymentRepo repository.PaymentRepository
	settings    SettingsService
	dibsClient  dibs.Client
}

func NewRefundService(repo repository.RefundRepository, paymentRepo repository.PaymentRepository, settings SettingsService, dibsClient dibs.Client) RefundService {
	return &refundService{
		repo:        repo,
		paymentRepo: paymentRepo,
		settings:    settings,
		dibsClient:  dibsClient,
	}
}

// ExecuteRefund implements RefundService. refund.cgi needs an API user, so a
// merchant without one is rejected before anything is written or sent.
func (s *refundService) ExecuteRefund(ctx context.Context, paymentID uuid.UUID, req *models.RefundRequest) (*models.Refund, error) {
	payment, err := s.paymentRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, errors.NotFoundError("Payment not found").WithError(err)
	}

	if payment.Transact == "" || (payment.Status != models.PaymentStatusSucceeded && payment.Status != models.PaymentStatusRefunded) {
		return nil, errors.ConflictError("Payment has no refundable transaction")
	}

	settingsResp, err := s.settings.GetSettings(ctx, payment.Organizer, payment.Event)
	if err != nil {
		return nil, err
	}

	settings := settingsResp.Settings

	creds := s.settings.ResolveAPICredentials(settings)
	if !creds.Complete() {
		return nil, errors.ConfigurationError("Refunds are not supported: no API user configured for this merchant")
	}

	refunded, err := s.repo.SumRefundedAmount(ctx, paymentID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to total prior refunds").WithError(err)
	}

	remaining := payment.RefundableAmount(refunded)

	amount := req.Amount
	if amount == 0 {
		amount = remaining
	}

	if amount <= 0 || amount > remaining {
		return nil, errors.ValidationError(fmt.Sprintf("Refund amount exceeds the %d remaining", remaining))
	}

	currencyNumber, err := dibs.CurrencyNumber(payment.Currency)
	if err != nil {
		return nil, errors.InternalError("Unsupported currency on stored payment").WithError(err)
	}

	refund := &models.Refund{
		ID:        uuid.New(),
		PaymentID: paymentID,
		Amount:    amount,
		State:     models.RefundStateCreated,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateRefund(ctx, refund); err != nil {
		return nil, errors.DatabaseError("Failed to record refund").WithError(err)
	}

	start := time.Now()

	reply, err := s.dibsClient.Refund(ctx, creds, &dibs.TransactionParams{
		MerchantID: settings.MerchantID,
		OrderID:    payment.GatewayOrderID(),
		Transact:   payment.Transact,
		Amount:     amount,
		Currency:   currencyNumber,
		TestMode:   payment.TestMode,
		Keys:       dibs.MerchantKeys{Key1: settings.MD5Key1, Key2: settings.MD5Key2},
	})

	metrics.GatewayCall("refund", err == nil, time.Since(start))

	if err != nil {
		refund.State = models.RefundStateFailed
		refund.GatewayResult = -1
		refund.GatewayMessage = err.Error()

		if markErr := s.repo.MarkRefundExecuted(ctx, refund); markErr != nil {
			return nil, errors.DatabaseError("Failed to record refund failure").WithError(markErr)
		}

		return refund, errors.GatewayError("Refund call failed").WithError(err)
	}

	refund.GatewayStatus = reply.Status
	refund.GatewayResult = reply.Result
	refund.GatewayMessage = reply.Message

	if reply.Accepted() {
		refund.State = models.RefundStateDone
	} else {
		refund.State = models.RefundStateFailed
	}

	if err := s.repo.MarkRefundExecuted(ctx, refund); err != nil {
		return nil, errors.DatabaseError("Failed to record refund result").WithError(err)
	}

	if !reply.Accepted() {
		return refund, errors.GatewayDeclinedError(fmt.Sprintf("Refund declined: %s", dibs.ResultText(reply.Result)))
	}

	if refunded+amount >= payment.Amount {
		if err := s.paymentRepo.UpdatePaymentStatus(ctx, paymentID, models.PaymentStatusRefunded); err != nil {
			return nil, errors.DatabaseError("Failed to mark payment refunded").WithError(err)
		}
	}

	return refund, nil
}

// ListRefunds implements RefundService.
func (s *refundService) ListRefunds(ctx context.Context, paymentID uuid.UUID) ([]*models.Refund, error) {
	refunds, err := s.repo.ListRefundsOfPayment(ctx, paymentID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch refunds").WithError(err)
	}

	return refunds, nil
}
