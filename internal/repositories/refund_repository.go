package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tixbase/dibs-payment-service/internal/models"
	"github.com/tixbase/dibs-payment-service/internal/utils"
)

type RefundRepository interface {
	CreateRefund(ctx context.Context, refund *models.Refund) error
	GetRefundByID(ctx context.Context, id uuid.UUID) (*models.Refund, error)
	MarkRefundExecuted(ctx context.Context, refund *models.Refund) error
	SumRefundedAmount(ctx context.Context, paymentID uuid.UUID) (int64, error)
	ListRefundsOfPayment(ctx context.Context, paymentID uuid.UUID) ([]*models.Refund, error)
}

type refundRepository struct {
	DB *sql.DB
}

func NewRefundRepository(db *sql.DB) RefundRepository {
	return &refundRepository{DB: db}
}

func (r *refundRepository) CreateRefund(ctx context.Context, refund *models.Refund) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO refunds (id, payment_id, amount, state, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.DB.ExecContext(dbCtx, query, refund.ID, refund.PaymentID, refund.Amount, refund.State)
	if err != nil {
		return fmt.Errorf("failed to insert refund: %w", err)
	}

	return nil
}

func (r *refundRepository) GetRefundByID(ctx context.Context, id uuid.UUID) (*models.Refund, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	refund := &models.Refund{}

	query := `
		SELECT id, payment_id, amount, state, gateway_status, gateway_result, gateway_message, created_at, executed_at
		FROM refunds
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&refund.ID, &refund.PaymentID, &refund.Amount, &refund.State, &refund.GatewayStatus, &refund.GatewayResult, &refund.GatewayMessage, &refund.CreatedAt, &refund.ExecutedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get the refund: %w", err)
	}

	return refund, nil
}

// MarkRefundExecuted stores the refund.cgi reply and the final state.
func (r *refundRepository) MarkRefundExecuted(ctx context.Context, refund *models.Refund) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE refunds SET state = $1, gateway_status = $2, gateway_result = $3, gateway_message = $4, executed_at = $5
		WHERE id = $6
	`

	result, err := r.DB.ExecContext(dbCtx, query, refund.State, refund.GatewayStatus, refund.GatewayResult, refund.GatewayMessage, time.Now(), refund.ID)
	if err != nil {
		return fmt.Errorf("failed to update the refund: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// SumRefundedAmount totals the refunds already accepted by DIBS for a
// payment. Failed attempts do not count against the refundable amount.
func (r *refundRepository) SumRefundedAmount(ctx context.Context, paymentID uuid.UUID) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int64

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM refunds
		WHERE payment_id = $1 AND state = $2
	`

	err := r.DB.QueryRowContext(dbCtx, query, paymentID, models.RefundStateDone).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum the refunds: %w", err)
	}

	return total, nil
}

func (r *refundRepository) ListRefundsOfPayment(ctx context.Context, paymentID uuid.UUID) ([]*models.Refund, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, payment_id, amount, state, gateway_status, gateway_result, gateway_message, created_at, executed_at
		FROM refunds
		WHERE payment_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list the refunds: %w", err)
	}

	defer rows.Close()

	var refunds []*models.Refund

	for rows.Next() {
		refund := &models.Refund{}

		err := rows.Scan(&refund.ID, &refund.PaymentID, &refund.Amount, &refund.State, &refund.GatewayStatus, &refund.GatewayResult, &refund.GatewayMessage, &refund.CreatedAt, &refund.ExecutedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan the refunds: %w", err)
		}

		refunds = append(refunds, refund)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return refunds, nil
}
