package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/tixbase/dibs-payment-service/internal/models"
	"github.com/tixbase/dibs-payment-service/internal/utils"
)

// IsUniqueViolation reports whether err is a Postgres unique_violation, such
// as two payments landing on the same (organizer, event, order_code,
// local_id).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	GetPaymentByGatewayOrder(ctx context.Context, organizer, event, orderCode string, localID int) (*models.Payment, error)
	NextLocalID(ctx context.Context, organizer, event, orderCode string) (int, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error
	RecordGatewayResult(ctx context.Context, payment *models.Payment) error
	ListPaymentsOfEvent(ctx context.Context, organizer, event string, page, size int) ([]*models.Payment, int, error)
}

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{DB: db}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO payments (id, organizer, event, order_code, local_id, amount, currency, status, email, test_mode, order_secret, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`

	_, err := r.DB.ExecContext(dbCtx, query, payment.ID, payment.Organizer, payment.Event, payment.OrderCode, payment.LocalID, payment.Amount, payment.Currency, payment.Status, payment.Email, payment.TestMode, payment.OrderSecret)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	payment := &models.Payment{}

	query := `
		SELECT id, organizer, event, order_code, local_id, amount, currency, status, email, transact, pay_type, card_type, acquirer, status_code, test_mode, order_secret, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&payment.ID, &payment.Organizer, &payment.Event, &payment.OrderCode, &payment.LocalID, &payment.Amount, &payment.Currency, &payment.Status, &payment.Email, &payment.Transact, &payment.PayType, &payment.CardType, &payment.Acquirer, &payment.StatusCode, &payment.TestMode, &payment.OrderSecret, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get the payment: %w", err)
	}

	return payment, nil
}

func (r *paymentRepository) GetPaymentByGatewayOrder(ctx context.Context, organizer, event, orderCode string, localID int) (*models.Payment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	payment := &models.Payment{}

	query := `
		SELECT id, organizer, event, order_code, local_id, amount, currency, status, email, transact, pay_type, card_type, acquirer, status_code, test_mode, order_secret, created_at, updated_at
		FROM payments
		WHERE organizer = $1 AND event = $2 AND order_code = $3 AND local_id = $4
	`

	err := r.DB.QueryRowContext(dbCtx, query, organizer, event, orderCode, localID).Scan(&payment.ID, &payment.Organizer, &payment.Event, &payment.OrderCode, &payment.LocalID, &payment.Amount, &payment.Currency, &payment.Status, &payment.Email, &payment.Transact, &payment.PayType, &payment.CardType, &payment.Acquirer, &payment.StatusCode, &payment.TestMode, &payment.OrderSecret, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get the payment: %w", err)
	}

	return payment, nil
}

// NextLocalID assigns the next attempt number for an order. Retried payments
// on the same order must produce distinct gateway order ids; the unique index
// over (organizer, event, order_code, local_id) turns a concurrent duplicate
// into an insert conflict, which the caller retries with a fresh id.
func (r *paymentRepository) NextLocalID(ctx context.Context, organizer, event, orderCode string) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var next int

	query := `
		SELECT COALESCE(MAX(local_id), 0) + 1
		FROM payments
		WHERE organizer = $1 AND event = $2 AND order_code = $3
	`

	err := r.DB.QueryRowContext(dbCtx, query, organizer, event, orderCode).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get the next local id: %w", err)
	}

	return next, nil
}

func (r *paymentRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE payments SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update the payment status: %w", err)
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

// RecordGatewayResult stores the callback outcome: the new status plus the
// transaction details DIBS reported.
func (r *paymentRepository) RecordGatewayResult(ctx context.Context, payment *models.Payment) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE payments SET status = $1, transact = $2, pay_type = $3, card_type = $4, acquirer = $5, status_code = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := r.DB.ExecContext(dbCtx, query, payment.Status, payment.Transact, payment.PayType, payment.CardType, payment.Acquirer, payment.StatusCode, time.Now(), payment.ID)
	if err != nil {
		return fmt.Errorf("failed to record the gateway result: %w", err)
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

func (r *paymentRepository) ListPaymentsOfEvent(ctx context.Context, organizer, event string, page, size int) ([]*models.Payment, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM payments WHERE organizer = $1 AND event = $2`

	err := r.DB.QueryRowContext(dbCtx, countQuery, organizer, event).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Offset
	offset := (page - 1) * size

	query := `
		SELECT id, organizer, event, order_code, local_id, amount, currency, status, email, transact, pay_type, card_type, acquirer, status_code, test_mode, order_secret, created_at, updated_at
		FROM payments
		WHERE organizer = $1 AND event = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.DB.QueryContext(dbCtx, query, organizer, event, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list the payments: %w", err)
	}

	defer rows.Close()

	var payments []*models.Payment

	for rows.Next() {
		payment := &models.Payment{}

		err := rows.Scan(&payment.ID, &payment.Organizer, &payment.Event, &payment.OrderCode, &payment.LocalID, &payment.Amount, &payment.Currency, &payment.Status, &payment.Email, &payment.Transact, &payment.PayType, &payment.CardType, &payment.Acquirer, &payment.StatusCode, &payment.TestMode, &payment.OrderSecret, &payment.CreatedAt, &payment.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan the payments: %w", err)
		}

		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}
