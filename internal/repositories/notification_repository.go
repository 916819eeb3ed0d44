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

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMessage string) error
	ListNotificationsOfPayment(ctx context.Context, paymentID uuid.UUID) ([]*models.Notification, error)
}

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO notifications (id, payment_id, recipient, subject, status, error_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	_, err := r.DB.ExecContext(dbCtx, query, notification.ID, notification.PaymentID, notification.Recipient, notification.Subject, notification.Status, notification.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

func (r *notificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMessage string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE notifications SET status = $1, error_message = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, errorMessage, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update the notification status: %w", err)
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

func (r *notificationRepository) ListNotificationsOfPayment(ctx context.Context, paymentID uuid.UUID) ([]*models.Notification, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, payment_id, recipient, subject, status, error_message, created_at, updated_at
		FROM notifications
		WHERE payment_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list the notifications: %w", err)
	}

	defer rows.Close()

	var notifications []*models.Notification

	for rows.Next() {
		notification := &models.Notification{}

		err := rows.Scan(&notification.ID, &notification.PaymentID, &notification.Recipient, &notification.Subject, &notification.Status, &notification.ErrorMessage, &notification.CreatedAt, &notification.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan the notifications: %w", err)
		}

		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
