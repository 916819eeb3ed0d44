package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification records one confirmation email attempt.
type Notification struct {
	ID           uuid.UUID          `json:"id"`
	PaymentID    uuid.UUID          `json:"payment_id"`
	Recipient    string             `json:"recipient"`
	Subject      string             `json:"subject"`
	Status       NotificationStatus `json:"status"`
	ErrorMessage string             `json:"error,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type EmailNotificationRequest struct {
	To          string   `json:"to" validate:"required,email"`
	Subject     string   `json:"subject" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	HTMLContent string   `json:"html_content,omitempty"`
	CC          []string `json:"cc,omitempty" validate:"omitempty,dive,email"`
	BCC         []string `json:"bcc,omitempty" validate:"omitempty,dive,email"`
}
