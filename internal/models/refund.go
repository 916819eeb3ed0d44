package models

import (
	"time"

	"github.com/google/uuid"
)

type Refund struct {
	ID        uuid.UUID   `json:"id"`
	PaymentID uuid.UUID   `json:"payment_id"`
	Amount    int64       `json:"amount"` // minor units
	State     RefundState `json:"state"`

	// Reply fields from refund.cgi.
	GatewayStatus  string `json:"gateway_status,omitempty"`
	GatewayResult  int    `json:"gateway_result"`
	GatewayMessage string `json:"gateway_message,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	ExecutedAt *time.Time `json:"executed_at,omitempty"`
}

type RefundRequest struct {
	// Amount of 0 means a full refund.
	Amount int64 `json:"amount" validate:"gte=0"`
}
