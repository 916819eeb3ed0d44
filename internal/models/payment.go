package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID        uuid.UUID     `json:"id"`
	Organizer string        `json:"organizer"`
	Event     string        `json:"event"`
	OrderCode string        `json:"order_code"`
	LocalID   int           `json:"local_id"`
	Amount    int64         `json:"amount"` // minor units
	Currency  string        `json:"currency"`
	Status    PaymentStatus `json:"status"`
	Email     string        `json:"email,omitempty"`

	// Set once DIBS reports back.
	Transact   string `json:"transact,omitempty"`
	PayType    string `json:"paytype,omitempty"`
	CardType   string `json:"card_type,omitempty"`
	Acquirer   string `json:"acquirer,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	TestMode   bool   `json:"test_mode"`

	// OrderSecret gates the payer-facing return page.
	OrderSecret string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RefundableAmount is what is left to refund on a succeeded payment.
func (p *Payment) RefundableAmount(refunded int64) int64 {
	return p.Amount - refunded
}

// GatewayOrderID builds the DIBS order id. Order codes are only unique
// within an event, so the organizer and event slugs are folded in, and the
// local id distinguishes retried payments on the same order.
func (p *Payment) GatewayOrderID() string {
	return fmt.Sprintf("%s/%s/%s/%d", p.Organizer, p.Event, p.OrderCode, p.LocalID)
}

// Order codes only contain alphanumeric characters, so slashes split the id
// unambiguously.
var gatewayOrderIDPattern = regexp.MustCompile(`^([^/]+)/([^/]+)/([^/]+)/([0-9]+)$`)

// ParseGatewayOrderID splits a DIBS order id back into its components.
func ParseGatewayOrderID(orderID string) (organizer, event, orderCode string, localID int, err error) {
	match := gatewayOrderIDPattern.FindStringSubmatch(orderID)
	if match == nil {
		return "", "", "", 0, fmt.Errorf("malformed gateway order id %q", orderID)
	}

	if _, err := fmt.Sscanf(match[4], "%d", &localID); err != nil {
		return "", "", "", 0, fmt.Errorf("malformed gateway order id %q: %w", orderID, err)
	}

	return match[1], match[2], match[3], localID, nil
}

type InitiatePaymentRequest struct {
	OrderCode string `json:"order_code" validate:"required,alphanum"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Currency  string `json:"currency" validate:"required,len=3,uppercase"`
	Email     string `json:"email" validate:"omitempty,email"`
	OrderText string `json:"order_text,omitempty" validate:"omitempty,max=200"`
}

type InitiatePaymentResponse struct {
	Payment     *Payment `json:"payment"`
	CheckoutURL string   `json:"checkout_url"`
}

// CheckoutSession is the signed form stashed between initiation and the
// payer's browser fetching the checkout page.
type CheckoutSession struct {
	PaymentID uuid.UUID         `json:"payment_id"`
	Action    string            `json:"action"`
	Fields    map[string]string `json:"fields"`
}
