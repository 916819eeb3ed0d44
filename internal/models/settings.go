package models

import "time"

// EventSettings is the per-event merchant configuration, the counterpart of
// the provider settings form in the host platform's control panel.
type EventSettings struct {
	Organizer string `json:"organizer"`
	Event     string `json:"event"`

	MerchantID string `json:"merchant_id" validate:"required,min=2,max=16"`
	TestMode   bool   `json:"test_mode"`
	CaptureNow bool   `json:"capture_now"`

	// The two keys for MD5-control of payments, 32 characters each.
	MD5Key1 string `json:"md5_key1" validate:"required,len=32,hexadecimal"`
	MD5Key2 string `json:"md5_key2" validate:"required,len=32,hexadecimal"`

	// Payment window skin.
	Decorator string `json:"decorator" validate:"omitempty,oneof=default basal rich responsive"`

	// API user for refunds and captures. Optional; without it refunds are
	// reported as unsupported.
	APIUser     string `json:"api_user,omitempty"`
	APIPassword string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateSettingsRequest struct {
	MerchantID  string `json:"merchant_id" validate:"required,min=2,max=16"`
	TestMode    bool   `json:"test_mode"`
	CaptureNow  bool   `json:"capture_now"`
	MD5Key1     string `json:"md5_key1" validate:"required,len=32,hexadecimal"`
	MD5Key2     string `json:"md5_key2" validate:"required,len=32,hexadecimal"`
	Decorator   string `json:"decorator" validate:"omitempty,oneof=default basal rich responsive"`
	APIUser     string `json:"api_user,omitempty"`
	APIPassword string `json:"api_password,omitempty"`
}

type SettingsResponse struct {
	Settings        *EventSettings `json:"settings"`
	RefundSupported bool           `json:"refund_supported"`
}
