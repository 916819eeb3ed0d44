package models

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type RefundState string

const (
	RefundStateCreated RefundState = "created"
	RefundStateDone    RefundState = "done"
	RefundStateFailed  RefundState = "failed"
)
