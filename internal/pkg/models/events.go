package models

import (
	"time"
)

// Order statuses reported to the order service
const (
	OrderStatusPaid          = "paid"
	OrderStatusPaymentFailed = "payment_failed"
	OrderStatusExpired       = "expired"
)

// BillingEvent is published on the event bus whenever billing state changes.
// ID doubles as the broker dedup key, so redelivered source events do not fan
// out twice. Exactly one of the optional payloads is set depending on Type.
type BillingEvent struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	OrgID        string               `json:"org_id"`
	OccurredAt   time.Time            `json:"occurred_at"`
	Subscription *OrgSubscription     `json:"subscription,omitempty"`
	Payout       *Payout              `json:"payout,omitempty"`
	Account      *AccountStatusUpdate `json:"account,omitempty"`
}

// OrderStatusMessage tells the order service to mark an order's status. OrgID
// lets the portal route the update to the selling organization's clients.
type OrderStatusMessage struct {
	OrderID    string    `json:"order_id"`
	OrgID      string    `json:"org_id,omitempty"`
	Status     string    `json:"status"`
	PaymentRef string    `json:"payment_ref,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
