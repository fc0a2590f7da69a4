package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription statuses as stored on organizations
const (
	SubscriptionStatusActive     = "active"
	SubscriptionStatusTrialing   = "trialing"
	SubscriptionStatusPastDue    = "past_due"
	SubscriptionStatusCanceled   = "canceled"
	SubscriptionStatusIncomplete = "incomplete"
	SubscriptionStatusUnpaid     = "unpaid"
)

// Connected-account statuses as stored on organizations
const (
	AccountStatusPending    = "pending"
	AccountStatusRestricted = "restricted"
	AccountStatusActive     = "active"
)

// ConnectedAccountStatus maps provider capability flags onto the stored
// connected-account status: onboarding not finished means pending, finished
// but not fully enabled means restricted, fully enabled means active.
func ConnectedAccountStatus(chargesEnabled, payoutsEnabled, detailsSubmitted bool) string {
	switch {
	case !detailsSubmitted:
		return AccountStatusPending
	case chargesEnabled && payoutsEnabled:
		return AccountStatusActive
	default:
		return AccountStatusRestricted
	}
}

// Payout statuses in the billing ledger
const (
	PayoutStatusPending = "pending"
	PayoutStatusSettled = "settled"
	PayoutStatusFailed  = "failed"
)

// SubscriptionRequest is the payload to create a subscription for an organization
type SubscriptionRequest struct {
	OrgID string `json:"org_id"`
	Plan  string `json:"plan"`
}

// PlanChangeRequest is the payload to move an organization to another plan
type PlanChangeRequest struct {
	Plan string `json:"plan"`
}

// SubscriptionResult is the outcome of a subscription create or update.
// PortalURL is only set when a plan change could not be applied directly and
// the merchant has to finish the change through the billing portal.
type SubscriptionResult struct {
	SubscriptionID    string    `json:"subscription_id,omitempty"`
	OrgID             string    `json:"org_id"`
	Plan              string    `json:"plan,omitempty"`
	Status            string    `json:"status,omitempty"`
	CurrentPeriodEnd  time.Time `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool      `json:"cancel_at_period_end,omitempty"`
	ClientSecret      string    `json:"client_secret,omitempty"`
	PortalURL         string    `json:"portal_url,omitempty"`
}

// CheckoutRequest is the payload to start a hosted checkout for an order
type CheckoutRequest struct {
	OrderID     string `json:"order_id"`
	OrgID       string `json:"org_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
	BuyerEmail  string `json:"buyer_email,omitempty"`
}

// CheckoutSession is the hosted checkout handle returned to the caller
type CheckoutSession struct {
	SessionID string    `json:"session_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PortalRequest is the payload to generate a billing-portal URL
type PortalRequest struct {
	OrgID     string `json:"org_id"`
	ReturnURL string `json:"return_url,omitempty"`
}

// PortalSession is the billing-portal handle returned to the caller
type PortalSession struct {
	URL string `json:"url"`
}

// ConnectedAccount is the onboarding state of an organization's seller account
type ConnectedAccount struct {
	OrgID         string `json:"org_id"`
	AccountID     string `json:"account_id"`
	Status        string `json:"status"`
	OnboardingURL string `json:"onboarding_url,omitempty"`
}

// PayoutRequest is the payload to pay out funds to an organization's account
type PayoutRequest struct {
	OrgID     string `json:"org_id"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference,omitempty"`
}

// Payout is a ledger record of a transfer to a connected account
type Payout struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	OrgID       string     `json:"org_id" db:"org_id"`
	GrossAmount int64      `json:"gross_amount" db:"gross_amount"`
	FeeAmount   int64      `json:"fee_amount" db:"fee_amount"`
	NetAmount   int64      `json:"net_amount" db:"net_amount"`
	Currency    string     `json:"currency" db:"currency"`
	TransferID  string     `json:"transfer_id,omitempty" db:"transfer_id"`
	Status      string     `json:"status" db:"status"`
	Reference   string     `json:"reference,omitempty" db:"reference"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	SettledAt   *time.Time `json:"settled_at,omitempty" db:"settled_at"`
}

// BillingEventRecord is an audit row for a processed webhook event
type BillingEventRecord struct {
	ID         int64     `json:"id" db:"id"`
	EventID    string    `json:"event_id" db:"event_id"`
	EventType  string    `json:"event_type" db:"event_type"`
	OrgID      string    `json:"org_id,omitempty" db:"org_id"`
	Summary    string    `json:"summary,omitempty" db:"summary"`
	ReceivedAt time.Time `json:"received_at" db:"received_at"`
}
