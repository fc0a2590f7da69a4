package models

import (
	"time"
)

// Organization represents a merchant organization as the core service stores it
type Organization struct {
	ID                   string    `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	Email                string    `json:"email" db:"email"`
	Plan                 string    `json:"plan" db:"plan"`
	SubscriptionStatus   string    `json:"subscription_status" db:"subscription_status"`
	StripeCustomerID     string    `json:"stripe_customer_id" db:"stripe_customer_id"`
	StripeSubscriptionID string    `json:"stripe_subscription_id" db:"stripe_subscription_id"`
	StripeAccountID      string    `json:"stripe_account_id" db:"stripe_account_id"`
	AccountStatus        string    `json:"account_status" db:"account_status"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// OrgSubscription is the subscription state reported to the core service.
// Zero-valued fields other than OrgID are left unchanged by the core service,
// so status-only updates do not clobber the stored plan or period end.
type OrgSubscription struct {
	OrgID             string    `json:"org_id"`
	SubscriptionID    string    `json:"subscription_id"`
	Plan              string    `json:"plan"`
	Status            string    `json:"status"`
	CurrentPeriodEnd  time.Time `json:"current_period_end"`
	CancelAtPeriodEnd bool      `json:"cancel_at_period_end"`
}

// OrgPaymentIDs carries newly assigned provider identifiers for an organization.
// Empty fields are left unchanged by the core service.
type OrgPaymentIDs struct {
	OrgID      string `json:"org_id"`
	CustomerID string `json:"customer_id,omitempty"`
	AccountID  string `json:"account_id,omitempty"`
}

// AccountStatusUpdate is the connected-account state reported to the core service
type AccountStatusUpdate struct {
	OrgID            string `json:"org_id"`
	AccountID        string `json:"account_id"`
	Status           string `json:"status"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
}
