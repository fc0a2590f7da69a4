package constants

// NATS Subjects
const (
	// Billing Service
	SubjectSubscriptionUpdated = "billing.subscription.updated"
	SubjectSubscriptionCanceled = "billing.subscription.canceled"
	SubjectPayoutSettled        = "billing.payout.settled"
	SubjectAccountUpdated       = "billing.account.updated"

	// Wildcard the portal subscribes with
	SubjectBillingAll = "billing.>"
)

// JetStream stream names
const (
	StreamBilling = "BILLING"
)
