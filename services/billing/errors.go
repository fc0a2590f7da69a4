package billing

import "errors"

// Domain errors callers can branch on with errors.Is
var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrUnknownPlan          = errors.New("unknown plan")
	ErrNoSubscription       = errors.New("organization has no subscription")
	ErrNoConnectedAccount   = errors.New("organization has no connected account")
	ErrPayoutsDisabled      = errors.New("connected account cannot receive payouts")
)
