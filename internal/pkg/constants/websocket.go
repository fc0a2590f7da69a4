package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Billing events pushed to the portal
	EventSubscriptionUpdated  = "subscription_updated"
	EventSubscriptionCanceled = "subscription_canceled"
	EventPayoutSettled        = "payout_settled"
	EventAccountUpdated       = "account_updated"

	// Order events pushed to the portal
	EventOrderStatus = "order_status"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)

// ErrorSeverity controls how much error detail is disclosed to the client
type ErrorSeverity int

const (
	// ErrorSeverityClient errors are caused by client input and returned verbatim
	ErrorSeverityClient ErrorSeverity = iota
	// ErrorSeverityServer errors are internal and replaced with a generic message
	ErrorSeverityServer
	// ErrorSeveritySecurity errors reveal nothing beyond access denial
	ErrorSeveritySecurity
)

func (s ErrorSeverity) String() string {
	switch s {
	case ErrorSeverityClient:
		return "client"
	case ErrorSeverityServer:
		return "server"
	case ErrorSeveritySecurity:
		return "security"
	default:
		return "unknown"
	}
}
