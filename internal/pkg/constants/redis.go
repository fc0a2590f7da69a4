package constants

// Redis key formats
const (
	// Billing Service
	KeyWebhookEvent    = "billing:event:%s"    // Format: billing:event:{event_id}
	KeyCheckoutSession = "billing:checkout:%s" // Format: billing:checkout:{order_id}
	KeyCustomerOrg     = "billing:customer:%s" // Format: billing:customer:{customer_id}
)
