package gateway

import (
	"github.com/lapakin/lapakin/internal/pkg/models"
	natspkg "github.com/lapakin/lapakin/internal/pkg/nats"
	nsqpkg "github.com/lapakin/lapakin/internal/pkg/nsq"
	"github.com/lapakin/lapakin/services/billing"
	gateway_http "github.com/lapakin/lapakin/services/billing/gateway/http"
	gateway_nats "github.com/lapakin/lapakin/services/billing/gateway/nats"
	gateway_nsq "github.com/lapakin/lapakin/services/billing/gateway/nsq"
	gateway_stripe "github.com/lapakin/lapakin/services/billing/gateway/stripe"
)

// BillingGW handles billing gateway operations across all transports
type BillingGW struct {
	stripeGateway *gateway_stripe.StripeGateway
	coreClient    *gateway_http.CoreClient
	natsGateway   *gateway_nats.NATSGateway
	nsqGateway    *gateway_nsq.NSQGateway
}

// NewBillingGW creates a gateway instance over the provider SDK, the core
// service HTTP client and the two message buses
func NewBillingGW(cfg *models.Config, natsClient *natspkg.Client, nsqProducer *nsqpkg.Producer) billing.BillingGW {
	return &BillingGW{
		stripeGateway: gateway_stripe.NewStripeGateway(cfg),
		coreClient:    gateway_http.NewCoreClient(cfg.Services.CoreServiceURL, &cfg.APIKey),
		natsGateway:   gateway_nats.NewNATSGateway(natsClient),
		nsqGateway:    gateway_nsq.NewNSQGateway(nsqProducer),
	}
}
