package handler

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/lapakin/lapakin/internal/pkg/models"
	wspkg "github.com/lapakin/lapakin/internal/pkg/websocket"
	"github.com/lapakin/lapakin/services/portal"
	httpHandler "github.com/lapakin/lapakin/services/portal/handler/http"
	natsHandler "github.com/lapakin/lapakin/services/portal/handler/nats"
	nsqHandler "github.com/lapakin/lapakin/services/portal/handler/nsq"
	wsHandler "github.com/lapakin/lapakin/services/portal/handler/websocket"

	natspkg "github.com/lapakin/lapakin/internal/pkg/nats"
)

// Handler combines all protocol handlers for the portal service
type Handler struct {
	menuHTTP    *httpHandler.MenuHandler
	portalWS    *wsHandler.WSHandler
	billingNATS *natsHandler.NatsHandler
	orderNSQ    *nsqHandler.OrderStatusHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	cfg *models.Config,
	portalUC portal.PortalUC,
	wsManager *wspkg.Manager,
	natsClient *natspkg.Client,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		menuHTTP:    httpHandler.NewMenuHandler(portalUC),
		portalWS:    wsHandler.NewWSHandler(wsManager),
		billingNATS: natsHandler.NewNatsHandler(wsManager, natsClient, nrApp),
		orderNSQ:    nsqHandler.NewOrderStatusHandler(wsManager, cfg, nrApp),
		cfg:         cfg,
	}
}

// InitConsumers starts the JetStream and NSQ consumers that feed the
// WebSocket push channel
func (h *Handler) InitConsumers() error {
	if err := h.billingNATS.InitConsumers(); err != nil {
		return err
	}

	if err := h.orderNSQ.Start(); err != nil {
		h.billingNATS.Stop()
		return err
	}

	return nil
}

// StopConsumers stops the event consumers
func (h *Handler) StopConsumers() {
	h.billingNATS.Stop()
	h.orderNSQ.Stop()
}
