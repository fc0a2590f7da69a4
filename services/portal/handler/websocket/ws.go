package websocket

import (
	"fmt"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/lapakin/lapakin/internal/pkg/constants"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	wspkg "github.com/lapakin/lapakin/internal/pkg/websocket"
	"github.com/lapakin/lapakin/internal/utils"
)

// WSHandler upgrades portal connections and keeps them registered with the
// manager for the lifetime of the socket. The portal socket is push-only
// apart from keepalive: billing and order events arrive via broadcasts, the
// client only ever sends pings.
type WSHandler struct {
	manager *wspkg.Manager
}

// NewWSHandler creates a new portal WebSocket handler
func NewWSHandler(manager *wspkg.Manager) *WSHandler {
	return &WSHandler{manager: manager}
}

// HandleWebSocket authenticates and upgrades the request, then serves the
// client until it disconnects
func (h *WSHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

func (h *WSHandler) serveClient(client *models.WebSocketClient) error {
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client)

	logger.Info("Portal client connected",
		logger.String("org_id", client.OrgID.String()),
		logger.String("email", utils.MaskEmail(client.Email)),
		logger.String("role", client.Role),
		logger.Int("org_connections", h.manager.OrgClientCount(client.OrgID)))

	for {
		var msg models.WSMessage
		if err := client.Conn.ReadJSON(&msg); err != nil {
			if gorilla.IsUnexpectedCloseError(err, gorilla.CloseNormalClosure, gorilla.CloseGoingAway) {
				logger.Warn("Portal client closed unexpectedly",
					logger.String("org_id", client.OrgID.String()),
					logger.String("email", utils.MaskEmail(client.Email)),
					logger.Err(err))
			} else {
				logger.Info("Portal client disconnected",
					logger.String("org_id", client.OrgID.String()),
					logger.String("email", utils.MaskEmail(client.Email)))
			}
			return nil
		}

		if err := h.handleMessage(client, &msg); err != nil {
			logger.Error("Error handling portal message",
				logger.String("org_id", client.OrgID.String()),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

// handleMessage processes a single client message
func (h *WSHandler) handleMessage(client *models.WebSocketClient, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		// Echo the payload back so clients can measure round trips
		return h.manager.SendMessage(client, constants.EventPong, msg.Data)
	default:
		unknownEventErr := fmt.Errorf("unknown event type: %s", msg.Event)
		return h.manager.SendCategorizedError(client, unknownEventErr, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	}
}
