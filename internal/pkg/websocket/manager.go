package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/lapakin/lapakin/internal/pkg/constants"
	jwtpkg "github.com/lapakin/lapakin/internal/pkg/jwt"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/internal/utils"
)

// Manager tracks WebSocket connections grouped by organization. An
// organization can hold several connections at once, one per logged-in
// staff member or browser tab.
type Manager struct {
	sync.RWMutex
	clients  map[uuid.UUID]map[*models.WebSocketClient]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[uuid.UUID]map[*models.WebSocketClient]struct{}),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates the request, upgrades it and hands the
// connected client to handleClient. The connection is closed when
// handleClient returns.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	return handleClient(client)
}

// authenticateClient authenticates the WebSocket client using JWT. The token
// comes from the Authorization header, or from the token query parameter for
// browser clients that cannot set handshake headers.
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	tokenString := c.QueryParam("token")

	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		tokenString = parts[1]
	}

	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication token is required")
	}

	claims, err := jwtpkg.ValidateToken(tokenString, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	if claims.OrgID == uuid.Nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Token missing organization")
	}

	return &models.WebSocketClient{
		OrgID: claims.OrgID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// AddClient registers a connected client under its organization
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()

	group, exists := m.clients[client.OrgID]
	if !exists {
		group = make(map[*models.WebSocketClient]struct{})
		m.clients[client.OrgID] = group
	}
	group[client] = struct{}{}
}

// RemoveClient removes a client; the organization entry is dropped once its
// last connection is gone.
func (m *Manager) RemoveClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()

	group, exists := m.clients[client.OrgID]
	if !exists {
		return
	}

	delete(group, client)
	if len(group) == 0 {
		delete(m.clients, client.OrgID)
	}
}

// OrgClientCount returns the number of open connections for an organization
func (m *Manager) OrgClientCount(orgID uuid.UUID) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[orgID])
}

// ClientCount returns the total number of open connections
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()

	total := 0
	for _, group := range m.clients {
		total += len(group)
	}
	return total
}

// SendMessage sends an event message to a single client
func (m *Manager) SendMessage(client *models.WebSocketClient, event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return client.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(client *models.WebSocketClient, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// SendCategorizedError sends an error message based on severity level
func (m *Manager) SendCategorizedError(client *models.WebSocketClient, err error, code string, severity constants.ErrorSeverity) error {
	logger.Error("WebSocket operation failed",
		logger.String("org_id", client.OrgID.String()),
		logger.String("error_code", code),
		logger.String("severity", severity.String()),
		logger.Err(err))

	switch severity {
	case constants.ErrorSeverityClient:
		return m.SendErrorMessage(client, code, err.Error())
	case constants.ErrorSeveritySecurity:
		return m.SendErrorMessage(client, code, "Access denied")
	default:
		return m.SendErrorMessage(client, code, "Operation failed")
	}
}

// BroadcastToOrg sends an event message to every connection of an
// organization. A connection whose write fails, including writes that hit
// the write deadline, is dropped from the group and closed.
func (m *Manager) BroadcastToOrg(orgID uuid.UUID, event string, data interface{}) {
	m.RLock()
	group := make([]*models.WebSocketClient, 0, len(m.clients[orgID]))
	for client := range m.clients[orgID] {
		group = append(group, client)
	}
	m.RUnlock()

	if len(group) == 0 {
		return
	}

	logger.Debug("Broadcasting event to organization",
		logger.String("org_id", orgID.String()),
		logger.String("event", event),
		logger.Int("connections", len(group)))

	for _, client := range group {
		if err := m.SendMessage(client, event, data); err != nil {
			logger.Warn("Dropping client after failed write",
				logger.String("org_id", orgID.String()),
				logger.String("email", utils.MaskEmail(client.Email)),
				logger.Err(err))
			m.RemoveClient(client)
			if client.Conn != nil {
				client.Conn.Close()
			}
		}
	}
}
