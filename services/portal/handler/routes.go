package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// GetJWTMiddleware returns the JWT middleware for the user-facing portal
// routes. The claims are re-parsed into plain context values so handlers
// never touch the token type directly.
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if len(authHeader) <= 7 || authHeader[:7] != "Bearer " {
				return
			}

			token, err := jwt.Parse(authHeader[7:], func(token *jwt.Token) (interface{}, error) {
				return []byte(h.cfg.JWT.Secret), nil
			})
			if err != nil || !token.Valid {
				return
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if orgID, exists := claims["org_id"]; exists {
					c.Set("org_id", orgID)
				}
				if email, exists := claims["email"]; exists {
					c.Set("email", email)
				}
				if role, exists := claims["role"]; exists {
					c.Set("role", role)
				}
			}
		},
	})
}

// RegisterRoutes registers all portal routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// User-facing routes with JWT middleware
	portalGroup := e.Group("/portal", h.GetJWTMiddleware())
	portalGroup.GET("/menu", h.menuHTTP.GetMenu)

	// WebSocket endpoint; the manager validates the token during the
	// handshake, from the Authorization header or the token query parameter
	e.GET("/ws", h.portalWS.HandleWebSocket)
}
