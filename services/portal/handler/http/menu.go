package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	nrpkg "github.com/lapakin/lapakin/internal/pkg/newrelic"
	"github.com/lapakin/lapakin/internal/utils"
	"github.com/lapakin/lapakin/services/portal"
)

// MenuHandler serves the navigation menu for the application shell
type MenuHandler struct {
	portalUC portal.PortalUC
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(portalUC portal.PortalUC) *MenuHandler {
	return &MenuHandler{portalUC: portalUC}
}

// GetMenu returns the navigation entries for the caller's role. The JWT
// middleware has already validated the token and stashed the claims on the
// echo context.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Portal.GetMenu")

	roleRaw := c.Get("role")
	if roleRaw == nil {
		return utils.UnauthorizedResponse(c, "Missing role in token")
	}
	role := fmt.Sprintf("%v", roleRaw)

	entries := h.portalUC.GetMenu(role, c.QueryParam("path"))
	return utils.SuccessResponse(c, http.StatusOK, "Menu retrieved successfully", entries)
}
