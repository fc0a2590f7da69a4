package usecase

import (
	"strings"

	"github.com/lapakin/lapakin/internal/pkg/constants"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// defaultMenu is the navigation registry. Order here is render order in the
// application shell.
var defaultMenu = []models.MenuItem{
	{
		Label: "Dashboard",
		Path:  "/",
		Icon:  "home",
		Roles: []string{constants.RoleOwner, constants.RoleAdmin, constants.RoleFinance, constants.RoleStaff},
	},
	{
		Label: "Orders",
		Path:  "/orders",
		Icon:  "shopping-cart",
		Roles: []string{constants.RoleOwner, constants.RoleAdmin, constants.RoleStaff},
	},
	{
		Label: "Products",
		Path:  "/products",
		Icon:  "package",
		Roles: []string{constants.RoleOwner, constants.RoleAdmin, constants.RoleStaff},
	},
	{
		Label: "Billing",
		Path:  "/billing",
		Icon:  "credit-card",
		Roles: []string{constants.RoleOwner, constants.RoleAdmin, constants.RoleFinance},
	},
	{
		Label: "Payouts",
		Path:  "/payouts",
		Icon:  "banknote",
		Roles: []string{constants.RoleOwner, constants.RoleFinance},
	},
	{
		Label: "Team",
		Path:  "/team",
		Icon:  "users",
		Roles: []string{constants.RoleOwner, constants.RoleAdmin},
	},
	{
		Label: "Settings",
		Path:  "/settings",
		Icon:  "settings",
		Roles: []string{constants.RoleOwner, constants.RoleAdmin},
	},
}

// GetMenu returns the registry entries whose role list contains role, in
// registry order. currentPath is the path the browser is on and drives the
// active flag.
func (uc *PortalUC) GetMenu(role, currentPath string) []models.MenuEntry {
	entries := make([]models.MenuEntry, 0, len(uc.menu))
	for _, item := range uc.menu {
		if !roleAllowed(item.Roles, role) {
			continue
		}
		entries = append(entries, models.MenuEntry{
			Label:  item.Label,
			Path:   item.Path,
			Icon:   item.Icon,
			Active: isPathActive(item.Path, currentPath),
		})
	}
	return entries
}

func roleAllowed(roles []string, role string) bool {
	for _, allowed := range roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// isPathActive reports whether a menu entry is active for the current path.
// The root entry only matches exactly; every other entry matches itself and
// its sub-paths on segment boundaries, so /billing is active on
// /billing/invoices but not on /billingx.
func isPathActive(menuPath, currentPath string) bool {
	if menuPath == "/" {
		return currentPath == "/"
	}
	return currentPath == menuPath || strings.HasPrefix(currentPath, menuPath+"/")
}
