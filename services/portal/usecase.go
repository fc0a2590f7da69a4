package portal

import (
	"github.com/lapakin/lapakin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/lapakin/lapakin/services/portal PortalUC

// PortalUC represents the portal usecase interface
type PortalUC interface {
	// GetMenu returns the navigation entries visible to the given role, in
	// registry order, with the entry matching currentPath flagged active.
	GetMenu(role, currentPath string) []models.MenuEntry
}
