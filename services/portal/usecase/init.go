package usecase

import (
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// PortalUC implements the portal usecase interface
type PortalUC struct {
	menu []models.MenuItem
}

// NewPortalUC creates a new portal usecase serving the default navigation
// registry
func NewPortalUC() *PortalUC {
	return &PortalUC{
		menu: defaultMenu,
	}
}
