package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapakin/lapakin/internal/pkg/constants"
)

func menuLabels(uc *PortalUC, role, path string) []string {
	entries := uc.GetMenu(role, path)
	labels := make([]string, 0, len(entries))
	for _, entry := range entries {
		labels = append(labels, entry.Label)
	}
	return labels
}

func TestGetMenu_OwnerSeesAllEntries(t *testing.T) {
	uc := NewPortalUC()

	labels := menuLabels(uc, constants.RoleOwner, "/")

	assert.Equal(t, []string{
		"Dashboard", "Orders", "Products", "Billing", "Payouts", "Team", "Settings",
	}, labels)
}

func TestGetMenu_RoleFiltering(t *testing.T) {
	uc := NewPortalUC()

	tests := []struct {
		name   string
		role   string
		labels []string
	}{
		{
			name:   "admin",
			role:   constants.RoleAdmin,
			labels: []string{"Dashboard", "Orders", "Products", "Billing", "Team", "Settings"},
		},
		{
			name:   "finance",
			role:   constants.RoleFinance,
			labels: []string{"Dashboard", "Billing", "Payouts"},
		},
		{
			name:   "staff",
			role:   constants.RoleStaff,
			labels: []string{"Dashboard", "Orders", "Products"},
		},
		{
			name:   "unknown role",
			role:   "intern",
			labels: []string{},
		},
		{
			name:   "empty role",
			role:   "",
			labels: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.labels, menuLabels(uc, tt.role, "/"))
		})
	}
}

func TestGetMenu_ActiveFlag(t *testing.T) {
	uc := NewPortalUC()

	tests := []struct {
		name        string
		currentPath string
		active      string
	}{
		{name: "root exact", currentPath: "/", active: "Dashboard"},
		{name: "section exact", currentPath: "/billing", active: "Billing"},
		{name: "section sub-path", currentPath: "/billing/invoices", active: "Billing"},
		{name: "deep sub-path", currentPath: "/payouts/po-1/details", active: "Payouts"},
		{name: "trailing slash", currentPath: "/orders/", active: "Orders"},
		{name: "prefix without boundary", currentPath: "/billingx", active: ""},
		{name: "unknown path", currentPath: "/reports", active: ""},
		{name: "empty path", currentPath: "", active: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := uc.GetMenu(constants.RoleOwner, tt.currentPath)
			require.NotEmpty(t, entries)

			var active []string
			for _, entry := range entries {
				if entry.Active {
					active = append(active, entry.Label)
				}
			}

			if tt.active == "" {
				assert.Empty(t, active)
				return
			}
			assert.Equal(t, []string{tt.active}, active)
		})
	}
}

func TestGetMenu_RootNotActiveOnSubPaths(t *testing.T) {
	uc := NewPortalUC()

	entries := uc.GetMenu(constants.RoleOwner, "/orders")

	for _, entry := range entries {
		if entry.Path == "/" {
			assert.False(t, entry.Active, "root entry must only be active on the root path")
		}
	}
}

func TestIsPathActive(t *testing.T) {
	tests := []struct {
		name        string
		menuPath    string
		currentPath string
		want        bool
	}{
		{name: "root on root", menuPath: "/", currentPath: "/", want: true},
		{name: "root on section", menuPath: "/", currentPath: "/billing", want: false},
		{name: "exact section", menuPath: "/billing", currentPath: "/billing", want: true},
		{name: "segment boundary", menuPath: "/billing", currentPath: "/billing/invoices", want: true},
		{name: "no boundary", menuPath: "/billing", currentPath: "/billingx", want: false},
		{name: "shorter current", menuPath: "/billing", currentPath: "/bill", want: false},
		{name: "empty current", menuPath: "/billing", currentPath: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPathActive(tt.menuPath, tt.currentPath))
		})
	}
}
