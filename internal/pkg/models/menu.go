package models

// MenuItem is a navigation registry entry. Roles lists the user roles allowed
// to see the entry.
type MenuItem struct {
	Label string   `json:"label"`
	Path  string   `json:"path"`
	Icon  string   `json:"icon"`
	Roles []string `json:"roles"`
}

// MenuEntry is a rendered menu item for one user: the registry entry minus the
// role list, plus the active flag for the path the browser is on.
type MenuEntry struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}
