package domain

// ViewID identifies a navigable section of the console.
type ViewID string

const (
	ViewLogin      ViewID = "login"
	ViewDashboard  ViewID = "dashboard"
	ViewInventory  ViewID = "inventory"
	ViewOrders     ViewID = "orders"
	ViewOperations ViewID = "operations"
	ViewReports    ViewID = "reports"
	ViewAdmin      ViewID = "admin"
)

// DefaultView is where every successful authentication lands.
const DefaultView = ViewDashboard

// NavItem is a navigable section with its role allow-list.
type NavItem struct {
	ID           ViewID `json:"id"`
	Label        string `json:"label"`
	AllowedRoles []Role `json:"allowed_roles"`
}

// Allows reports whether role may open the item.
func (n NavItem) Allows(role Role) bool {
	for _, r := range n.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

var allRoles = []Role{RoleAdmin, RoleManager, RoleStaff}

var navCatalog = []NavItem{
	{ID: ViewDashboard, Label: "Dashboard", AllowedRoles: allRoles},
	{ID: ViewInventory, Label: "Inventory Management", AllowedRoles: allRoles},
	{ID: ViewOrders, Label: "Order Management", AllowedRoles: allRoles},
	{ID: ViewOperations, Label: "Warehouse Operations", AllowedRoles: allRoles},
	{ID: ViewReports, Label: "Reports & Analytics", AllowedRoles: []Role{RoleAdmin, RoleManager}},
	{ID: ViewAdmin, Label: "User Management", AllowedRoles: []Role{RoleAdmin}},
}

// NavCatalog returns a copy of the full navigation catalog in display order.
func NavCatalog() []NavItem {
	out := make([]NavItem, len(navCatalog))
	for i, item := range navCatalog {
		item.AllowedRoles = append([]Role(nil), item.AllowedRoles...)
		out[i] = item
	}
	return out
}

// LookupNavItem returns the catalog entry for id.
func LookupNavItem(id ViewID) (NavItem, bool) {
	for _, item := range NavCatalog() {
		if item.ID == id {
			return item, true
		}
	}
	return NavItem{}, false
}

// VisibleNavItems filters the catalog down to the items role may open.
// RoleNone sees nothing.
func VisibleNavItems(role Role) []NavItem {
	visible := make([]NavItem, 0, len(navCatalog))
	for _, item := range NavCatalog() {
		if item.Allows(role) {
			visible = append(visible, item)
		}
	}
	return visible
}

// CanAccess reports whether role may open view. Unknown views are never accessible.
func CanAccess(role Role, view ViewID) bool {
	item, ok := LookupNavItem(view)
	return ok && item.Allows(role)
}
