package views

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
)

// MissingKeyNote is shown under the KPI panel when no summary endpoint is configured.
const MissingKeyNote = "Note: API_KEY is missing. Mock data on display."

type header struct {
	title       string
	description string
}

var headers = map[domain.ViewID]header{
	domain.ViewLogin:      {"WMS Secure Login", "Enter your credentials to access the system."},
	domain.ViewDashboard:  {"WMS Dashboard", "Real-time status, key metrics, and immediate alerts."},
	domain.ViewInventory:  {"Inventory Control", "Manage product details, stock levels, and locations."},
	domain.ViewOrders:     {"Order & Shipment Management", "Record, process, and track customer orders from confirmation to delivery."},
	domain.ViewOperations: {"Warehouse Operations", "Manage inbound receiving, outbound picking, and real-time movement."},
	domain.ViewReports:    {"Reports & Analytics", "Generate detailed reports and analyze warehouse performance."},
	domain.ViewAdmin:      {"User & Access Management", "Create, update, and manage user roles and accounts."},
}

// Catalog renders the read-only mock content of every view.
type Catalog struct {
	summaryConfigured bool
	trackingNumber    func() string
}

// NewCatalog returns a Catalog. summaryConfigured controls the missing-key
// note on the dashboard.
func NewCatalog(summaryConfigured bool) *Catalog {
	return &Catalog{summaryConfigured: summaryConfigured, trackingNumber: randomTrackingNumber}
}

var _ ports.ViewRenderer = (*Catalog)(nil)

func (c *Catalog) Render(view domain.ViewID, role domain.Role, summary domain.SummaryState) (*domain.View, error) {
	h, ok := headers[view]
	if !ok {
		return nil, fmt.Errorf("no renderer for view %q", view)
	}

	v := &domain.View{ID: view, Title: h.title, Description: h.description, Role: role}
	switch view {
	case domain.ViewLogin:
		v.Content = loginContent()
	case domain.ViewDashboard:
		v.Content = c.dashboardContent(summary)
	case domain.ViewInventory:
		v.Content = inventoryContent()
	case domain.ViewOrders:
		v.Content = c.ordersContent()
	case domain.ViewOperations:
		v.Content = operationsContent()
	case domain.ViewReports:
		v.Content = reportsContent()
	case domain.ViewAdmin:
		v.Content = adminContent()
	}
	return v, nil
}

func (c *Catalog) dashboardContent(summary domain.SummaryState) DashboardContent {
	out := DashboardContent{
		KPITitle:      "Key Performance Indicators (KPIs)",
		SummaryStatus: string(summary.Status),
		KPILines:      kpiLines(summary.DisplayText()),
		Alerts: AlertsPanel{
			Title: "Notifications & Alerts",
			Items: []Alert{
				{Level: "critical", Label: "Low Stocks"},
				{Level: "warning", Label: "Delays"},
				{Level: "info", Label: "Reminders"},
			},
		},
		Analytics: PlaceholderCard{
			Title:       "Visual Analytics",
			Placeholder: "[Placeholder for Charts: Inventory by Category, Fulfillment Trend]",
		},
	}
	if summary.Result != nil {
		out.SummarySource = string(summary.Result.Source)
	}
	if !c.summaryConfigured {
		out.Note = MissingKeyNote
	}
	return out
}

// kpiLines splits the summary into display lines, trimming trailing blanks.
func kpiLines(text string) []string {
	parts := strings.Split(text, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

func inventoryContent() InventoryContent {
	products := make([]ProductItem, 0, 8)
	for i := 1; i <= 8; i++ {
		status := "In Stock"
		if i%3 == 0 {
			status = "Low Stock"
		}
		products = append(products, ProductItem{
			ID:       fmt.Sprintf("PROD-%d", 1000+i),
			Name:     fmt.Sprintf("Widget Alpha %d", i),
			Quantity: 150 - i*10,
			Location: fmt.Sprintf("Aisle-0%d / Shelf-C", i),
			Status:   status,
		})
	}
	return InventoryContent{
		Title:             "Product Catalog (CRUD & Search)",
		SearchPlaceholder: "Search by ID, Name, or Category",
		Products:          products,
	}
}

func (c *Catalog) ordersContent() OrdersContent {
	orders := make([]OrderItem, 0, 5)
	for id := 101; id <= 105; id++ {
		status := "Dispatched"
		if id%2 == 0 {
			status = "In Picking"
		}
		orders = append(orders, OrderItem{
			ID:       fmt.Sprintf("ORD-%d", id),
			Customer: fmt.Sprintf("Customer %d Corp.", id),
			Status:   status,
			Tracking: c.trackingNumber(),
		})
	}
	return OrdersContent{Title: "Customer Orders List", Orders: orders}
}

func randomTrackingNumber() string {
	return fmt.Sprintf("TRK-%d", 10000+rand.Intn(90000))
}

func operationsContent() OperationsContent {
	return OperationsContent{
		Cards: []ActionCard{
			{
				Title:       "Inbound Receiving",
				Description: "System records product receipt, updates inventory, and facilitates location assignment.",
				Action:      "Start Receiving",
			},
			{
				Title:       "Outbound Fulfillment",
				Description: "Supports picking, packing, and shipping processes. Optimizes retrieval paths.",
				Action:      "Process Orders",
			},
		},
		Movement: PlaceholderCard{
			Title:       "Product Movement Tracking",
			Description: "Real-time recording of product movement to minimize delays and provide full traceability.",
			Placeholder: "[Placeholder: Live map of storage locations or movement timeline]",
		},
	}
}

func reportsContent() ReportsContent {
	return ReportsContent{Reports: []ActionCard{
		{Title: "Inventory Level Report", Description: "Current stock, value, and reorder status.", Action: "Generate Report"},
		{Title: "Product Movement History", Description: "Trace items by date, location, and personnel.", Action: "Generate Report"},
		{Title: "Transaction Summary", Description: "Detailed log of all receipt, transfer, and dispatch transactions.", Action: "Generate Report"},
	}}
}

func adminContent() AdminContent {
	roles := []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleStaff, domain.RoleStaff}
	users := make([]UserAccount, 0, len(roles))
	for i, r := range roles {
		users = append(users, UserAccount{
			Name:  fmt.Sprintf("User %d", i+1),
			Email: fmt.Sprintf("%s@%d.com", strings.ToLower(string(r)), i),
			Role:  string(r),
		})
	}
	return AdminContent{Title: "User Accounts (CRUD)", AddAction: "+ Add New User", Users: users}
}

func loginContent() LoginContent {
	positions := make([]string, 0, 3)
	for _, r := range domain.Roles() {
		positions = append(positions, string(r))
	}
	return LoginContent{
		LoginTitle:     "WMS Secure Login",
		LoginPrompt:    "Enter your credentials to access the system.",
		LoginHint:      "*This demo uses fixed login credentials (admin/manager/staff, pass: 123) or try the registration page.",
		RegisterTitle:  "WMS Account Registration",
		RegisterPrompt: "Enter your details to create your system access.",
		RegisterHint:   "*New accounts are simulated for this demo and grant immediate access.",
		Positions:      positions,
	}
}
