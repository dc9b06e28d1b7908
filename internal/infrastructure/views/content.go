package views

// Content payloads carried in domain.View.Content, one per view.

type DashboardContent struct {
	KPITitle      string          `json:"kpi_title"`
	SummaryStatus string          `json:"summary_status"`
	SummarySource string          `json:"summary_source,omitempty"`
	KPILines      []string        `json:"kpi_lines"`
	Note          string          `json:"note,omitempty"`
	Alerts        AlertsPanel     `json:"alerts"`
	Analytics     PlaceholderCard `json:"analytics"`
}

type AlertsPanel struct {
	Title string  `json:"title"`
	Items []Alert `json:"items"`
}

type Alert struct {
	Level string `json:"level"`
	Label string `json:"label"`
}

type PlaceholderCard struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Placeholder string `json:"placeholder"`
}

type InventoryContent struct {
	Title             string        `json:"title"`
	SearchPlaceholder string        `json:"search_placeholder"`
	Products          []ProductItem `json:"products"`
}

type ProductItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

type OrdersContent struct {
	Title  string      `json:"title"`
	Orders []OrderItem `json:"orders"`
}

type OrderItem struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
	Tracking string `json:"tracking"`
}

type OperationsContent struct {
	Cards    []ActionCard    `json:"cards"`
	Movement PlaceholderCard `json:"movement"`
}

type ActionCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type ReportsContent struct {
	Reports []ActionCard `json:"reports"`
}

type AdminContent struct {
	Title     string        `json:"title"`
	AddAction string        `json:"add_action"`
	Users     []UserAccount `json:"users"`
}

type UserAccount struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginContent struct {
	LoginTitle     string   `json:"login_title"`
	LoginPrompt    string   `json:"login_prompt"`
	LoginHint      string   `json:"login_hint"`
	RegisterTitle  string   `json:"register_title"`
	RegisterPrompt string   `json:"register_prompt"`
	RegisterHint   string   `json:"register_hint"`
	Positions      []string `json:"positions"`
}
