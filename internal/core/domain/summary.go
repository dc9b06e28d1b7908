package domain

// SummarySource tells the dashboard where its summary text came from.
type SummarySource string

const (
	// SummarySourceMock: no endpoint configured, static text served.
	SummarySourceMock SummarySource = "mock"
	// SummarySourceRemote: text extracted from the endpoint response.
	SummarySourceRemote SummarySource = "remote"
	// SummarySourcePlaceholder: endpoint answered without a text candidate.
	SummarySourcePlaceholder SummarySource = "placeholder"
	// SummarySourceFallback: endpoint configured but unreachable.
	SummarySourceFallback SummarySource = "fallback"
)

const (
	MockSummaryText        = "Inventory\nOrder Rate\nTop Alert."
	FallbackSummaryText    = "Failed to fetch real-time analysis due to API error. Using mock data."
	PlaceholderSummaryText = "Analysis failed to load."
	LoadingSummaryText     = "Loading key metrics and alerts..."
)

// SummaryPrompt is the single prompt sent to the summary endpoint.
const SummaryPrompt = `Generate a concise summary of three key performance indicators (KPIs) for a modern warehouse management system dashboard: Inventory Accuracy, Order Fulfillment Rate, and Top Alert (e.g., "30 products below reorder point"). Format it for a manager's quick review.`

// SummaryResult is the text shown in the dashboard KPI panel. It is never cached.
type SummaryResult struct {
	Text   string        `json:"text"`
	Source SummarySource `json:"source"`
}

// SummaryStatus tracks a dashboard activation's fetch.
type SummaryStatus string

const (
	SummaryIdle    SummaryStatus = "idle"
	SummaryPending SummaryStatus = "pending"
	SummaryReady   SummaryStatus = "ready"
)

// SummaryState is the per-session view state of the KPI panel.
type SummaryState struct {
	Status SummaryStatus  `json:"status"`
	Result *SummaryResult `json:"result,omitempty"`
}

// DisplayText returns the text the panel shows for the current state.
func (s SummaryState) DisplayText() string {
	if s.Status == SummaryReady && s.Result != nil {
		return s.Result.Text
	}
	return LoadingSummaryText
}
