package ports

import (
	"context"

	"github.com/99minutos/wms-console/internal/core/domain"
)

// SummaryPart is a single text fragment of a request or candidate.
type SummaryPart struct {
	Text string `json:"text"`
}

// SummaryContent groups parts in the endpoint's content envelope.
type SummaryContent struct {
	Parts []SummaryPart `json:"parts"`
}

// SummaryRequest is the JSON body posted to the summary endpoint.
type SummaryRequest struct {
	Contents []SummaryContent `json:"contents"`
	Tools    []map[string]any `json:"tools,omitempty"`
}

// SummaryCandidate is one generated answer.
type SummaryCandidate struct {
	Content *SummaryContent `json:"content,omitempty"`
}

// SummaryResponse is the decoded endpoint answer.
type SummaryResponse struct {
	Candidates []SummaryCandidate `json:"candidates"`
}

// FirstText returns candidates[0].content.parts[0].text when present.
func (r *SummaryResponse) FirstText() (string, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return "", false
	}
	c := r.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 || c.Parts[0].Text == "" {
		return "", false
	}
	return c.Parts[0].Text, true
}

// SummaryTransport delivers one request to the summary endpoint.
// Errors wrap domain.ErrRateLimited for throttled responses and
// domain.ErrSummaryUnavailable for everything else.
type SummaryTransport interface {
	Generate(ctx context.Context, req SummaryRequest) (*SummaryResponse, error)
}

// SummaryFetcher produces the dashboard summary. It never fails: every
// failure path resolves to a displayable result.
type SummaryFetcher interface {
	FetchSummary(ctx context.Context) domain.SummaryResult
}

// SummaryJob is one dashboard activation's fetch. Run must honour ctx.
type SummaryJob struct {
	SessionID string
	Ctx       context.Context
	Run       func(ctx context.Context)
}

// SummaryScheduler runs summary jobs off the caller's goroutine. Jobs carry
// no ordering guarantee; callers discard superseded results themselves.
// Schedule reports false when the job was dropped.
type SummaryScheduler interface {
	Schedule(job SummaryJob) bool
}
