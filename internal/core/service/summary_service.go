package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
	"github.com/99minutos/wms-console/internal/pkg/metrics"
)

// SummaryService fetches the dashboard KPI summary from the optional endpoint.
// A nil transport means no endpoint is configured.
type SummaryService struct {
	transport ports.SummaryTransport
	policy    RetryPolicy
	sleep     SleepFunc
	log       zerolog.Logger
}

// NewSummaryService returns a SummaryService. transport may be nil.
func NewSummaryService(transport ports.SummaryTransport, policy RetryPolicy, log zerolog.Logger) *SummaryService {
	return &SummaryService{
		transport: transport,
		policy:    policy.normalized(),
		sleep:     sleepContext,
		log:       log,
	}
}

// WithSleep replaces the backoff sleeper. Used by tests to avoid real waits.
func (s *SummaryService) WithSleep(fn SleepFunc) *SummaryService {
	if fn != nil {
		s.sleep = fn
	}
	return s
}

// Configured reports whether an endpoint is wired.
func (s *SummaryService) Configured() bool {
	return s.transport != nil
}

// FetchSummary resolves the dashboard summary. It never fails.
func (s *SummaryService) FetchSummary(ctx context.Context) domain.SummaryResult {
	start := time.Now()

	var result domain.SummaryResult
	if s.transport == nil {
		result = domain.SummaryResult{Text: domain.MockSummaryText, Source: domain.SummarySourceMock}
	} else {
		result = s.fetch(ctx)
	}

	metrics.SummaryResultsTotal.WithLabelValues(string(result.Source)).Inc()
	metrics.SummaryFetchDuration.WithLabelValues(string(result.Source)).Observe(time.Since(start).Seconds())
	return result
}

func (s *SummaryService) fetch(ctx context.Context) domain.SummaryResult {
	req := newSummaryRequest(domain.SummaryPrompt)

	for attempt := 0; attempt < s.policy.MaxAttempts; attempt++ {
		resp, err := s.transport.Generate(ctx, req)
		if err == nil {
			metrics.SummaryAttemptsTotal.WithLabelValues("success").Inc()
			text, ok := resp.FirstText()
			if !ok {
				s.log.Warn().Int("attempt", attempt+1).Msg("summary response carried no text candidate")
				return domain.SummaryResult{Text: domain.PlaceholderSummaryText, Source: domain.SummarySourcePlaceholder}
			}
			return domain.SummaryResult{Text: text, Source: domain.SummarySourceRemote}
		}

		if errors.Is(err, domain.ErrRateLimited) && s.policy.CanRetry(attempt) {
			metrics.SummaryAttemptsTotal.WithLabelValues("rate_limited").Inc()
			wait := s.policy.Backoff(attempt)
			s.log.Debug().Int("attempt", attempt+1).Dur("backoff", wait).Msg("summary endpoint rate limited, backing off")
			if sleepErr := s.sleep(ctx, wait); sleepErr != nil {
				s.log.Debug().Err(sleepErr).Msg("summary fetch cancelled during backoff")
				return fallbackSummary()
			}
			continue
		}

		metrics.SummaryAttemptsTotal.WithLabelValues("failed").Inc()
		s.log.Warn().Err(err).Int("attempt", attempt+1).Msg("summary fetch failed, serving fallback")
		return fallbackSummary()
	}

	return fallbackSummary()
}

func fallbackSummary() domain.SummaryResult {
	return domain.SummaryResult{Text: domain.FallbackSummaryText, Source: domain.SummarySourceFallback}
}

func newSummaryRequest(prompt string) ports.SummaryRequest {
	return ports.SummaryRequest{
		Contents: []ports.SummaryContent{{Parts: []ports.SummaryPart{{Text: prompt}}}},
		Tools:    []map[string]any{{"google_search": map[string]any{}}},
	}
}
