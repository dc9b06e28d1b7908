package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
)

const (
	defaultTimeout = 15 * time.Second
	// maxErrorBody caps how much of a failed response is echoed into errors.
	maxErrorBody = 512
)

// HTTPTransport posts summary requests to a generateContent style endpoint.
// The API key travels as the "key" query parameter.
type HTTPTransport struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPTransport returns a transport for endpoint. A non-positive timeout
// uses 15s.
func NewHTTPTransport(endpoint, apiKey string, timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPTransport{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

var _ ports.SummaryTransport = (*HTTPTransport)(nil)

func (t *HTTPTransport) Generate(ctx context.Context, body ports.SummaryRequest) (*ports.SummaryResponse, error) {
	target, err := t.url()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSummaryUnavailable, err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal: %v", domain.ErrSummaryUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: new request: %v", domain.ErrSummaryUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http call: %v", domain.ErrSummaryUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", domain.ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrSummaryUnavailable, resp.StatusCode, string(snippet))
	}

	var out ports.SummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrSummaryUnavailable, err)
	}
	return &out, nil
}

func (t *HTTPTransport) url() (string, error) {
	u, err := url.Parse(t.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", t.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
