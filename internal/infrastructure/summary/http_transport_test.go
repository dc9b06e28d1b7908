package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/99minutos/wms-console/internal/core/domain"
	"github.com/99minutos/wms-console/internal/core/ports"
)

func sampleRequest() ports.SummaryRequest {
	return ports.SummaryRequest{
		Contents: []ports.SummaryContent{{Parts: []ports.SummaryPart{{Text: "prompt"}}}},
		Tools:    []map[string]any{{"google_search": map[string]any{}}},
	}
}

func TestHTTPTransport_Success(t *testing.T) {
	var gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"KPI summary"}]}}]}`))
	}))
	defer srv.Close()

	resp, err := NewHTTPTransport(srv.URL+"/v1/models/m:generateContent", "k-123", time.Second).
		Generate(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if text, ok := resp.FirstText(); !ok || text != "KPI summary" {
		t.Fatalf("unexpected text %q (%v)", text, ok)
	}
	if gotKey != "k-123" {
		t.Fatalf("expected api key in query, got %q", gotKey)
	}
	if _, ok := gotBody["contents"]; !ok {
		t.Fatalf("request body missing contents: %v", gotBody)
	}
	if _, ok := gotBody["tools"]; !ok {
		t.Fatalf("request body missing tools: %v", gotBody)
	}
}

func TestHTTPTransport_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, `{}`, domain.ErrRateLimited},
		{"server error", http.StatusInternalServerError, `boom`, domain.ErrSummaryUnavailable},
		{"forbidden", http.StatusForbidden, `bad key`, domain.ErrSummaryUnavailable},
		{"malformed json", http.StatusOK, `{not json`, domain.ErrSummaryUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewHTTPTransport(srv.URL, "k", time.Second).Generate(context.Background(), sampleRequest())
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == domain.ErrSummaryUnavailable && errors.Is(err, domain.ErrRateLimited) {
				t.Fatalf("%d must not be treated as rate limiting", tc.status)
			}
		})
	}
}

func TestHTTPTransport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPTransport(url, "k", time.Second).Generate(context.Background(), sampleRequest())
	if !errors.Is(err, domain.ErrSummaryUnavailable) {
		t.Fatalf("expected ErrSummaryUnavailable, got %v", err)
	}
}

func TestHTTPTransport_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewHTTPTransport(srv.URL, "k", time.Second).Generate(ctx, sampleRequest())
	if !errors.Is(err, domain.ErrSummaryUnavailable) {
		t.Fatalf("expected ErrSummaryUnavailable, got %v", err)
	}
}
