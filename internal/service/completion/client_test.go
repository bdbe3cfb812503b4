package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type nopMetrics struct{}

func (nopMetrics) RecordUpstreamRequest(string, string) {}
func (nopMetrics) RecordError(string)                   {}
func (nopMetrics) RecordCacheLookup(string, string)     {}
func (nopMetrics) RecordLastPrice(string, float64)      {}
func (nopMetrics) RecordLatency(string, float64)        {}

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %q", req.Model)
		}
		if req.Temperature != 0.7 || req.MaxTokens != 1000 {
			t.Errorf("sampling = %v/%v", req.Temperature, req.MaxTokens)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Content != "explain this" {
			t.Errorf("unexpected messages %+v", req.Messages)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"a solid pool"}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", nopMetrics{}, WithModel("test-model"))
	got, err := c.Complete(context.Background(), "explain this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a solid pool" {
		t.Fatalf("got %q", got)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", nopMetrics{}, WithModel("m"))
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error on empty choices")
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", nopMetrics{}, WithModel("m"))
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error on 429")
	}
}
