package defillama

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type nopMetrics struct{}

func (nopMetrics) RecordUpstreamRequest(string, string) {}
func (nopMetrics) RecordError(string)                   {}
func (nopMetrics) RecordCacheLookup(string, string)     {}
func (nopMetrics) RecordLastPrice(string, float64)      {}
func (nopMetrics) RecordLatency(string, float64)        {}

func TestPools(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":[
			{"pool":"p1","project":"aave","chain":"Ethereum","symbol":"USDC","apy":8.5,"tvlUsd":5000000,"ilRisk":"no"},
			{"pool":"p2","project":"curve","chain":"Polygon","symbol":"DAI","apy":3.2,"tvlUsd":12000000,"volatility":0.2}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, nopMetrics{})
	pools, err := c.Pools(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools) != 2 {
		t.Fatalf("got %d pools, want 2", len(pools))
	}
	if pools[0].Project != "aave" || pools[0].APY != 8.5 || pools[0].TVLUsd != 5_000_000 {
		t.Fatalf("unexpected first pool %+v", pools[0])
	}
	if pools[0].Volatility != nil {
		t.Fatalf("expected nil volatility, got %v", *pools[0].Volatility)
	}
	if pools[1].Volatility == nil || *pools[1].Volatility != 0.2 {
		t.Fatalf("unexpected second pool volatility")
	}
}

func TestPoolsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, nopMetrics{})
	if _, err := c.Pools(context.Background()); err == nil {
		t.Fatal("expected error on 502")
	}
}
